package widgets

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"spinslider/internal/signal"
	"spinslider/internal/valuesync"
)

// SpinBox is a bounded integer entry with step buttons. Typed values outside
// the range are clamped before any change notification is sent.
type SpinBox struct {
	widget.BaseWidget

	entry *spinEntry
	up    *widget.Button
	down  *widget.Button

	rng         valuesync.Range
	value       int
	changed     signal.Signal
	syncingText bool
}

func NewSpinBox(r valuesync.Range, initial int) *SpinBox {
	s := &SpinBox{
		rng:   r,
		value: r.Clamp(initial),
	}

	s.entry = newSpinEntry(s)
	s.entry.SetPlaceHolder(strconv.Itoa(r.Max))
	s.entry.SetText(strconv.Itoa(s.value))
	s.entry.OnChanged = s.onEntryChanged
	s.entry.OnSubmitted = func(string) { s.syncText() }

	s.up = widget.NewButtonWithIcon("", theme.ContentAddIcon(), s.Increment)
	s.down = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), s.Decrement)
	s.updateButtons()

	s.ExtendBaseWidget(s)
	return s
}

func (s *SpinBox) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(s.down, s.up)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, buttons, s.entry))
}

func (s *SpinBox) Value() int {
	return s.value
}

// Entry exposes the text field users type into.
func (s *SpinBox) Entry() *widget.Entry {
	return &s.entry.Entry
}

// Text returns what the entry currently shows.
func (s *SpinBox) Text() string {
	return s.entry.Text
}

// SetValue clamps v, shows it, and notifies when the value changed.
func (s *SpinBox) SetValue(v int) {
	v = s.rng.Clamp(v)
	if v == s.value {
		return
	}

	s.value = v
	s.syncText()
	s.updateButtons()
	s.changed.Emit(v)
}

func (s *SpinBox) Increment() {
	s.SetValue(s.value + 1)
}

func (s *SpinBox) Decrement() {
	s.SetValue(s.value - 1)
}

func (s *SpinBox) BlockSignals() func() {
	return s.changed.Block()
}

func (s *SpinBox) SetOnChanged(fn func(int)) {
	s.changed.Connect(fn)
}

func (s *SpinBox) onEntryChanged(text string) {
	if s.syncingText {
		return
	}

	typed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return
	}

	v := s.rng.Clamp(typed)
	if v != typed {
		defer s.syncText()
	}
	if v == s.value {
		return
	}

	s.value = v
	s.updateButtons()
	s.changed.Emit(v)
}

// syncText rewrites the entry from the current value. Its own OnChanged
// callback is ignored while this runs.
func (s *SpinBox) syncText() {
	text := strconv.Itoa(s.value)
	if s.entry.Text == text {
		return
	}

	s.syncingText = true
	defer func() { s.syncingText = false }()
	s.entry.SetText(text)
}

func (s *SpinBox) updateButtons() {
	setEnabled(s.up, s.value < s.rng.Max)
	setEnabled(s.down, s.value > s.rng.Min)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// spinEntry routes arrow keys and scroll wheel steps to its SpinBox and
// restores the canonical text when focus leaves.
type spinEntry struct {
	widget.Entry
	owner *SpinBox
}

func newSpinEntry(owner *SpinBox) *spinEntry {
	e := &spinEntry{owner: owner}
	e.ExtendBaseWidget(e)
	return e
}

func (e *spinEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyUp:
		e.owner.Increment()
	case fyne.KeyDown:
		e.owner.Decrement()
	case fyne.KeyPageUp:
		e.owner.SetValue(e.owner.value + 10)
	case fyne.KeyPageDown:
		e.owner.SetValue(e.owner.value - 10)
	default:
		e.Entry.TypedKey(ev)
	}
}

func (e *spinEntry) Scrolled(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY > 0:
		e.owner.Increment()
	case ev.Scrolled.DY < 0:
		e.owner.Decrement()
	}
}

func (e *spinEntry) FocusLost() {
	e.Entry.FocusLost()
	e.owner.syncText()
}
