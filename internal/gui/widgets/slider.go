package widgets

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"spinslider/internal/signal"
	"spinslider/internal/valuesync"
)

// IntSlider is a horizontal slider restricted to whole numbers. It only
// notifies when the integer value changes, not on every drag sample.
type IntSlider struct {
	widget.BaseWidget

	slider  *widget.Slider
	rng     valuesync.Range
	value   int
	changed signal.Signal
}

func NewIntSlider(r valuesync.Range, initial int) *IntSlider {
	s := &IntSlider{
		rng:   r,
		value: r.Clamp(initial),
	}

	s.slider = widget.NewSlider(float64(r.Min), float64(r.Max))
	s.slider.Step = 1
	s.slider.Orientation = widget.Horizontal
	s.slider.Value = float64(s.value)
	s.slider.OnChanged = s.onSliderChanged

	s.ExtendBaseWidget(s)
	return s
}

func (s *IntSlider) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.slider)
}

func (s *IntSlider) Value() int {
	return s.value
}

// Position returns the underlying slider position.
func (s *IntSlider) Position() float64 {
	return s.slider.Value
}

func (s *IntSlider) SetValue(v int) {
	v = s.rng.Clamp(v)
	if v == s.value {
		return
	}

	s.value = v
	s.slider.SetValue(float64(v))
	s.changed.Emit(v)
}

func (s *IntSlider) BlockSignals() func() {
	return s.changed.Block()
}

func (s *IntSlider) SetOnChanged(fn func(int)) {
	s.changed.Connect(fn)
}

func (s *IntSlider) onSliderChanged(position float64) {
	v := s.rng.Clamp(int(math.Round(position)))
	if v == s.value {
		return
	}

	s.value = v
	s.changed.Emit(v)
}
