package tui

import (
	"spinslider/internal/signal"
	"spinslider/internal/valuesync"
)

// control is the terminal counterpart of a bounded-integer widget.
type control struct {
	rng     valuesync.Range
	value   int
	changed signal.Signal
}

func newControl(r valuesync.Range, initial int) *control {
	return &control{rng: r, value: r.Clamp(initial)}
}

func (c *control) Value() int {
	return c.value
}

func (c *control) SetValue(v int) {
	v = c.rng.Clamp(v)
	if v == c.value {
		return
	}
	c.value = v
	c.changed.Emit(v)
}

func (c *control) step(delta int) {
	c.SetValue(c.value + delta)
}

func (c *control) BlockSignals() func() {
	return c.changed.Block()
}

func (c *control) SetOnChanged(fn func(int)) {
	c.changed.Connect(fn)
}

// fraction is the control's position within its range, in [0, 1].
func (c *control) fraction() float64 {
	span := c.rng.Max - c.rng.Min
	if span <= 0 {
		return 0
	}
	return float64(c.value-c.rng.Min) / float64(span)
}

type textDisplay struct {
	text string
}

func (d *textDisplay) SetText(text string) {
	d.text = text
}
