// Package valuesync keeps one bounded integer mirrored across two input
// controls and a text display.
//
// Each input reports user-driven changes through its own notification. The
// controller copies the new value into the other input inside that input's
// suppression bracket, so the copy never echoes back as a second change.
package valuesync

import (
	"fmt"

	"spinslider/internal/debug/eventbus"
	"spinslider/internal/logger"
)

const (
	SourceSpinBox = "spinbox"
	SourceSlider  = "slider"
)

// Input is a bounded-integer control.
type Input interface {
	Value() int
	// SetValue writes v and notifies the connected handler if v differs from
	// the current value and notifications are not blocked.
	SetValue(v int)
	// BlockSignals suppresses change notifications until release is called.
	BlockSignals() (release func())
	SetOnChanged(fn func(int))
}

// Display shows the derived text for the shared value.
type Display interface {
	SetText(text string)
}

// Publisher receives a change event after every settled update.
type Publisher interface {
	Publish(event eventbus.Event) bool
}

type Option func(*Controller)

func WithRange(r Range) Option {
	return func(c *Controller) { c.rng = r }
}

func WithInitialValue(v int) Option {
	return func(c *Controller) { c.value = v }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// Controller owns the shared value. It must only be used from the UI thread.
type Controller struct {
	value     int
	rng       Range
	entry     Input
	drag      Input
	display   Display
	logger    logger.Logger
	publisher Publisher
}

// New pushes the initial value to both inputs and the display, then connects
// the inputs' change notifications to the controller.
func New(entry, drag Input, display Display, opts ...Option) *Controller {
	c := &Controller{
		value:   DefaultValue,
		rng:     DefaultRange(),
		entry:   entry,
		drag:    drag,
		display: display,
		logger:  logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.value = c.rng.Clamp(c.value)

	writeSilently(c.entry, c.value)
	writeSilently(c.drag, c.value)
	c.display.SetText(FormatValue(c.value))

	c.entry.SetOnChanged(c.OnPreciseEntryChanged)
	c.drag.SetOnChanged(c.OnCoarseDragChanged)

	c.logger.Debug("ValueSync", "controller initialized", map[string]interface{}{
		"value": c.value,
		"min":   c.rng.Min,
		"max":   c.rng.Max,
	})

	return c
}

// FormatValue renders the display text for v.
func FormatValue(v int) string {
	return fmt.Sprintf("Current Value: %d", v)
}

func (c *Controller) Value() int {
	return c.value
}

func (c *Controller) Range() Range {
	return c.rng
}

// OnPreciseEntryChanged handles a user change on the spin box.
func (c *Controller) OnPreciseEntryChanged(newValue int) {
	c.mirror(SourceSpinBox, c.drag, newValue)
}

// OnCoarseDragChanged handles a user change on the slider.
func (c *Controller) OnCoarseDragChanged(newValue int) {
	c.mirror(SourceSlider, c.entry, newValue)
}

func (c *Controller) mirror(source string, target Input, newValue int) {
	newValue = c.rng.Clamp(newValue)
	if newValue == c.value {
		return
	}

	c.value = newValue
	writeSilently(target, newValue)
	c.display.SetText(FormatValue(newValue))

	c.logger.Debug("ValueSync", "value mirrored", map[string]interface{}{
		"source": source,
		"value":  newValue,
	})

	if c.publisher != nil {
		c.publisher.Publish(eventbus.Event{
			Type:   eventbus.TypeValueChanged,
			Source: source,
			Value:  newValue,
		})
	}
}

// writeSilently is the suppression bracket: the release is deferred so it runs
// even if SetValue panics.
func writeSilently(target Input, v int) {
	release := target.BlockSignals()
	defer release()
	target.SetValue(v)
}
