package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"spinslider/internal/valuesync"
)

func newTestSlider(t *testing.T, initial int) (*IntSlider, *[]int) {
	t.Helper()
	test.NewTempApp(t)

	s := NewIntSlider(valuesync.DefaultRange(), initial)
	var got []int
	s.SetOnChanged(func(v int) { got = append(got, v) })
	return s, &got
}

func TestIntSliderInitialValue(t *testing.T) {
	s, got := newTestSlider(t, 50)

	assert.Equal(t, 50, s.Value())
	assert.Equal(t, 50.0, s.Position())
	assert.Empty(t, *got)
}

func TestIntSliderDragRoundsToWholeNumbers(t *testing.T) {
	s, got := newTestSlider(t, 50)

	s.onSliderChanged(12.2)
	s.onSliderChanged(11.8)
	s.onSliderChanged(30.6)

	assert.Equal(t, 31, s.Value())
	assert.Equal(t, []int{12, 31}, *got)
}

func TestIntSliderSetValue(t *testing.T) {
	s, got := newTestSlider(t, 50)

	s.SetValue(73)
	s.SetValue(73)
	s.SetValue(-4)

	assert.Equal(t, 0, s.Value())
	assert.Equal(t, 0.0, s.Position())
	assert.Equal(t, []int{73, 0}, *got)
}

func TestIntSliderBlockedWriteIsSilent(t *testing.T) {
	s, got := newTestSlider(t, 50)

	release := s.BlockSignals()
	s.SetValue(12)
	release()

	assert.Equal(t, 12, s.Value())
	assert.Equal(t, 12.0, s.Position())
	assert.Empty(t, *got)
}
