package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinslider/internal/debug/eventbus"
	"spinslider/internal/logger"
)

func TestCoordinatorRecordsAndLogsChanges(t *testing.T) {
	var buf bytes.Buffer
	dc := NewCoordinator(DefaultConfig(), logger.NewJSONLogger(logger.DebugLevel, &buf))

	dc.EventPublisher().Publish(eventbus.Event{Type: eventbus.TypeValueChanged, Source: "spinbox", Value: 73})
	dc.EventPublisher().Publish(eventbus.Event{Type: eventbus.TypeValueChanged, Source: "slider", Value: 12})
	dc.Shutdown()

	history := dc.History()
	require.Len(t, history, 2)
	assert.Equal(t, 73, history[0].Value)
	assert.Equal(t, 12, history[1].Value)

	assert.Contains(t, buf.String(), `"source":"spinbox"`)
	assert.Contains(t, buf.String(), `"value":12`)
}

func TestCoordinatorWithoutHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeepHistory = false
	dc := NewCoordinator(cfg, nil)

	dc.EventPublisher().Publish(eventbus.Event{Type: eventbus.TypeValueChanged, Value: 1})
	dc.Shutdown()

	assert.Empty(t, dc.History())
}
