package debug

import (
	"fmt"
	"sync"

	"spinslider/internal/debug/eventbus"
	"spinslider/internal/logger"
)

const historyLimit = 256

type Config struct {
	EventBufferSize int
	KeepHistory     bool
}

func DefaultConfig() Config {
	return Config{
		EventBufferSize: 1000,
		KeepHistory:     true,
	}
}

type DebugCoordinator struct {
	logger logger.Logger
	bus    *eventbus.Bus

	mu      sync.Mutex
	history []eventbus.Event
}

func NewCoordinator(config Config, log logger.Logger) *DebugCoordinator {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	dc := &DebugCoordinator{
		logger: log,
		bus:    eventbus.NewBus(config.EventBufferSize),
	}

	dc.bus.OnPanic(func(id string, recovered interface{}) {
		log.Error("EventBus", fmt.Errorf("handler panic: %v", recovered), map[string]interface{}{
			"handler": id,
		})
	})

	dc.bus.Subscribe(eventbus.TypeValueChanged, eventbus.HandlerFunc("debug.log", dc.logChange))
	if config.KeepHistory {
		dc.bus.Subscribe(eventbus.TypeValueChanged, eventbus.HandlerFunc("debug.history", dc.record))
	}

	return dc
}

func (dc *DebugCoordinator) logChange(event eventbus.Event) {
	dc.logger.Debug("ValueSync", "value changed", map[string]interface{}{
		"source": event.Source,
		"value":  event.Value,
	})
}

func (dc *DebugCoordinator) record(event eventbus.Event) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	dc.history = append(dc.history, event)
	if len(dc.history) > historyLimit {
		dc.history = dc.history[len(dc.history)-historyLimit:]
	}
}

func (dc *DebugCoordinator) Logger() logger.Logger {
	return dc.logger
}

func (dc *DebugCoordinator) EventPublisher() EventPublisher {
	return dc.bus
}

// History returns the most recent value-change events, oldest first.
func (dc *DebugCoordinator) History() []eventbus.Event {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return append([]eventbus.Event(nil), dc.history...)
}

// Shutdown flushes queued events through the subscribers before returning.
func (dc *DebugCoordinator) Shutdown() {
	dc.bus.Shutdown()
}
