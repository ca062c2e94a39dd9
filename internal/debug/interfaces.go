package debug

import (
	"spinslider/internal/debug/eventbus"
	"spinslider/internal/logger"
)

// EventPublisher distributes value-change events to subscribers without blocking
type EventPublisher interface {
	Publish(event eventbus.Event) bool
	Subscribe(eventType string, handler eventbus.EventHandler)
	Unsubscribe(eventType string, handler eventbus.EventHandler)
}

// Coordinator combines the diagnostic facilities shared by every front-end
type Coordinator interface {
	Logger() logger.Logger
	EventPublisher() EventPublisher
	History() []eventbus.Event
	Shutdown()
}
