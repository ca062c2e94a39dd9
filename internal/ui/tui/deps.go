package tui

import (
	"spinslider/internal/logger"
	"spinslider/internal/valuesync"
)

type Deps struct {
	Logger    logger.Logger
	Publisher valuesync.Publisher

	// OnStart receives a func that quits the program from any goroutine.
	OnStart func(quit func())
}
