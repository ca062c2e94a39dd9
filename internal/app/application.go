package app

import (
	"os"
	"runtime"

	"spinslider/internal/config"
	"spinslider/internal/debug"
	"spinslider/internal/gui"
	"spinslider/internal/logger"
	"spinslider/internal/shutdown"
	"spinslider/internal/ui/tui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "SpinSlider"
	AppID      = "com.example.spinslider"
	AppVersion = "1.0.0"
)

type Application struct {
	cfg        config.Config
	logger     logger.Logger
	debugCoord *debug.DebugCoordinator
	shutdown   *shutdown.Manager
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lifecycle := NewLifecycle()
	log, err := lifecycle.OpenLogger(cfg)
	if err != nil {
		return nil, err
	}

	debugConfig := debug.DefaultConfig()
	debugConfig.EventBufferSize = cfg.EventBuffer
	debugCoord := debug.NewCoordinator(debugConfig, log)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("logger", lifecycle)
	shutdownMgr.Register("debug", debugCoord)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"frontend":   cfg.Frontend,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel,
	})

	return &Application{
		cfg:        cfg,
		logger:     log,
		debugCoord: debugCoord,
		shutdown:   shutdownMgr,
		lifecycle:  lifecycle,
	}, nil
}

// Run blocks until the front-end exits, then shuts every component down.
func (a *Application) Run() error {
	defer a.shutdown.Shutdown()

	if a.cfg.IsTUI() {
		return a.runTerminal()
	}
	return a.runDesktop()
}

func (a *Application) runDesktop() error {
	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(gui.WindowTitle)
	window.SetMaster()

	guiManager := gui.NewManager(window, a.debugCoord)
	a.shutdown.Register("gui", guiManager)

	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(fyneApp.Quit)
	})

	window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		window.Close()
	})

	a.logger.Info("Application", "GUI displayed", nil)
	window.ShowAndRun()
	return nil
}

func (a *Application) runTerminal() error {
	return tui.Run(tui.Deps{
		Logger:    a.logger,
		Publisher: a.debugCoord.EventPublisher(),
		OnStart: func(quit func()) {
			a.shutdown.Listen(func(os.Signal) { quit() })
		},
	})
}

func (a *Application) Logger() logger.Logger {
	return a.logger
}

func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
