package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"spinslider/internal/debug"
	"spinslider/internal/gui/layout"
	"spinslider/internal/gui/widgets"
	"spinslider/internal/valuesync"
)

const (
	WindowTitle         = "SpinBox and Slider Communication Demo"
	MinWindowWidth      = 400
	MinWindowHeight     = 200
	DefaultWindowWidth  = 500
	DefaultWindowHeight = 250
)

// Manager owns every widget in the main window. Widgets are created once in
// NewManager and live as long as the window.
type Manager struct {
	window     fyne.Window
	debugCoord debug.Coordinator
	isShutdown bool

	spinBox    *widgets.SpinBox
	slider     *widgets.IntSlider
	valueLabel *widget.Label
	controller *valuesync.Controller
}

func NewManager(window fyne.Window, debugCoord debug.Coordinator) *Manager {
	log := debugCoord.Logger()
	rng := valuesync.DefaultRange()

	m := &Manager{
		window:     window,
		debugCoord: debugCoord,
		spinBox:    widgets.NewSpinBox(rng, valuesync.DefaultValue),
		slider:     widgets.NewIntSlider(rng, valuesync.DefaultValue),
		valueLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	m.valueLabel.Importance = widget.HighImportance

	m.controller = valuesync.New(m.spinBox, m.slider, m.valueLabel,
		valuesync.WithRange(rng),
		valuesync.WithLogger(log),
		valuesync.WithPublisher(debugCoord.EventPublisher()),
	)

	window.SetTitle(WindowTitle)
	window.SetContent(m.GetMainContainer())
	window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
	window.CenterOnScreen()

	log.Info("GUIManager", "main window built", map[string]interface{}{
		"width":  DefaultWindowWidth,
		"height": DefaultWindowHeight,
		"value":  m.controller.Value(),
	})

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	spinBoxRow := container.NewHBox(
		widget.NewLabel("SpinBox:"),
		m.spinBox,
		fynelayout.NewSpacer(),
	)

	sliderRow := container.NewBorder(
		nil, nil,
		widget.NewLabel("Slider:"),
		nil,
		m.slider,
	)

	content := container.NewVBox(
		spinBoxRow,
		sliderRow,
		m.valueLabel,
		fynelayout.NewSpacer(),
	)

	return container.New(
		layout.NewMinSizeLayout(fyne.NewSize(MinWindowWidth, MinWindowHeight)),
		content,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Controller() *valuesync.Controller {
	return m.controller
}

func (m *Manager) SpinBox() *widgets.SpinBox {
	return m.spinBox
}

func (m *Manager) Slider() *widgets.IntSlider {
	return m.slider
}

func (m *Manager) ValueText() string {
	return m.valueLabel.Text
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.debugCoord.Logger().Info("GUIManager", "shutdown initiated", map[string]interface{}{
		"value": m.controller.Value(),
	})
}
