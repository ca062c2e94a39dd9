package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spinslider/internal/valuesync"
)

const (
	gaugeWidth = 30
	cardWidth  = 48
)

type focus int

const (
	focusSpinBox focus = iota
	focusSlider
)

type Model struct {
	theme Theme
	keys  keyMap
	help  help.Model

	focus   focus
	typing  string
	spinBox *control
	slider  *control
	display *textDisplay
	ctrl    *valuesync.Controller
}

// New builds the terminal model around the same controller the GUI uses.
func New(deps Deps) *Model {
	rng := valuesync.DefaultRange()

	m := &Model{
		theme:   DefaultTheme(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinBox: newControl(rng, valuesync.DefaultValue),
		slider:  newControl(rng, valuesync.DefaultValue),
		display: &textDisplay{},
	}

	opts := []valuesync.Option{valuesync.WithRange(rng)}
	if deps.Logger != nil {
		opts = append(opts, valuesync.WithLogger(deps.Logger))
	}
	if deps.Publisher != nil {
		opts = append(opts, valuesync.WithPublisher(deps.Publisher))
	}
	m.ctrl = valuesync.New(m.spinBox, m.slider, m.display, opts...)

	return m
}

func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	if deps.OnStart != nil {
		deps.OnStart(p.Quit)
	}
	_, err := p.Run()
	return err
}

func (m *Model) Controller() *valuesync.Controller {
	return m.ctrl
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.focus == focusSpinBox && msg.Type == tea.KeyRunes {
		if digits := string(msg.Runes); isDigits(digits) {
			m.typing += digits
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.typing = ""
		if m.focus == focusSpinBox {
			m.focus = focusSlider
		} else {
			m.focus = focusSpinBox
		}

	case key.Matches(msg, m.keys.Commit):
		m.commitTyping()

	case key.Matches(msg, m.keys.Cancel):
		m.typing = ""

	case msg.Type == tea.KeyBackspace:
		if n := len(m.typing); n > 0 {
			m.typing = m.typing[:n-1]
		}

	case key.Matches(msg, m.keys.Up):
		m.focused().step(1)

	case key.Matches(msg, m.keys.Down):
		m.focused().step(-1)

	case key.Matches(msg, m.keys.PageUp):
		m.focused().step(10)

	case key.Matches(msg, m.keys.PageDown):
		m.focused().step(-10)

	case key.Matches(msg, m.keys.Home):
		m.focused().SetValue(m.focused().rng.Min)

	case key.Matches(msg, m.keys.End):
		m.focused().SetValue(m.focused().rng.Max)

	case key.Matches(msg, m.keys.Left):
		m.slider.step(-1)

	case key.Matches(msg, m.keys.Right):
		m.slider.step(1)
	}

	return nil
}

// commitTyping applies the typed digits to the spin box; the control clamps
// before it notifies the controller.
func (m *Model) commitTyping() {
	if m.typing == "" {
		return
	}
	v, err := strconv.Atoi(m.typing)
	m.typing = ""
	if err != nil {
		v = m.spinBox.rng.Max
	}
	m.spinBox.SetValue(v)
}

func (m *Model) focused() *control {
	if m.focus == focusSlider {
		return m.slider
	}
	return m.spinBox
}

func (m *Model) View() string {
	title := m.theme.Title.Render("SpinBox and Slider Communication Demo")

	spinText := fmt.Sprintf("[ %3d ]", m.spinBox.Value())
	if m.typing != "" {
		spinText = fmt.Sprintf("[ %s_ ]", m.typing)
	}
	spinRow := m.theme.Label.Render("SpinBox:") + m.styleFor(focusSpinBox).Render(spinText)

	sliderRow := m.theme.Label.Render("Slider:") + m.styleFor(focusSlider).Render(renderGauge(m.slider, gaugeWidth))

	value := m.theme.Value.Width(cardWidth - 4).Render(m.display.text)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", spinRow, sliderRow, "", value)
	card := m.theme.Card.Width(cardWidth).Render(body)

	return card + "\n" + m.help.View(m.keys)
}

// ValueText returns the current display string.
func (m *Model) ValueText() string {
	return m.display.text
}

func (m *Model) styleFor(f focus) lipgloss.Style {
	if m.focus == f {
		return m.theme.Focused
	}
	return m.theme.Blurred
}

func renderGauge(c *control, width int) string {
	filled := int(c.fraction()*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
