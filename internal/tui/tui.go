package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/wayfarer/internal/engine"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateFinished
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   []string
	width     int
	height    int
}

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = locale.Get("What do you want to do?")
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		state:     statePlaying,
		engine:    eng,
		textInput: ti,
		viewport:  viewport.New(60, 20),
		width:     80,
		height:    26,
	}
	m.appendNotices(eng.Intro())
	if eng.Finished() {
		m.finish()
	}
	m.viewport.SetContent(m.renderLog())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if m.state == stateFinished {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			action := m.textInput.Value()
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()

			m.gameLog = append(m.gameLog, userStyle.Width(m.logWidth()).Render("> "+action))
			m.appendNotices(m.engine.ProcessTurn(action))
			if m.engine.Finished() {
				m.finish()
			}
			m.viewport.SetContent(m.renderLog())
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.renderLog())
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) appendNotices(notices []engine.Notice) {
	for _, n := range notices {
		m.gameLog = append(m.gameLog, RenderNotice(n, m.logWidth()))
	}
}

func (m *model) finish() {
	m.state = stateFinished
	m.textInput.Blur()
	m.textInput.Placeholder = locale.Get("Press any key to leave.")
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.70)
}

func (m model) View() string {
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	help := helpStyle.Render(locale.Get("Commands: move <direction>, talk <name>, attack <name>, help, quit. Esc leaves."))

	s := lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	)
	return "\n" + s + "\n"
}

func (m model) renderState() string {
	content := fmt.Sprintf("%s\n%s\n%s\n%s",
		titleStyle.Render(locale.Get("MAP")),
		RenderMap(m.engine),
		titleStyle.Render(locale.Get("STATS")),
		RenderStats(m.engine),
	)

	stateWidth := int(float64(m.width) * 0.27)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	return strings.Join(m.gameLog, "\n\n")
}

func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
