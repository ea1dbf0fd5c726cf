package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
	"github.com/appengine-ltd/ascii-wars/internal/layout"
	"github.com/appengine-ltd/ascii-wars/internal/ui/theme"
)

type AppConfig struct {
	Version     string
	Commit      string
	BuildDate   string
	Options     armoury.Options
	Units       armoury.Units
	StartScreen string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newModel(a.cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Main menu ---

type menuItem int

const (
	itemSingleplayer menuItem = iota
	itemMultiplayer
	itemArmoury
	itemSettings
	itemExit
)

var menuLabels = []string{"Singleplayer", "Multiplayer", "Armoury", "Settings", "Exit"}

type model struct {
	cfg AppConfig

	screen screen
	idx    int
	status string

	width  int
	height int

	// One session for the whole process so decks survive leaving the screen.
	session *armoury.Session
}

func newModel(cfg AppConfig) (model, error) {
	session, err := armoury.NewSession(armoury.WithDefaults(cfg.Options, cfg.Units))
	if err != nil {
		return model{}, err
	}
	start, err := lookupScreen(cfg.StartScreen)
	if err != nil {
		return model{}, err
	}
	m := model{cfg: cfg, session: session}
	switch start {
	case screenArmoury:
		m = m.openArmoury()
	default:
		m.screen = start
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenMultiplayer:
			return m.updateMultiplayer(msg)
		case screenArmoury:
			return m.updateArmoury(msg)
		}
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(menuLabels)-1 {
			m.idx++
		}
	case "enter":
		m.status = ""
		switch menuItem(m.idx) {
		case itemSingleplayer:
			m.status = "Singleplayer is not implemented yet."
		case itemMultiplayer:
			m.screen = screenMultiplayer
		case itemArmoury:
			return m.openArmoury(), nil
		case itemSettings:
			m.status = "Settings are not implemented yet."
		case itemExit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) updateMultiplayer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.screen = screenMenu
	}
	return m, nil
}

func (m model) View() string {
	var body string
	switch m.screen {
	case screenMultiplayer:
		body = m.viewMultiplayer()
	case screenArmoury:
		return m.viewArmoury()
	default:
		body = m.viewMenu()
	}
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(" ASCII WARS ") + "\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate)) + "\n\n")
	for i, label := range menuLabels {
		if i == m.idx {
			b.WriteString("> " + theme.Selected.Render(label) + "\n")
			continue
		}
		b.WriteString("  " + theme.Text.Render(label) + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("Up/Down to move, Enter to select, q to quit") + "\n")
	if m.status != "" {
		b.WriteString("\n" + theme.Status.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) viewMultiplayer() string {
	return theme.Text.Render("Not yet implemented... ") + theme.Selected.Render("Back")
}

func (m model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = layout.MinWidth
	}
	if h <= 0 {
		h = layout.MinHeight
	}
	return w, h
}
