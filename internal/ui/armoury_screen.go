package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
	"github.com/appengine-ltd/ascii-wars/internal/layout"
	"github.com/appengine-ltd/ascii-wars/internal/ui/theme"
)

func (m model) openArmoury() model {
	m.session.Resume()
	m.screen = screenArmoury
	m.status = ""
	log.Printf("armoury: opened with %d/%d decks", m.session.DeckCount(), m.session.Options().MaxDecks)
	return m
}

func (m model) updateArmoury(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range keysFromMsg(msg) {
		ev := m.session.Handle(k)
		LogEvent(ev)
		if ev.Kind == armoury.EventQuit {
			m.screen = screenMenu
			break
		}
	}
	return m, nil
}

// LogEvent writes a session event to the standard logger.
func LogEvent(ev armoury.Event) {
	switch ev.Kind {
	case armoury.EventDeckCreated:
		log.Printf("armoury: created deck %s %q nation=%s", ev.Deck.ID, ev.Deck.Name, ev.Deck.Nation)
	case armoury.EventDeckDeleted:
		log.Printf("armoury: deleted deck %s %q", ev.Deck.ID, ev.Deck.Name)
	case armoury.EventCancelled:
		log.Printf("armoury: modal cancelled")
	case armoury.EventQuit:
		log.Printf("armoury: back to menu")
	}
}

func (m model) viewArmoury() string {
	w, h := m.size()
	v := m.session.View()

	if v.Modal.Kind != armoury.ModalNone {
		r := layout.CreateModal(w, h)
		if v.Modal.Kind == armoury.ModalDelete {
			r = layout.DeleteModal(w, h)
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, renderModal(v.Modal, r))
	}

	p := layout.Compute(w, h-1)
	opts := m.session.Options()

	decks := renderPane(p.Decks, DecksTitle(v), gridLines(v.Decks, opts.DeckRows, p.Decks.Inner().W, p.Decks.Inner().H-1))
	unitsBody := []string{Truncate(UnitsHeader(v), p.Units.Inner().W), strings.Repeat("─", p.Units.Inner().W)}
	unitsBody = append(unitsBody, gridLines(v.Units, opts.UnitRows, p.Units.Inner().W, p.Units.Inner().H-3)...)
	units := renderPane(p.Units, TitleUnits, unitsBody)
	instructions := renderPane(p.Instructions, TitleInstructions, instructionLines(p.Instructions.Inner().W))
	info := renderPane(p.Info, TitleInfo, m.infoLines(v, p.Info.Inner()))
	deckUnits := renderPane(p.DeckUnits, TitleDeckUnits, fitLines(v.DeckUnits, p.DeckUnits.Inner().W))

	left := lipgloss.JoinVertical(lipgloss.Left, decks, units)
	mid := lipgloss.JoinVertical(lipgloss.Left, instructions, info)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, mid, deckUnits)
	return body + "\n" + theme.Status.Render(Truncate(v.Status, p.Width))
}

func (m model) infoLines(v armoury.View, inner layout.Rect) []string {
	lines := fitLines(v.UnitInfo, inner.W)
	u, ok := m.session.SelectedUnit()
	if !ok {
		return lines
	}
	room := inner.H - 1 - len(lines) - 1
	if emblem := renderUnitEmblemANSI(u, min(inner.W, 24), min(room, 8)); emblem != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(emblem, "\n")...)
	}
	return lines
}

// renderPane draws a bordered box of exactly r's outer size. The title takes
// the first inner line; body lines past the inner height are dropped.
func renderPane(r layout.Rect, title string, body []string) string {
	inner := r.Inner()
	lines := append([]string{lipgloss.NewStyle().Bold(true).Render(Truncate(title, inner.W))}, body...)
	if len(lines) > inner.H {
		lines = lines[:inner.H]
	}
	return theme.Pane(r.W, r.H, false).Render(strings.Join(lines, "\n"))
}

func renderModal(md armoury.Modal, r layout.Rect) string {
	title, content := ModalContent(md)
	inner := r.Inner()
	lines := []string{lipgloss.NewStyle().Bold(true).Render(title)}
	for _, l := range content {
		text := Truncate(l.Text, inner.W-2)
		if l.Highlight {
			text = theme.Selected.Render(text)
		}
		lines = append(lines, text)
	}
	if len(lines) > inner.H {
		lines = lines[:inner.H]
	}
	return theme.Modal(r.W, r.H).Render(strings.Join(lines, "\n"))
}

// gridLines renders GridCells as text lines, highlighting the selected cell.
func gridLines(entries []armoury.Entry, rows, width, height int) []string {
	cells := GridCells(entries, rows, width, height)
	n := 0
	for _, c := range cells {
		n = max(n, c.Y+1)
	}
	lines := make([]string, n)
	cols := make([]int, n)
	for _, c := range cells {
		if pad := c.X - cols[c.Y]; pad > 0 {
			lines[c.Y] += strings.Repeat(" ", pad)
			cols[c.Y] += pad
		}
		text := c.Text
		if c.Selected {
			text = theme.Selected.Render(text)
		}
		lines[c.Y] += text
		cols[c.Y] += len([]rune(c.Text))
	}
	return lines
}

func instructionLines(width int) []string {
	var out []string
	for i, s := range InstructionSections() {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, theme.Header(i).Render(Truncate("-- "+s.Title+" --", width)))
		out = append(out, fitLines(s.Lines, width)...)
	}
	return out
}

func fitLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Truncate(l, width)
	}
	return out
}
