package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
	"github.com/appengine-ltd/ascii-wars/internal/layout"
)

// ColumnWidth is the width of one grid column in the deck and unit panes. It
// fits a default deck label, "[NAT]" plus a 15 character name and its count.
const ColumnWidth = 28

// Cell is a grid entry positioned inside a pane's inner area.
type Cell struct {
	X, Y     int
	Text     string
	Selected bool
}

// GridCells places entries column-major inside a width x height area. Rows
// are two lines apart when they fit and packed otherwise. When the selected
// entry's column is off the right edge the grid scrolls to keep it visible.
func GridCells(entries []armoury.Entry, rows, width, height int) []Cell {
	colWidth := min(ColumnWidth, width)
	if colWidth < 1 || height < 1 {
		return nil
	}
	gap := 2
	if rows*2-1 > height {
		gap = 1
	}
	visible := max(width/colWidth, 1)
	first := 0
	for _, e := range entries {
		if e.Selected && e.Col >= visible {
			first = e.Col - visible + 1
		}
	}

	var out []Cell
	for _, e := range entries {
		col := e.Col - first
		y := e.Row * gap
		if col < 0 || col >= visible || y >= height {
			continue
		}
		out = append(out, Cell{
			X:        col * colWidth,
			Y:        y,
			Text:     fitLabel(e.Label, colWidth-1),
			Selected: e.Selected,
		})
	}
	return out
}

// Section is a titled block of the instructions pane.
type Section struct {
	Title string
	Lines []string
}

func InstructionSections() []Section {
	return []Section{
		{Title: "GENERAL", Lines: []string{
			"-> RETURN TO MAIN MENU: B",
		}},
		{Title: "DECKS PANEL", Lines: []string{
			"-> SELECT DECK: LEFT & RIGHT",
			"-> CREATE NEW DECK: C",
			"-> EDIT SELECTED DECK: E",
			"-> DELETE SELECTED DECK: D",
		}},
		{Title: "UNITS LIST PANEL", Lines: []string{
			"-> SELECT UNIT: UP & DOWN",
			"-> SELECT NATION: N",
			"-> SELECT CATEGORY: M",
		}},
		{Title: "UNIT INFORMATION PANEL", Lines: []string{
			"-> ADD SELECTED UNIT: A",
			"-> REMOVE SELECTED UNIT: R",
		}},
	}
}

const (
	TitleInstructions = "INSTRUCTIONS & CONTROLS"
	TitleUnits        = "UNITS LIST PANEL"
	TitleInfo         = "UNIT INFORMATION PANEL"
	TitleDeckUnits    = "UNITS IN DECK"
)

func DecksTitle(v armoury.View) string {
	return fmt.Sprintf("DECKS PANEL (%d/%d) %d%%", v.DeckCount, v.MaxDecks, layout.Fill(v.DeckCount, v.MaxDecks))
}

func UnitsHeader(v armoury.View) string {
	return fmt.Sprintf("Nation: %-6s Category: %s", v.Nation, v.Category)
}

// TextLine is one line of a modal; Highlight marks the active input.
type TextLine struct {
	Text      string
	Highlight bool
}

func ModalContent(m armoury.Modal) (string, []TextLine) {
	switch m.Kind {
	case armoury.ModalCreate:
		return "CREATE NEW DECK", []TextLine{
			{},
			{Text: "Select nation: " + m.Nation, Highlight: m.NationPhase},
			{Text: "(Use LEFT & RIGHT)"},
			{Text: "(Press ENTER to confirm nation)"},
			{},
			{Text: "Deck name: [" + m.NameField + "]", Highlight: !m.NationPhase},
			{Text: "(Press ENTER to confirm name)"},
			{Text: "(Press ESC to cancel)"},
		}
	case armoury.ModalDelete:
		return "DELETE DECK", []TextLine{
			{},
			{Text: "DELETE selected deck?"},
			{Text: m.Target, Highlight: true},
			{},
			{Text: "(Press ENTER to confirm)"},
			{Text: "(Any other key cancels)"},
		}
	}
	return "", nil
}

// fitLabel shortens a label to n runes. A trailing "(size/limit)" count is
// kept whole and the text before it is cut instead.
func fitLabel(label string, n int) string {
	if len([]rune(label)) <= n {
		return label
	}
	i := strings.LastIndex(label, " (")
	if i < 0 || !strings.HasSuffix(label, ")") {
		return Truncate(label, n)
	}
	suffix := label[i:]
	keep := n - len([]rune(suffix))
	if keep < 1 {
		return Truncate(label, n)
	}
	return Truncate(label[:i], keep) + suffix
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
