package armoury

import "fmt"

// Entry is one list item placed on the grid of its pane.
type Entry struct {
	Label    string
	Col      int
	Row      int
	Selected bool
}

type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCreate
	ModalDelete
)

type Modal struct {
	Kind        ModalKind
	NationPhase bool
	Nation      string
	NameField   string
	Target      string
}

// View is everything a frontend needs to draw the Armoury screen. It is
// derived from the session and never mutates it.
type View struct {
	State     State
	DeckCount int
	MaxDecks  int
	Decks     []Entry
	Units     []Entry
	Nation    string
	Category  string
	UnitInfo  []string
	DeckUnits []string
	Modal     Modal
	Status    string
}

func (s *Session) View() View {
	v := View{
		State:     s.state,
		DeckCount: s.catalog.Len(),
		MaxDecks:  s.catalog.Max(),
		Nation:    s.Nation(),
		Category:  s.Category(),
		Status:    s.status,
	}

	for i, d := range s.catalog.Decks() {
		col, row := GridPosition(i, s.opts.DeckRows)
		v.Decks = append(v.Decks, Entry{Label: d.Label(), Col: col, Row: row, Selected: i == s.deckCur.Index()})
	}
	for i, u := range s.units {
		col, row := GridPosition(i, s.opts.UnitRows)
		v.Units = append(v.Units, Entry{Label: u.Name, Col: col, Row: row, Selected: i == s.unitCur.Index()})
	}

	if u, ok := s.SelectedUnit(); ok {
		v.UnitInfo = u.InfoLines()
	}
	v.DeckUnits = s.deckUnitLines()

	switch s.state {
	case StateCreatingDeck:
		v.Modal = Modal{
			Kind:        ModalCreate,
			NationPhase: s.form.phase == phaseNation,
			Nation:      s.form.nation.Selected(),
			NameField:   s.form.name.Field(),
		}
	case StateConfirmingDelete:
		v.Modal = Modal{Kind: ModalDelete}
		if d, ok := s.SelectedDeck(); ok {
			v.Modal.Target = d.Label()
		}
	}
	return v
}

func (s *Session) deckUnitLines() []string {
	deck, ok := s.SelectedDeck()
	if !ok {
		return []string{"(no deck selected)"}
	}
	lines := []string{deck.Label(), ""}
	if deck.Size() == 0 {
		return append(lines, "(no units)")
	}
	for _, id := range deck.Units {
		u, ok := s.units.Lookup(id)
		if !ok {
			lines = append(lines, fmt.Sprintf("? unit %d", id))
			continue
		}
		lines = append(lines, fmt.Sprintf("%c %s", u.Symbol, u.Name))
	}
	return lines
}
