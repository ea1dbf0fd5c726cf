package armoury

import "fmt"

type State int

const (
	StateBrowsing State = iota
	StateCreatingDeck
	StateConfirmingDelete
	StateDone
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateCreatingDeck:
		return "creating-deck"
	case StateConfirmingDelete:
		return "confirming-delete"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type EventKind int

const (
	EventNone EventKind = iota
	EventDeckCreated
	EventDeckDeleted
	EventCancelled
	EventQuit
)

// Event reports what a single key did to the session.
type Event struct {
	Kind EventKind
	Deck Deck
}

type formPhase int

const (
	phaseNation formPhase = iota
	phaseName
)

type deckForm struct {
	phase  formPhase
	nation *Picker
	name   *LineEditor
}

// Session is the Armoury screen state: the deck catalog, both selection
// cursors, the cosmetic nation/category indices and the active modal.
type Session struct {
	opts     Options
	units    Units
	catalog  *Catalog
	deckCur  Cursor
	unitCur  Cursor
	category int
	nation   int
	state    State
	form     *deckForm
	status   string
}

func NewSession(opts Options, units Units) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Nations = append([]string(nil), opts.Nations...)
	opts.Categories = append([]string(nil), opts.Categories...)
	return &Session{
		opts:    opts,
		units:   append(Units(nil), units...),
		catalog: NewCatalog(opts.MaxDecks, opts.DeckSizeLimit, opts.NameLength),
		state:   StateBrowsing,
	}, nil
}

func (s *Session) State() State { return s.state }
func (s *Session) Status() string { return s.status }
func (s *Session) Options() Options { return s.opts }
func (s *Session) Units() Units { return s.units }
func (s *Session) Decks() []Deck { return s.catalog.Decks() }
func (s *Session) DeckCount() int { return s.catalog.Len() }
func (s *Session) DeckCursor() int { return s.deckCur.Index() }
func (s *Session) UnitCursor() int { return s.unitCur.Index() }
func (s *Session) Category() string { return s.opts.Categories[s.category] }
func (s *Session) Nation() string { return s.opts.Nations[s.nation] }

func (s *Session) SelectedDeck() (Deck, bool) {
	return s.catalog.At(s.deckCur.Index())
}

func (s *Session) SelectedUnit() (Unit, bool) {
	i := s.unitCur.Index()
	if i < 0 || i >= len(s.units) {
		return Unit{}, false
	}
	return s.units[i], true
}

// Resume returns a finished session to browsing so the same catalog is shown
// the next time the screen opens.
func (s *Session) Resume() {
	if s.state == StateDone {
		s.state = StateBrowsing
	}
	s.status = ""
}

func (s *Session) Handle(k Key) Event {
	switch s.state {
	case StateBrowsing:
		return s.handleBrowsing(k)
	case StateCreatingDeck:
		return s.handleCreating(k)
	case StateConfirmingDelete:
		return s.handleConfirmDelete(k)
	}
	return Event{}
}

func (s *Session) handleBrowsing(k Key) Event {
	s.status = ""
	switch {
	case k.Is('b'):
		s.state = StateDone
		return Event{Kind: EventQuit}
	case k.Is('c'):
		s.beginCreate()
	case k.Is('d'):
		s.beginDelete()
	case k.Is('m'):
		s.category = (s.category + 1) % len(s.opts.Categories)
	case k.Is('n'):
		s.nation = (s.nation + 1) % len(s.opts.Nations)
	case k.Is('a'):
		s.unitAction(func(d *Deck, id UnitID) error { return d.AddUnit(id) })
	case k.Is('r'):
		s.unitAction(func(d *Deck, id UnitID) error { return d.RemoveUnit(id) })
	case k.Is('e'):
		s.status = "Editing decks is not implemented yet."
	case k.Code == KeyLeft:
		s.deckCur.Prev()
	case k.Code == KeyRight:
		s.deckCur.Next(s.catalog.Len())
	case k.Code == KeyUp:
		s.unitCur.Prev()
	case k.Code == KeyDown:
		s.unitCur.Next(len(s.units))
	}
	return Event{}
}

func (s *Session) beginCreate() {
	if s.catalog.Full() {
		s.status = fmt.Sprintf("Deck limit reached (%d/%d).", s.catalog.Len(), s.catalog.Max())
		return
	}
	s.form = &deckForm{
		phase:  phaseNation,
		nation: NewPicker(s.opts.Nations),
		name:   NewLineEditor(s.opts.NameLength),
	}
	s.state = StateCreatingDeck
}

func (s *Session) beginDelete() {
	if s.catalog.Empty() {
		return
	}
	s.state = StateConfirmingDelete
}

func (s *Session) unitAction(apply func(*Deck, UnitID) error) {
	deck, ok := s.SelectedDeck()
	if !ok {
		s.status = "No deck selected."
		return
	}
	unit, ok := s.SelectedUnit()
	if !ok {
		return
	}
	if err := apply(&deck, unit.ID); err != nil {
		s.status = err.Error()
	}
}

func (s *Session) handleCreating(k Key) Event {
	if k.Code == KeyEscape {
		s.form = nil
		s.state = StateBrowsing
		return Event{Kind: EventCancelled}
	}
	switch s.form.phase {
	case phaseNation:
		if s.form.nation.Handle(k) {
			s.form.phase = phaseName
		}
	case phaseName:
		if s.form.name.Handle(k) != EditConfirmed {
			return Event{}
		}
		name, nation := s.form.name.Value(), s.form.nation.Selected()
		s.form = nil
		s.state = StateBrowsing
		deck, err := s.catalog.Create(name, nation)
		if err != nil {
			s.status = err.Error()
			return Event{}
		}
		s.status = "Created deck " + deck.Label() + "."
		return Event{Kind: EventDeckCreated, Deck: deck}
	}
	return Event{}
}

func (s *Session) handleConfirmDelete(k Key) Event {
	s.state = StateBrowsing
	if k.Code != KeyEnter {
		return Event{Kind: EventCancelled}
	}
	deck, err := s.catalog.Delete(s.deckCur.Index())
	s.deckCur.Clamp(s.catalog.Len())
	if err != nil {
		s.status = err.Error()
		return Event{}
	}
	s.status = "Deleted deck " + deck.Label() + "."
	return Event{Kind: EventDeckDeleted, Deck: deck}
}
