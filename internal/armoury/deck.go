package armoury

import (
	"fmt"

	"github.com/google/uuid"
)

type Deck struct {
	ID     uuid.UUID
	Name   string
	Nation string
	Limit  int
	Units  []UnitID
}

// Size is the number of units in the deck.
func (d Deck) Size() int {
	return len(d.Units)
}

// Label is the catalog entry text, e.g. "[USA]Alpha (0/25)".
func (d Deck) Label() string {
	if d.Nation == "" {
		return fmt.Sprintf("%s (%d/%d)", d.Name, d.Size(), d.Limit)
	}
	return fmt.Sprintf("[%s]%s (%d/%d)", d.Nation, d.Name, d.Size(), d.Limit)
}

func (d *Deck) AddUnit(id UnitID) error {
	return fmt.Errorf("add unit %d to deck %q: %w", id, d.Name, ErrNotImplemented)
}

func (d *Deck) RemoveUnit(id UnitID) error {
	return fmt.Errorf("remove unit %d from deck %q: %w", id, d.Name, ErrNotImplemented)
}
