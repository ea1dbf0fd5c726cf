package armoury

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Catalog is the ordered collection of a player's decks. Insertion order is
// display order.
type Catalog struct {
	decks      []Deck
	maxDecks   int
	deckLimit  int
	nameLength int
}

func NewCatalog(maxDecks, deckLimit, nameLength int) *Catalog {
	return &Catalog{
		decks:      make([]Deck, 0, maxDecks),
		maxDecks:   maxDecks,
		deckLimit:  deckLimit,
		nameLength: nameLength,
	}
}

func (c *Catalog) Len() int { return len(c.decks) }
func (c *Catalog) Max() int { return c.maxDecks }
func (c *Catalog) Limit() int { return c.deckLimit }
func (c *Catalog) Full() bool { return len(c.decks) >= c.maxDecks }
func (c *Catalog) Empty() bool { return len(c.decks) == 0 }
func (c *Catalog) NameLen() int { return c.nameLength }

func (c *Catalog) At(index int) (Deck, bool) {
	if index < 0 || index >= len(c.decks) {
		return Deck{}, false
	}
	return c.decks[index], true
}

// Decks returns a copy of the catalog in display order.
func (c *Catalog) Decks() []Deck {
	return append([]Deck(nil), c.decks...)
}

// Create appends an empty deck. Nothing is appended on error.
func (c *Catalog) Create(name, nation string) (Deck, error) {
	if c.Full() {
		return Deck{}, fmt.Errorf("create deck %q: %w (%d/%d)", name, ErrCatalogFull, len(c.decks), c.maxDecks)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Deck{}, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > c.nameLength {
		return Deck{}, fmt.Errorf("create deck %q: %w (max %d)", name, ErrNameTooLong, c.nameLength)
	}
	deck := Deck{
		ID:     uuid.New(),
		Name:   name,
		Nation: strings.TrimSpace(nation),
		Limit:  c.deckLimit,
		Units:  []UnitID{},
	}
	c.decks = append(c.decks, deck)
	return deck, nil
}

// Delete removes the deck at index and returns it. Callers holding a cursor
// into the catalog must clamp it to the new length.
func (c *Catalog) Delete(index int) (Deck, error) {
	if len(c.decks) == 0 {
		return Deck{}, ErrCatalogEmpty
	}
	if index < 0 || index >= len(c.decks) {
		return Deck{}, fmt.Errorf("delete deck %d of %d: %w", index, len(c.decks), ErrIndexOutOfRange)
	}
	deck := c.decks[index]
	c.decks = append(c.decks[:index], c.decks[index+1:]...)
	return deck, nil
}
