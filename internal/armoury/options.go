package armoury

import "fmt"

const (
	DefaultMaxDecks      = 20
	DefaultDeckSizeLimit = 25
	DefaultNameLength    = 15
	DefaultDeckRows      = 10
	DefaultUnitRows      = 15
)

type Options struct {
	MaxDecks      int
	DeckSizeLimit int
	NameLength    int
	DeckRows      int
	UnitRows      int
	Nations       []string
	Categories    []string
}

func DefaultNations() []string {
	return []string{"USA", "RUS", "GER", "CHI", "FIN", "GBR", "FRA", "POL", "IRN", "JAP"}
}

func DefaultCategories() []string {
	return []string{"Infantry", "Armour", "Support", "Logistics", "Drones", "Helicopters", "Airforce", "Naval"}
}

func DefaultOptions() Options {
	return Options{
		MaxDecks:      DefaultMaxDecks,
		DeckSizeLimit: DefaultDeckSizeLimit,
		NameLength:    DefaultNameLength,
		DeckRows:      DefaultDeckRows,
		UnitRows:      DefaultUnitRows,
		Nations:       DefaultNations(),
		Categories:    DefaultCategories(),
	}
}

// WithDefaults swaps zero Options and empty Units for the built-in ones, so a
// frontend started without a config still gets a playable armoury.
func WithDefaults(opts Options, units Units) (Options, Units) {
	if opts.MaxDecks == 0 && len(opts.Nations) == 0 {
		opts = DefaultOptions()
	}
	if len(units) == 0 {
		units = DefaultUnits()
	}
	return opts, units
}

func (o Options) Validate() error {
	if o.MaxDecks < 1 {
		return fmt.Errorf("%w: max decks must be positive, got %d", ErrInvalidOptions, o.MaxDecks)
	}
	if o.DeckSizeLimit < 1 {
		return fmt.Errorf("%w: deck size limit must be positive, got %d", ErrInvalidOptions, o.DeckSizeLimit)
	}
	if o.NameLength < 1 {
		return fmt.Errorf("%w: name length must be positive, got %d", ErrInvalidOptions, o.NameLength)
	}
	if o.DeckRows < 1 || o.UnitRows < 1 {
		return fmt.Errorf("%w: grid rows must be positive, got decks=%d units=%d", ErrInvalidOptions, o.DeckRows, o.UnitRows)
	}
	if len(o.Nations) == 0 {
		return fmt.Errorf("%w: no nations", ErrInvalidOptions)
	}
	if len(o.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidOptions)
	}
	return nil
}
