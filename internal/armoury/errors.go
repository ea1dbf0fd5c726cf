package armoury

import "errors"

var (
	// ErrCatalogFull is returned when creating a deck would exceed MaxDecks.
	ErrCatalogFull = errors.New("deck catalog is full")
	// ErrCatalogEmpty is returned when deleting from a catalog with no decks.
	ErrCatalogEmpty = errors.New("deck catalog is empty")

	ErrIndexOutOfRange = errors.New("deck index out of range")
	ErrEmptyName       = errors.New("deck name is empty")
	ErrNameTooLong     = errors.New("deck name is too long")
	ErrNotImplemented  = errors.New("not implemented")
	ErrInvalidOptions  = errors.New("invalid armoury options")
)
