package armoury

import "unicode"

type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Key is a single input event, independent of the frontend that read it.
type Key struct {
	Code KeyCode
	Rune rune
}

func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func CodeKey(code KeyCode) Key {
	return Key{Code: code}
}

// Ordinal maps a raw character ordinal, as read from a terminal or a window
// character queue, to a Key. 8 and 127 are backspace, 10 and 13 are enter,
// 27 is escape.
func Ordinal(n int) Key {
	switch n {
	case 8, 127:
		return CodeKey(KeyBackspace)
	case 10, 13:
		return CodeKey(KeyEnter)
	case 27:
		return CodeKey(KeyEscape)
	}
	if n <= 0 || n > unicode.MaxRune {
		return Key{}
	}
	return RuneKey(rune(n))
}

// Printable reports whether k is a character in the ASCII range 32-126.
func (k Key) Printable() bool {
	return k.Code == KeyRune && k.Rune >= 32 && k.Rune <= 126
}

// Is reports whether k is the given letter, ignoring case.
func (k Key) Is(letter rune) bool {
	return k.Code == KeyRune && unicode.ToLower(k.Rune) == unicode.ToLower(letter)
}
