package armoury

import "strings"

type EditResult int

const (
	EditContinue EditResult = iota
	EditConfirmed
)

// LineEditor captures one bounded line of text from key events. The buffer
// always holds Cap runes; unused positions are blanks.
type LineEditor struct {
	buf []rune
	n   int
}

func NewLineEditor(capacity int) *LineEditor {
	if capacity < 1 {
		capacity = 1
	}
	buf := make([]rune, capacity)
	for i := range buf {
		buf[i] = ' '
	}
	return &LineEditor{buf: buf}
}

func (e *LineEditor) Len() int { return e.n }
func (e *LineEditor) Cap() int { return len(e.buf) }

// Insert appends a printable ASCII character. It reports false when the
// buffer is full or r is not printable.
func (e *LineEditor) Insert(r rune) bool {
	if r < 32 || r > 126 || e.n >= len(e.buf) {
		return false
	}
	e.buf[e.n] = r
	e.n++
	return true
}

// DeleteLast blanks the last typed character. No-op at position 0.
func (e *LineEditor) DeleteLast() bool {
	if e.n == 0 {
		return false
	}
	e.n--
	e.buf[e.n] = ' '
	return true
}

// Value is the typed text with surrounding blanks removed.
func (e *LineEditor) Value() string {
	return strings.TrimSpace(string(e.buf[:e.n]))
}

// Field is the whole fixed-width buffer, for drawing over the previous
// contents in place.
func (e *LineEditor) Field() string {
	return string(e.buf)
}

func (e *LineEditor) Handle(k Key) EditResult {
	switch {
	case k.Code == KeyEnter:
		if e.Value() != "" {
			return EditConfirmed
		}
	case k.Code == KeyBackspace:
		e.DeleteLast()
	case k.Printable():
		e.Insert(k.Rune)
	}
	return EditContinue
}
