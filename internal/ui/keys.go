package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
)

// keysFromMsg translates a terminal key message. Pasted text arrives as one
// message with several runes and becomes one key per rune. Keys the armoury
// has no binding for become a KeyNone key so they still reach the session.
func keysFromMsg(msg tea.KeyMsg) []armoury.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []armoury.Key{armoury.CodeKey(armoury.KeyEnter)}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []armoury.Key{armoury.CodeKey(armoury.KeyBackspace)}
	case tea.KeyUp:
		return []armoury.Key{armoury.CodeKey(armoury.KeyUp)}
	case tea.KeyDown:
		return []armoury.Key{armoury.CodeKey(armoury.KeyDown)}
	case tea.KeyLeft:
		return []armoury.Key{armoury.CodeKey(armoury.KeyLeft)}
	case tea.KeyRight:
		return []armoury.Key{armoury.CodeKey(armoury.KeyRight)}
	case tea.KeyEsc:
		return []armoury.Key{armoury.CodeKey(armoury.KeyEscape)}
	case tea.KeySpace:
		return []armoury.Key{armoury.RuneKey(' ')}
	case tea.KeyRunes:
		keys := make([]armoury.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, armoury.RuneKey(r))
		}
		return keys
	}
	return []armoury.Key{{Code: armoury.KeyNone}}
}
