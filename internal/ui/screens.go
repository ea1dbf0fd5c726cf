package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

type screen int

const (
	screenMenu screen = iota
	screenMultiplayer
	screenArmoury
)

var ErrUnknownScreen = errors.New("unknown screen")

var screenNames = []struct {
	name   string
	screen screen
}{
	{"menu", screenMenu},
	{"multiplayer", screenMultiplayer},
	{"armoury", screenArmoury},
}

func (s screen) String() string {
	for _, n := range screenNames {
		if n.screen == s {
			return n.name
		}
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// ScreenNames lists the values accepted by LookupScreen.
func ScreenNames() []string {
	out := make([]string, 0, len(screenNames))
	for _, n := range screenNames {
		out = append(out, n.name)
	}
	return out
}

// ValidateScreen reports whether name selects a start screen. Near misses get
// a suggestion in the error text.
func ValidateScreen(name string) error {
	_, err := lookupScreen(name)
	return err
}

func lookupScreen(name string) (screen, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return screenMenu, nil
	}
	best, bestDist := "", -1
	for _, n := range screenNames {
		if n.name == name {
			return n.screen, nil
		}
		dist := levenshtein.ComputeDistance(name, n.name)
		if dist > suggestLimit(len(n.name)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = n.name, dist
		}
	}
	if best != "" {
		return screenMenu, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownScreen, name, best)
	}
	return screenMenu, fmt.Errorf("%w %q, want one of %s", ErrUnknownScreen, name, strings.Join(ScreenNames(), ", "))
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
