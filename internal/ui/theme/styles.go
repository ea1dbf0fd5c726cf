package theme

import "github.com/charmbracelet/lipgloss"

func Style(p Pair) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.FG)).Background(lipgloss.Color(p.BG))
}

var (
	Title    = Style(TitlePair).Bold(true)
	Text     = lipgloss.NewStyle().Foreground(lipgloss.Color(TextPrimary))
	Muted    = lipgloss.NewStyle().Foreground(lipgloss.Color(TextMuted))
	Selected = lipgloss.NewStyle().Reverse(true)
	Status   = lipgloss.NewStyle().Foreground(lipgloss.Color(Amber))
)

// Header styles the i-th instruction section header, cycling through
// HeaderPairs.
func Header(i int) lipgloss.Style {
	if len(HeaderPairs) == 0 {
		return Text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(HeaderPairs[i%len(HeaderPairs)].FG)).Bold(true)
}

// Pane is a bordered box with the given outer size in cells.
func Pane(width, height int, focused bool) lipgloss.Style {
	border := Border
	if focused {
		border = BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(max(width-2, 0)).
		Height(max(height-2, 0))
}

// Modal is a pane drawn with a double border over the screen.
func Modal(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(BorderFocus)).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Height(max(height-2, 0))
}
