//go:build cgo

package gui

import (
	uitheme "github.com/appengine-ltd/ascii-wars/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background  rl.Color
	Panel       rl.Color
	PanelFocus  rl.Color
	Border      rl.Color
	BorderFocus rl.Color
	Text        rl.Color
	Muted       rl.Color
	Status      rl.Color
	Headers     []rl.Color
}

var AppTheme = Theme{
	Background:  rlColor(uitheme.BG),
	Panel:       rlColor(uitheme.Panel),
	PanelFocus:  rlColor(uitheme.Mix(uitheme.Panel, uitheme.BorderFocus, 0.08)),
	Border:      rlColor(uitheme.Border),
	BorderFocus: rlColor(uitheme.BorderFocus),
	Text:        rlColor(uitheme.TextPrimary),
	Muted:       rlColor(uitheme.TextMuted),
	Status:      rlColor(uitheme.Amber),
	Headers:     headerColors(),
}

func rlColor(hex string) rl.Color {
	c := uitheme.RGBA(hex)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func headerColors() []rl.Color {
	out := make([]rl.Color, 0, len(uitheme.HeaderPairs))
	for _, p := range uitheme.HeaderPairs {
		out = append(out, rlColor(p.FG))
	}
	return out
}

func headerColor(i int) rl.Color {
	if len(AppTheme.Headers) == 0 {
		return AppTheme.Text
	}
	return AppTheme.Headers[i%len(AppTheme.Headers)]
}

func drawPane(r pixelRect, focused bool) {
	stroke, fill := AppTheme.Border, AppTheme.Panel
	if focused {
		stroke, fill = AppTheme.BorderFocus, AppTheme.PanelFocus
	}
	cw, ch := uitheme.Grid.Width, uitheme.Grid.Height
	rl.DrawRectangle(r.X, r.Y, r.W, r.H, fill)
	rl.DrawRectangleLines(r.X+cw/2, r.Y+ch/2, r.W-cw, r.H-ch, stroke)
}

// drawModal clears the area behind the box and draws a double border.
func drawModal(r pixelRect) {
	cw, ch := uitheme.Grid.Width, uitheme.Grid.Height
	rl.DrawRectangle(r.X, r.Y, r.W, r.H, AppTheme.Background)
	rl.DrawRectangleLines(r.X+cw/2, r.Y+ch/2, r.W-cw, r.H-ch, AppTheme.BorderFocus)
	rl.DrawRectangleLines(r.X+cw/2+3, r.Y+ch/2+3, r.W-cw-6, r.H-ch-6, AppTheme.BorderFocus)
}
