package gui

import (
	"github.com/appengine-ltd/ascii-wars/internal/layout"
	"github.com/appengine-ltd/ascii-wars/internal/ui/theme"
)

type pixelRect struct {
	X, Y, W, H int32
}

func toPixels(r layout.Rect, c theme.Cells) pixelRect {
	return pixelRect{
		X: int32(r.X) * c.Width,
		Y: int32(r.Y) * c.Height,
		W: int32(r.W) * c.Width,
		H: int32(r.H) * c.Height,
	}
}

// gridSize is the number of whole character cells that fit in the window.
func gridSize(widthPx, heightPx int32, c theme.Cells) (cols, rows int) {
	if c.Width <= 0 || c.Height <= 0 {
		return 0, 0
	}
	return int(widthPx / c.Width), int(heightPx / c.Height)
}

// windowSize is the pixel size needed for the minimum layout.
func windowSize(c theme.Cells) (int32, int32) {
	return int32(layout.MinWidth+40) * c.Width, int32(layout.MinHeight+12) * c.Height
}

// statusRow is the row under the panes, pulled up onto the last visible row
// when the window is shorter than the minimum layout.
func statusRow(p layout.Panes, rows int) int {
	return max(min(p.Height, rows-1), 0)
}
