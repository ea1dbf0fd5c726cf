// Package layout computes the Armoury screen panes as fractions of the
// available terminal or window size, in character cells.
package layout

import (
	"math"

	"github.com/dariubs/percent"
)

const (
	MinWidth  = 80
	MinHeight = 24

	leftPercent   = 50
	middlePercent = 25
	topPercent    = 45

	createHeightPercent = 33
	createWidthPercent  = 25
	deleteHeightPercent = 20
	deleteWidthPercent  = 20
)

// Rect is an outer box including its border.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Inner is the area left inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

type Panes struct {
	Width, Height int
	Decks         Rect
	Instructions  Rect
	Units         Rect
	Info          Rect
	DeckUnits     Rect
}

// Compute splits the screen into three columns. The left column holds the
// deck list over the unit list, the middle column the instructions over the
// unit info, and the right column the selected deck's contents. Sizes below
// MinWidth x MinHeight are treated as the minimum.
func Compute(width, height int) Panes {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	leftW := cells(leftPercent, width)
	midW := cells(middlePercent, width)
	rightW := width - leftW - midW
	topH := cells(topPercent, height)
	bottomH := height - topH

	return Panes{
		Width:        width,
		Height:       height,
		Decks:        Rect{X: 0, Y: 0, W: leftW, H: topH},
		Units:        Rect{X: 0, Y: topH, W: leftW, H: bottomH},
		Instructions: Rect{X: leftW, Y: 0, W: midW, H: topH},
		Info:         Rect{X: leftW, Y: topH, W: midW, H: bottomH},
		DeckUnits:    Rect{X: leftW + midW, Y: 0, W: rightW, H: height},
	}
}

// CreateModal is the nation picker and name prompt box, centred.
func CreateModal(width, height int) Rect {
	return centred(width, height, cells(createWidthPercent, width), cells(createHeightPercent, height), 36, 11)
}

// DeleteModal is the confirmation box, centred.
func DeleteModal(width, height int) Rect {
	return centred(width, height, cells(deleteWidthPercent, width), cells(deleteHeightPercent, height), 36, 8)
}

// Fill reports how full a catalog is as a whole percentage in [0, 100].
func Fill(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	p := int(math.Round(percent.PercentOf(count, limit)))
	return min(p, 100)
}

func cells(pcent, all int) int {
	return int(percent.Percent(pcent, all))
}

func centred(width, height, w, h, minW, minH int) Rect {
	width = max(width, MinWidth)
	height = max(height, MinHeight)
	w = min(max(w, minW), width)
	h = min(max(h, minH), height)
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}
