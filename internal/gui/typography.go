//go:build cgo

package gui

import (
	"os"
	"path/filepath"

	uitheme "github.com/appengine-ltd/ascii-wars/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyState struct {
	font  rl.Font
	owned bool
}

var uiType typographyState

// initTypography prefers a monospace font so text lines up with the cell
// grid; the raylib default font is the fallback.
func initTypography() {
	uiType.font = rl.GetFontDefault()

	fontCandidates := []string{
		filepath.Join("assets", "fonts", "JetBrainsMono-Regular.ttf"),
		filepath.Join("assets", "fonts", "DejaVuSansMono.ttf"),
		filepath.Join("assets", "fonts", "IBMPlexMono-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, uitheme.Grid.FontSize*2); ok {
		uiType.font = f
		uiType.owned = true
	}
	rl.SetTextureFilter(uiType.font.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiType.owned && uiType.font.Texture.ID != 0 {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

// drawCellText draws s starting at the given cell.
func drawCellText(s string, col, row int, clr rl.Color) {
	x := int32(col) * uitheme.Grid.Width
	y := int32(row)*uitheme.Grid.Height + (uitheme.Grid.Height-uitheme.Grid.FontSize)/2
	if !uiType.owned {
		rl.DrawText(s, x, y, uitheme.Grid.FontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.font, s, rl.Vector2{X: float32(x), Y: float32(y)}, float32(uitheme.Grid.FontSize), 1, clr)
}

// fillCells paints a run of n cells, used for highlighted text.
func fillCells(col, row, n int, clr rl.Color) {
	rl.DrawRectangle(int32(col)*uitheme.Grid.Width, int32(row)*uitheme.Grid.Height, int32(n)*uitheme.Grid.Width, uitheme.Grid.Height, clr)
}
