package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
	"github.com/appengine-ltd/ascii-wars/internal/ui/theme"
)

// renderUnitEmblemANSI draws a map-symbol style emblem for u: a frame with
// the branch mark inside and one to three size dots above it. Each text row
// carries two pixel rows. Returns "" when the area is too small.
func renderUnitEmblemANSI(u armoury.Unit, widthChars, heightRows int) string {
	if widthChars < 12 || heightRows < 5 {
		return ""
	}
	widthChars = clampInt(widthChars, 12, 32)
	heightRows = clampInt(heightRows, 5, 12)

	w := float64(widthChars)
	h := float64(heightRows * 2)
	dc := gg.NewContext(widthChars, heightRows*2)

	// Transparent background so the pane stays visible.
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	frame := theme.RGBA(theme.Cyan)
	mark := theme.RGBA(theme.TextPrimary)
	fill := color.RGBA{R: frame.R / 4, G: frame.G / 4, B: frame.B / 4, A: 200}

	x0, y0 := w*0.10, h*0.32
	fw, fh := w*0.80, h*0.60
	cx, cy := x0+fw/2, y0+fh/2

	dc.SetColor(fill)
	dc.DrawRectangle(x0, y0, fw, fh)
	dc.Fill()
	dc.SetColor(frame)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, y0, fw, fh)
	dc.Stroke()

	dots := sizeDots(u.Size)
	for i := 0; i < dots; i++ {
		dx := (float64(i) - float64(dots-1)/2) * 3
		dc.DrawCircle(cx+dx, y0-2.5, 1)
		dc.Fill()
	}

	dc.SetColor(mark)
	dc.SetLineCapRound()
	switch u.Symbol {
	case 'X':
		crossMark(dc, x0, y0, fw, fh)
	case 'T':
		dc.DrawEllipse(cx, cy, fw*0.30, fh*0.28)
		dc.Stroke()
	case 'R':
		dc.DrawLine(x0+1, y0+fh-1, x0+fw-1, y0+1)
		dc.Stroke()
	case 'A':
		dc.DrawCircle(cx, cy, fh*0.2)
		dc.Fill()
	case 'V':
		crossMark(dc, x0, y0, fw, fh)
		dc.DrawEllipse(cx, cy, fw*0.30, fh*0.28)
		dc.Stroke()
	case 'S':
		dc.DrawLine(x0+1, y0+fh*0.72, x0+fw-1, y0+fh*0.72)
		dc.Stroke()
	}

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func crossMark(dc *gg.Context, x0, y0, fw, fh float64) {
	dc.DrawLine(x0+1, y0+1, x0+fw-1, y0+fh-1)
	dc.Stroke()
	dc.DrawLine(x0+1, y0+fh-1, x0+fw-1, y0+1)
	dc.Stroke()
}

func sizeDots(s armoury.SizeClass) int {
	switch s {
	case armoury.SizeSmall:
		return 1
	case armoury.SizeMedium:
		return 2
	case armoury.SizeLarge:
		return 3
	}
	return 0
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
