//go:build cgo

package gui

import (
	"log"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
	"github.com/appengine-ltd/ascii-wars/internal/layout"
	"github.com/appengine-ltd/ascii-wars/internal/ui"
	uitheme "github.com/appengine-ltd/ascii-wars/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// specialKeys are polled each frame. Keys bound to KeyNone do nothing in the
// armoury except answer the delete prompt.
var specialKeys = []struct {
	key  int32
	code armoury.KeyCode
}{
	{rl.KeyEnter, armoury.KeyEnter},
	{rl.KeyKpEnter, armoury.KeyEnter},
	{rl.KeyBackspace, armoury.KeyBackspace},
	{rl.KeyUp, armoury.KeyUp},
	{rl.KeyDown, armoury.KeyDown},
	{rl.KeyLeft, armoury.KeyLeft},
	{rl.KeyRight, armoury.KeyRight},
	{rl.KeyEscape, armoury.KeyEscape},
	{rl.KeyTab, armoury.KeyNone},
	{rl.KeyHome, armoury.KeyNone},
	{rl.KeyEnd, armoury.KeyNone},
	{rl.KeyPageUp, armoury.KeyNone},
	{rl.KeyPageDown, armoury.KeyNone},
	{rl.KeyInsert, armoury.KeyNone},
	{rl.KeyDelete, armoury.KeyNone},
	{rl.KeyF1, armoury.KeyNone},
	{rl.KeyF2, armoury.KeyNone},
	{rl.KeyF3, armoury.KeyNone},
	{rl.KeyF4, armoury.KeyNone},
	{rl.KeyF5, armoury.KeyNone},
	{rl.KeyF6, armoury.KeyNone},
	{rl.KeyF7, armoury.KeyNone},
	{rl.KeyF8, armoury.KeyNone},
	{rl.KeyF9, armoury.KeyNone},
	{rl.KeyF10, armoury.KeyNone},
	{rl.KeyF11, armoury.KeyNone},
	{rl.KeyF12, armoury.KeyNone},
}

type window struct {
	cfg     AppConfig
	session *armoury.Session
	keys    *keyQueue
	quit    bool

	cols int
	rows int
}

func (a *App) Run() error {
	session, err := a.newSession()
	if err != nil {
		return err
	}
	w := &window{cfg: a.cfg, session: session, keys: newKeyQueue(64)}
	return w.Run()
}

func (w *window) Run() error {
	width, height := windowSize(uitheme.Grid)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, "ASCII WARS "+w.cfg.Version)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	log.Printf("window: armoury opened with %d/%d decks", w.session.DeckCount(), w.session.Options().MaxDecks)

	for !w.quit && !rl.WindowShouldClose() {
		w.cols, w.rows = gridSize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), uitheme.Grid)
		w.update()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		w.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (w *window) update() {
	var chars []int32
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		chars = append(chars, ch)
	}
	var specials []armoury.KeyCode
	for _, sk := range specialKeys {
		if rl.IsKeyPressed(sk.key) || rl.IsKeyPressedRepeat(sk.key) {
			specials = append(specials, sk.code)
		}
	}
	for _, k := range frameKeys(chars, specials) {
		if !w.keys.Enqueue(k) {
			log.Printf("window: key queue full, dropped %+v", k)
		}
	}

	for k, ok := w.keys.Dequeue(); ok; k, ok = w.keys.Dequeue() {
		ev := w.session.Handle(k)
		ui.LogEvent(ev)
		if ev.Kind == armoury.EventQuit {
			w.quit = true
			return
		}
	}
}

func (w *window) draw() {
	v := w.session.View()
	p := layout.Compute(w.cols, w.rows-1)
	opts := w.session.Options()

	drawPane(toPixels(p.Decks, uitheme.Grid), true)
	inner := p.Decks.Inner()
	drawCellText(ui.Truncate(ui.DecksTitle(v), inner.W), inner.X, inner.Y, AppTheme.Text)
	drawCells(inner, 1, ui.GridCells(v.Decks, opts.DeckRows, inner.W, inner.H-1))

	drawPane(toPixels(p.Units, uitheme.Grid), true)
	inner = p.Units.Inner()
	drawCellText(ui.TitleUnits, inner.X, inner.Y, AppTheme.Text)
	drawCellText(ui.Truncate(ui.UnitsHeader(v), inner.W), inner.X, inner.Y+1, AppTheme.Muted)
	drawCells(inner, 3, ui.GridCells(v.Units, opts.UnitRows, inner.W, inner.H-3))

	drawPane(toPixels(p.Instructions, uitheme.Grid), false)
	inner = p.Instructions.Inner()
	drawCellText(ui.TitleInstructions, inner.X, inner.Y, AppTheme.Text)
	row := inner.Y + 2
	for i, s := range ui.InstructionSections() {
		if row >= inner.Bottom() {
			break
		}
		drawCellText(ui.Truncate("-- "+s.Title+" --", inner.W), inner.X, row, headerColor(i))
		row++
		row = drawLines(inner, row, s.Lines, AppTheme.Text) + 1
	}

	drawPane(toPixels(p.Info, uitheme.Grid), false)
	inner = p.Info.Inner()
	drawCellText(ui.TitleInfo, inner.X, inner.Y, AppTheme.Text)
	drawLines(inner, inner.Y+2, v.UnitInfo, AppTheme.Text)

	drawPane(toPixels(p.DeckUnits, uitheme.Grid), false)
	inner = p.DeckUnits.Inner()
	drawCellText(ui.TitleDeckUnits, inner.X, inner.Y, AppTheme.Text)
	drawLines(inner, inner.Y+2, v.DeckUnits, AppTheme.Text)

	drawCellText(ui.Truncate(v.Status, p.Width), 0, statusRow(p, w.rows), AppTheme.Status)

	if v.Modal.Kind != armoury.ModalNone {
		drawModalContent(v.Modal, w.cols, w.rows)
	}
}

// drawLines writes lines from row down, stopping at the bottom of inner, and
// returns the next free row.
func drawLines(inner layout.Rect, row int, lines []string, clr rl.Color) int {
	for _, l := range lines {
		if row >= inner.Bottom() {
			break
		}
		drawCellText(ui.Truncate(l, inner.W), inner.X, row, clr)
		row++
	}
	return row
}

func drawCells(inner layout.Rect, offsetY int, cells []ui.Cell) {
	for _, c := range cells {
		col, row := inner.X+c.X, inner.Y+offsetY+c.Y
		if c.Selected {
			fillCells(col, row, len([]rune(c.Text)), AppTheme.Text)
			drawCellText(c.Text, col, row, AppTheme.Background)
			continue
		}
		drawCellText(c.Text, col, row, AppTheme.Text)
	}
}

func drawModalContent(m armoury.Modal, cols, rows int) {
	r := layout.CreateModal(cols, rows)
	if m.Kind == armoury.ModalDelete {
		r = layout.DeleteModal(cols, rows)
	}
	drawModal(toPixels(r, uitheme.Grid))

	inner := r.Inner()
	title, lines := ui.ModalContent(m)
	drawCellText(title, inner.X+1, inner.Y, AppTheme.Text)
	for i, l := range lines {
		row := inner.Y + 1 + i
		if row >= inner.Bottom() {
			break
		}
		text := ui.Truncate(l.Text, inner.W-2)
		if l.Highlight {
			fillCells(inner.X+1, row, len([]rune(text)), AppTheme.Text)
			drawCellText(text, inner.X+1, row, AppTheme.Background)
			continue
		}
		drawCellText(text, inner.X+1, row, AppTheme.Text)
	}
}
