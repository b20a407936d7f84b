package tilewalk

import (
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// hudRows is the number of rows above the viewport.
const hudRows = 2

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderHUD(dst, " "+g.title)
		msg := "World failed to load"
		if g.err != nil {
			msg = g.err.Error()
		}
		renderOverlay(dst, msg, "Press Q to quit")
		return
	}

	f := g.world.Frame()
	g.renderHUD(dst, fmt.Sprintf(" %s  Explored: %d  Tile: %d", g.title, len(g.explored), f.TileIndex))
	if f.Debug {
		dst.DrawTextColor(0, 1, debugLine(f), core.ColorBrightCyan)
	}

	view := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	RenderFrame(dst, view, f, g.theme)

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, hud string) {
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func debugLine(f world.Frame) string {
	return fmt.Sprintf(" pos %d,%d  tile %d  cam %d,%d  facing %s  frame %d ",
		f.Position.X, f.Position.Y, f.TileIndex, f.Camera.X, f.Camera.Y, f.Facing, f.Sprite.Frame)
}

// Scaler maps screen pixels onto terminal cells.
type Scaler struct {
	View   core.Rect // Target cells
	PxPerX int       // Pixels per column
	PxPerY int       // Pixels per row
}

// NewScaler fits a pxW x pxH pixel screen into view.
func NewScaler(view core.Rect, pxW, pxH int) Scaler {
	s := Scaler{View: view, PxPerX: 1, PxPerY: 1}
	if view.W > 0 {
		s.PxPerX = max(1, (pxW+view.W-1)/view.W)
	}
	if view.H > 0 {
		s.PxPerY = max(1, (pxH+view.H-1)/view.H)
	}
	return s
}

// Cells returns the cells covered by a screen-pixel rectangle, clipped to
// the view. Any partial coverage counts.
func (s Scaler) Cells(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := core.FloorDiv(r.X, s.PxPerX)
	y0 := core.FloorDiv(r.Y, s.PxPerY)
	x1 := core.FloorDiv(r.Right()-1, s.PxPerX)
	y1 := core.FloorDiv(r.Bottom()-1, s.PxPerY)
	cells := core.NewRect(s.View.X+x0, s.View.Y+y0, x1-x0+1, y1-y0+1)
	return cells.Intersect(s.View)
}

// RenderFrame draws a world frame into view. Tiles first, then the player,
// then the debug outline.
func RenderFrame(dst *core.Screen, view core.Rect, f world.Frame, theme Theme) {
	if view.Empty() {
		return
	}
	sc := NewScaler(view, f.Camera.W, f.Camera.H)

	if f.Tiles == nil {
		// The world area visible through the camera.
		area := core.NewRect(0, 0, min(f.WorldW, f.Camera.W), min(f.WorldH, f.Camera.H))
		fill(dst, sc.Cells(area), theme.Background)
	}
	for _, tc := range f.Tiles {
		fill(dst, sc.Cells(tc.Screen), theme.TileCell(tc))
	}

	player := sc.Cells(f.Player)
	fill(dst, player, theme.PlayerCell(f.Facing, f.Sprite.Frame))

	if f.Debug && !player.Empty() {
		box := core.NewRect(player.X-1, player.Y-1, player.W+2, player.H+2).Intersect(view)
		dst.DrawBox(box, core.ColorBrightRed)
	}
}

func fill(dst *core.Screen, r core.Rect, c core.Cell) {
	if r.Empty() {
		return
	}
	dst.DrawRect(r, c.Rune, c.Color)
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
