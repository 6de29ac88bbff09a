package birdseye

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/engine"
)

// Layout
const (
	cellWidth    = 2 // screen columns per map cell, so cells look square
	hudHeight    = 2
	footerHeight = 1
)

// Visual characters for rendering
const (
	WallChar   = '█'
	RayChar    = '·'
	FacingChar = '•'
	PlayerChar = '@'
)

const helpLine = " ←/→ turn  ↑/↓ move  v rays  p pause  b back  q quit"

// Render draws the HUD, the map, the ray fan, the facing indicator and the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Arena unavailable", g.err.Error())
		return
	case g.tooSmall:
		need := fmt.Sprintf("Need %dx%d", g.arena.Map.Width()*cellWidth, g.arena.Map.Height()+hudHeight+footerHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	p := g.world.Player()
	px, py := g.toScreen(p.Pos)

	// Rays and the indicator may point past the map edge; keep them inside it.
	dst.SetClip(g.mapRect())
	if g.showRays && g.cfg.Rays.Count > 0 && g.cfg.Rays.Length > 0 {
		for _, ray := range engine.Fan(g.cfg.Rays.Count) {
			ex, ey := g.toScreen(p.Pos.Add(ray.Scale(g.cfg.Rays.Length)))
			dst.DrawLine(px, py, ex, ey, RayChar, core.ColorCyan, true)
		}
	}
	g.renderWalls(dst)
	fx, fy := g.toScreen(p.Pos.Add(p.Forward().Scale(g.indicatorLength())))
	dst.DrawLine(px, py, fx, fy, FacingChar, core.ColorRed, true)
	dst.ClearClip()

	dst.SetCell(px, py, PlayerChar, core.ColorYellow)

	dst.DrawText(0, dst.Height()-1, helpLine, core.ColorGray)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// indicatorLength is the facing indicator length in cells: the ray length,
// or one cell when rays are configured away.
func (g *Game) indicatorLength() float64 {
	if g.cfg.Rays.Length > 0 {
		return g.cfg.Rays.Length
	}
	return 1
}

// toScreen converts a map position to the screen cell containing it.
func (g *Game) toScreen(v core.Vec2) (x, y int) {
	return g.mapOffsetX + int(math.Floor(v.X*cellWidth)), g.mapOffsetY + int(math.Floor(v.Y))
}

// mapRect is the screen area covered by the map.
func (g *Game) mapRect() core.Rect {
	return core.NewRect(g.mapOffsetX, g.mapOffsetY, g.arena.Map.Width()*cellWidth, g.arena.Map.Height())
}

// renderWalls draws every wall cell. Walls are drawn after the rays and cover them.
func (g *Game) renderWalls(dst *core.Screen) {
	m := g.arena.Map
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			if !m.IsWall(row, col) {
				continue
			}
			x := g.mapOffsetX + col*cellWidth
			y := g.mapOffsetY + row
			for i := 0; i < cellWidth; i++ {
				dst.SetCell(x+i, y, WallChar, core.ColorBlue)
			}
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.world != nil {
		p := g.world.Player()
		hud = fmt.Sprintf(" %s   pos %.2f, %.2f  angle %5.1f°  %s",
			g.Title(), p.Pos.X, p.Pos.Y, engine.Degrees(engine.NormalizeAngle(p.Angle)), g.lastMove())
	}
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawText(0, 1, strings.Repeat("─", dst.Width()), core.ColorGray)
}

// lastMove describes the latest movement resolution, e.g. "slid (west)".
func (g *Game) lastMove() string {
	res, ok := g.world.LastResolution()
	if !ok {
		return "idle"
	}
	if res.Outcome == engine.Moved {
		return res.Outcome.String()
	}
	return fmt.Sprintf("%s (%s)", res.Outcome, res.Mask)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
