package drive

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// Glyphs for the character world.
const (
	wallGlyph    = '█'
	curbGlyph    = '▒'
	parkedGlyph  = '▓'
	coneGlyph    = '▲'
	coneHitGlyph = 'x'
	gateGlyph    = '┊'
	carGlyph     = '█'
	lightGlyph   = '●'
)

const hudRows = 2

// viewport maps world units onto a rectangle of cells.
type viewport struct {
	area  core.Rect
	world core.Vec2
	ox    int
}

func (vp viewport) col(x float64) int {
	return vp.area.X + vp.ox + int(math.Floor(x/vp.world.X*float64(vp.area.W)))
}

func (vp viewport) row(y float64) int {
	return vp.area.Y + int(math.Floor(y/vp.world.Y*float64(vp.area.H)))
}

// cellCenter returns the world point at the centre of cell (cx, cy).
func (vp viewport) cellCenter(cx, cy int) core.Vec2 {
	return core.V(
		(float64(cx-vp.area.X-vp.ox)+0.5)/float64(vp.area.W)*vp.world.X,
		(float64(cy-vp.area.Y)+0.5)/float64(vp.area.H)*vp.world.Y,
	)
}

func (vp viewport) set(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if !vp.area.Contains(cx, cy) {
		return
	}
	dst.SetColored(cx, cy, r, c)
}

// Render draws the world, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, "Please resize terminal", core.ColorDim)
		return
	}
	if g.run == nil {
		return
	}

	snap := g.run.Snapshot()
	hud := g.run.HUD()

	frame := core.NewRect(0, hudRows, w, h-hudRows-1)
	dst.DrawBox(frame, core.ColorCyan)
	vp := viewport{
		area:  core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		world: snap.World,
	}
	if snap.Shake > 2 {
		vp.ox = 1 - 2*int(g.frame%2)
	}

	g.renderHUD(dst, hud, snap)
	renderWorld(dst, vp, snap)
	g.renderStatus(dst, hud, snap)
}

func (g *Game) renderHUD(dst *core.Screen, hud HUD, snap Snapshot) {
	left := fmt.Sprintf("%s  [%d/%d]", hud.Stage, snap.StageIndex+1, StageCount())
	dst.DrawTextColored(0, 0, left, core.ColorBrightCyan)

	right := fmt.Sprintf("TIME %ss  PEN +%ss  GEAR %s", hud.Time, hud.Penalty, hud.Gear)
	if hud.Combo != "" {
		right += "  COMBO x" + hud.Combo
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorWhite)

	if hud.Mission != "" {
		dst.DrawTextColored(0, 1, "Mission: "+hud.Mission, core.ColorMagenta)
	}
}

func (g *Game) renderStatus(dst *core.Screen, hud HUD, snap Snapshot) {
	y := dst.Height() - 1
	switch snap.Phase {
	case PhaseFinished:
		if sum, ok := g.run.Summary(); ok {
			msg := fmt.Sprintf("FINISHED %.2fs  %s  grade %s  [N] replay  [B] menu", sum.FinalTime, sum.Medal, sum.Grade)
			dst.DrawTextColored(0, y, msg, core.ColorBrightYellow)
		}
	case PhaseTransition:
		dst.DrawTextColored(0, y, "Stage clear!", core.ColorBrightGreen)
	default:
		dst.DrawTextColored(0, y, hud.Message, core.ColorGray)
	}
}

func renderWorld(dst *core.Screen, vp viewport, snap Snapshot) {
	renderTarget(dst, vp, snap)

	for _, gt := range snap.Gates {
		if gt.Passed {
			continue
		}
		x := vp.col(gt.Pos.X)
		for y := vp.row(gt.Pos.Y - snap.GateSpan); y <= vp.row(gt.Pos.Y+snap.GateSpan); y++ {
			vp.set(dst, x, y, gateGlyph, core.ColorDim)
		}
	}

	for _, ob := range snap.Obstacles {
		glyph, color := wallGlyph, core.ColorMagenta
		switch ob.Kind {
		case ObstacleCurb:
			glyph, color = curbGlyph, core.ColorGray
		case ObstacleParked:
			glyph, color = parkedGlyph, core.ColorBlue
		}
		fillBox(dst, vp, ob.Box, glyph, color)
	}

	for _, hz := range snap.Hazards {
		glyph, color := coneGlyph, core.ColorOrange
		if hz.Hit {
			glyph, color = coneHitGlyph, core.ColorDim
		}
		vp.set(dst, vp.col(hz.Center.X), vp.row(hz.Center.Y), glyph, color)
	}

	if snap.HasLight {
		color := core.ColorBrightRed
		label := "RED"
		if snap.Light == LightGreen {
			color, label = core.ColorBrightGreen, "GO!"
		}
		x, y := vp.col(snap.LightPos.X), vp.row(snap.LightPos.Y)
		vp.set(dst, x, y, lightGlyph, color)
		for i, r := range label {
			vp.set(dst, x+2+i, y, r, color)
		}
	}

	renderCar(dst, vp, snap)
}

func renderTarget(dst *core.Screen, vp viewport, snap Snapshot) {
	b := snap.Target.Box
	if b.W == 0 || b.H == 0 {
		return
	}
	lo, hi := b.Min(), b.Max()
	x0, y0 := vp.col(lo.X), vp.row(lo.Y)
	r := core.NewRect(x0, y0, max(vp.col(hi.X)-x0+1, 2), max(vp.row(hi.Y)-y0+1, 2))

	color := core.ColorGreen
	if snap.WinHold > 0 {
		color = core.ColorBrightYellow
	}
	// Clip to the play area so the frame border stays intact.
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			edge := y == r.Y || y == r.Bottom()-1 || x == r.X || x == r.Right()-1
			if edge {
				vp.set(dst, x, y, '░', color)
			}
		}
	}
}

func fillBox(dst *core.Screen, vp viewport, b core.Box, glyph rune, color core.Color) {
	lo, hi := b.Min(), b.Max()
	for y := vp.row(lo.Y); y <= vp.row(hi.Y); y++ {
		for x := vp.col(lo.X); x <= vp.col(hi.X); x++ {
			vp.set(dst, x, y, glyph, color)
		}
	}
}

// renderCar fills the cells whose centres fall inside the oriented
// footprint, plus the centre cell so the car never vanishes at small sizes.
func renderCar(dst *core.Screen, vp viewport, snap Snapshot) {
	v := snap.Vehicle
	color := core.ColorBrightCyan
	if v.Gear == GearReverse {
		color = core.ColorBrightYellow
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range snap.Corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}

	dir := core.FromAngle(v.Heading)
	front := snap.Corners[0].Add(snap.Corners[1]).Scale(0.5)
	back := snap.Corners[2].Add(snap.Corners[3]).Scale(0.5)
	length := front.Dist(back)
	halfW := snap.Corners[0].Dist(snap.Corners[1]) / 2

	for y := vp.row(minY); y <= vp.row(maxY); y++ {
		for x := vp.col(minX); x <= vp.col(maxX); x++ {
			d := vp.cellCenter(x, y).Sub(back)
			along := d.X*dir.X + d.Y*dir.Y
			side := -d.X*dir.Y + d.Y*dir.X
			if along >= 0 && along <= length && math.Abs(side) <= halfW {
				vp.set(dst, x, y, carGlyph, color)
			}
		}
	}
	vp.set(dst, vp.col(v.Pos.X), vp.row(v.Pos.Y), carGlyph, color)
	vp.set(dst, vp.col(front.X), vp.row(front.Y), headingGlyph(v.Heading), core.ColorWhite)
}

// headingGlyph picks an arrow for the nearest of eight directions.
func headingGlyph(heading float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	oct := int(math.Round(heading/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return arrows[oct]
}
