// Package tui renders the arena in a terminal with tcell.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-agent-arena/pb"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

// Projection maps arena pixels onto terminal cells. The arena box fills the
// screen except for the last row, which holds the status line.
type Projection struct {
	Bounds arena.Bounds
	Cols   int
	Rows   int
}

func (p Projection) inner() (int, int) {
	return max(1, p.Cols-2), max(1, p.Rows-3)
}

// ToCell returns the cell of arena point (x, y) and whether it lies inside the box.
func (p Projection) ToCell(x, y float64) (int, int, bool) {
	w, h := p.inner()
	fx := (x - p.Bounds.Left) / (p.Bounds.Right - p.Bounds.Left)
	fy := (y - p.Bounds.Top) / (p.Bounds.Bottom - p.Bounds.Top)
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	col := 1 + min(w-1, int(fx*float64(w)))
	row := 1 + min(h-1, int(fy*float64(h)))
	return col, row, true
}

// ToArena returns the arena point at the center of cell (col, row).
func (p Projection) ToArena(col, row int) (float64, float64) {
	w, h := p.inner()
	x := p.Bounds.Left + (float64(col-1)+0.5)/float64(w)*(p.Bounds.Right-p.Bounds.Left)
	y := p.Bounds.Top + (float64(row-1)+0.5)/float64(h)*(p.Bounds.Bottom-p.Bounds.Top)
	return x, y
}

var headingGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// headingGlyph picks the arrow closest to orientation.
func headingGlyph(orientation float64) rune {
	sector := int(math.Round(geometry.NormalizeAngle(orientation)/(math.Pi/4))) % len(headingGlyphs)
	return headingGlyphs[sector]
}

func orientationStyle(orientation float64) tcell.Style {
	hue := geometry.NormalizeAngle(orientation) / geometry.TwoPi * 360
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

var (
	wallStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	agentStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Reverse(true)
	trailStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Render draws snap without calling Show.
func Render(screen tcell.Screen, snap *pb.Snapshot, proj Projection, c *simulation.Controls) {
	screen.Clear()
	drawBox(screen, proj)

	if c.ShowTrails {
		for _, t := range snap.GetTrails() {
			for i := range t.X {
				if col, row, ok := proj.ToCell(t.X[i], t.Y[i]); ok {
					screen.SetContent(col, row, '·', nil, trailStyle)
				}
			}
		}
	}

	for _, a := range snap.GetAgents() {
		r := a.GetRadius()
		col, row, ok := proj.ToCell(a.GetX()+r, a.GetY()+r)
		if !ok {
			continue
		}
		style := agentStyle
		switch {
		case a.GetSelected():
			style = selectedStyle
		case c.ColorByOrientation:
			style = orientationStyle(a.GetOrientation())
		}
		screen.SetContent(col, row, headingGlyph(a.GetOrientation()), nil, style)
	}

	status := fmt.Sprintf(" t=%d  agents=%d  TPS=%d  %s  collisions=%v  rec=%v",
		snap.GetTick(), len(snap.GetAgents()), c.TPS, c.Settings.Mode, c.Settings.Collisions, c.Settings.Recording)
	if snap.GetPaused() {
		status += "  -Paused-"
	}
	drawText(screen, 0, proj.Rows-1, status, statusStyle)
}

func drawBox(screen tcell.Screen, proj Projection) {
	right, bottom := proj.Cols-1, proj.Rows-2
	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, '─', nil, wallStyle)
		screen.SetContent(x, bottom, '─', nil, wallStyle)
	}
	for y := 1; y < bottom; y++ {
		screen.SetContent(0, y, '│', nil, wallStyle)
		screen.SetContent(right, y, '│', nil, wallStyle)
	}
	screen.SetContent(0, 0, '┌', nil, wallStyle)
	screen.SetContent(right, 0, '┐', nil, wallStyle)
	screen.SetContent(0, bottom, '└', nil, wallStyle)
	screen.SetContent(right, bottom, '┘', nil, wallStyle)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
