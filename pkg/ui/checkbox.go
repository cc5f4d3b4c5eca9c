package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a boolean switch. Keyboard shortcuts write Value directly so the
// panel always shows the live setting.
type Checkbox struct {
	box
	Value bool

	press latch
}

func NewCheckbox(value bool) *Checkbox {
	return &Checkbox{box: box{W: 16, H: 16}, Value: value}
}

func (c *Checkbox) Toggle() { c.Value = !c.Value }

func (c *Checkbox) place(x, y float64) { c.X, c.Y = x, y }

func (c *Checkbox) Height() float64 { return c.H + 4 }

func (c *Checkbox) Update() {
	if c.press.fire(c.hovered()) {
		c.Toggle()
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 2, colorFrame, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.W-6), float32(c.H-6), colorActive, true)
	}
}
