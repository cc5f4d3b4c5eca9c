package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button runs OnClick once per press. Its label is drawn inside the frame.
type Button struct {
	box
	Label   string
	OnClick func()

	Fill  color.RGBA
	Hover color.RGBA

	press latch
}

func NewButton(width, height float64, label string, onClick func()) *Button {
	return &Button{
		box:     box{W: width, H: height},
		Label:   label,
		OnClick: onClick,
		Fill:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		Hover:   color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

func (b *Button) place(x, y float64) { b.X, b.Y = x, y }

func (b *Button) Height() float64 { return b.H + 6 }

func (b *Button) Update() {
	if b.press.fire(b.hovered()) && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill := b.Fill
	if b.hovered() {
		fill = b.Hover
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorFrame, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+b.H/2-8))
}
