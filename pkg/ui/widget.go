package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	colorFrame  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorTrack  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	colorActive = color.RGBA{R: 100, G: 200, B: 100, A: 255}
)

// Widget is one interactive row of a Panel.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	// Height is the vertical space the row takes below its label.
	Height() float64
	// place moves the widget to its on-screen origin before Update and Draw.
	place(x, y float64)
}

// box is an axis-aligned hit area in screen pixels.
type box struct {
	X, Y, W, H float64
}

func (b box) contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

func (b box) hovered() bool {
	return b.contains(ebiten.CursorPosition())
}

// latch fires once per left-button press over a widget.
type latch struct {
	down bool
}

func (l *latch) fire(over bool) bool {
	if !over || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		l.down = false
		return false
	}
	if l.down {
		return false
	}
	l.down = true
	return true
}
