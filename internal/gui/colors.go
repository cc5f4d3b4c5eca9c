package gui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// orientationColor maps a heading in [0, 2Pi) onto the hue wheel, east is red.
func orientationColor(orientation float64) color.RGBA {
	hue := geometry.NormalizeAngle(orientation) / geometry.TwoPi * 360
	r, g, b := colorful.Hsv(hue, 0.85, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
