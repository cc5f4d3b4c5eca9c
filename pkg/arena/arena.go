// Package arena holds the spatial bounds of the simulation and the boundary policy
// applied to agents that leave them.
package arena

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// ErrUnknownBoundaryMode is returned by ParseMode for names it does not know.
var ErrUnknownBoundaryMode = errors.New("unknown boundary mode")

// Mode selects what happens to an agent whose center leaves the arena.
type Mode int

const (
	// Wrap makes the arena a torus: leaving one edge re-enters from the opposite one.
	Wrap Mode = iota
	// Bounce reflects the agent off the wall it crossed.
	Bounce
)

func (m Mode) String() string {
	switch m {
	case Wrap:
		return "wrap"
	case Bounce:
		return "bounce"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Bounce {
		return Wrap
	}
	return Bounce
}

// ParseMode accepts "wrap" (alias "infinite") and "bounce" (alias "bounce_back").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap", "infinite":
		return Wrap, nil
	case "bounce", "bounce_back":
		return Bounce, nil
	default:
		return Wrap, fmt.Errorf("%w: %q", ErrUnknownBoundaryMode, s)
	}
}

// Bounds are the four wall coordinates in arena pixel space.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Contains reports whether p lies inside the bounds, walls included.
func (b Bounds) Contains(p geometry.Vector2D) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Arena is the simulatable interior plus a symmetric padding margin.
type Arena struct {
	Width   float64
	Height  float64
	Padding float64
}

// New returns an Arena of the given interior size and padding.
func New(width, height, padding float64) Arena {
	return Arena{Width: width, Height: height, Padding: padding}
}

// Bounds returns x in [Padding, Padding+Width] and y in [Padding, Padding+Height].
func (a Arena) Bounds() Bounds {
	return Bounds{
		Left:   a.Padding,
		Right:  a.Padding + a.Width,
		Top:    a.Padding,
		Bottom: a.Padding + a.Height,
	}
}

// WindowSize is the full drawable size, padding included on every side.
func (a Arena) WindowSize() (float64, float64) {
	return a.Width + 2*a.Padding, a.Height + 2*a.Padding
}

// Apply corrects the upper-left position pos of a circle of the given radius whose
// center may have left b, and returns the new position and orientation.
// Only strict crossings trigger a correction. Axes that are not corrected are
// returned untouched.
func Apply(pos geometry.Vector2D, radius float64, b Bounds, mode Mode, orientation float64) (geometry.Vector2D, float64) {
	x := pos.X + radius
	y := pos.Y + radius

	if mode == Wrap {
		if x < b.Left {
			pos.X = b.Right - radius
		} else if x > b.Right {
			pos.X = b.Left + radius
		}
		if y < b.Top {
			pos.Y = b.Bottom - radius
		} else if y > b.Bottom {
			pos.Y = b.Top + radius
		}
		return pos, orientation
	}

	if x < b.Left {
		pos.X = b.Left - radius
		switch {
		case orientation >= math.Pi/2 && orientation < math.Pi:
			orientation -= math.Pi / 2
		case orientation >= math.Pi && orientation <= 3*math.Pi/2:
			orientation += math.Pi / 2
		}
		orientation = geometry.NormalizeAngle(orientation)
	}
	if x > b.Right {
		pos.X = b.Right - radius - 1
		switch {
		case orientation >= 3*math.Pi/2 && orientation < geometry.TwoPi:
			orientation -= math.Pi / 2
		case orientation >= 0 && orientation <= math.Pi/2:
			orientation += math.Pi / 2
		}
		orientation = geometry.NormalizeAngle(orientation)
	}
	if y < b.Top {
		pos.Y = b.Top - radius
		switch {
		case orientation >= math.Pi/2 && orientation <= math.Pi:
			orientation += math.Pi / 2
		case orientation >= 0 && orientation < math.Pi/2:
			orientation -= math.Pi / 2
		}
		orientation = geometry.NormalizeAngle(orientation)
	}
	if y > b.Bottom {
		pos.Y = b.Bottom - radius - 1
		switch {
		case orientation >= 3*math.Pi/2 && orientation <= geometry.TwoPi:
			orientation += math.Pi / 2
		case orientation >= math.Pi && orientation < 3*math.Pi/2:
			orientation -= math.Pi / 2
		}
		orientation = geometry.NormalizeAngle(orientation)
	}
	return pos, orientation
}
