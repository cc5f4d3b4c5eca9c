package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker. A positive Step snaps the value.
type Slider struct {
	box
	Value    float64
	Min, Max float64
	Step     float64
}

// NewSlider returns a 10px high track of width w.
func NewSlider(w, min, max, value float64) *Slider {
	s := &Slider{box: box{W: w, H: 10}, Min: min, Max: max}
	s.SetValue(value)
	return s
}

// SetValue clamps v to [Min, Max] and snaps it to Step.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Int returns the value rounded to the nearest integer.
func (s *Slider) Int() int {
	return int(math.Round(s.Value))
}

func (s *Slider) place(x, y float64) { s.X, s.Y = x, y }

func (s *Slider) Height() float64 { return s.H + 14 }

// Update follows the cursor while the left button is held on the track.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if s.contains(mx, my) && s.W > 0 {
		s.SetValue(s.Min + (float64(mx)-s.X)/s.W*(s.Max-s.Min))
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), colorTrack, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), colorFrame, true)

	format := "%.2f"
	if s.Step >= 1 {
		format = "%.0f"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, s.Value), int(s.X+s.W-40), int(s.Y-15))
}
