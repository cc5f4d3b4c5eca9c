// Package ui holds the small ebiten widget set of the arena side panel.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight  = 30
	headerHeight = 25
	labelHeight  = 15
	rowGap       = 6
	margin       = 10
	scrollStep   = 20
)

type row struct {
	label  string
	header bool
	inline bool // label drawn right of the widget
	widget Widget

	top     float64
	visible bool
}

func (r *row) height() float64 {
	switch {
	case r.header:
		return headerHeight
	case r.inline:
		return r.widget.Height() + rowGap
	default:
		return labelHeight + r.widget.Height() + rowGap
	}
}

// Panel stacks section headers and labelled widgets in a fixed screen area
// and scrolls them with the wheel while hovered.
type Panel struct {
	box
	Title  string
	Scroll float64

	Fill   color.RGBA
	Border color.RGBA
	Header color.RGBA

	rows []*row
}

func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		box:    box{X: x, Y: y, W: width, H: height},
		Title:  title,
		Fill:   color.RGBA{R: 40, G: 40, B: 45, A: 230},
		Border: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		Header: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// Section starts a new titled group; every following widget belongs to it.
func (p *Panel) Section(title string) {
	p.rows = append(p.rows, &row{label: title, header: true})
}

func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(value)
	p.rows = append(p.rows, &row{label: label, inline: true, widget: c})
	return c
}

func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.W-2*margin, min, max, value)
	p.rows = append(p.rows, &row{label: label, widget: s})
	return s
}

// AddIntSlider adds a slider that snaps to whole numbers.
func (p *Panel) AddIntSlider(label string, min, max, value int) *Slider {
	s := p.AddSlider(label, float64(min), float64(max), float64(value))
	s.Step = 1
	s.SetValue(float64(value))
	return s
}

// AddButton adds a full-width button showing label.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.W-2*margin, 24, label, onClick)
	p.rows = append(p.rows, &row{widget: b})
	return b
}

// Contains reports whether the screen point (x, y) is over the panel.
func (p *Panel) Contains(x, y int) bool {
	return p.contains(x, y)
}

func (p *Panel) contentHeight() float64 {
	h := float64(titleHeight)
	for _, r := range p.rows {
		h += r.height()
	}
	return h
}

// layout places every widget for the current scroll offset. Rows that are
// not entirely inside the panel are marked hidden and get no input.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.Scroll
	for _, r := range p.rows {
		r.top = y
		h := r.height()
		r.visible = y >= p.Y+titleHeight-headerHeight && y+h <= p.Y+p.H
		if r.widget != nil {
			wy := y
			if !r.inline && r.label != "" {
				wy += labelHeight
			}
			r.widget.place(p.X+margin, wy)
		}
		y += h
	}
}

func (p *Panel) Update() {
	// the wheel turns agents when the cursor is over the arena
	if _, dy := ebiten.Wheel(); dy != 0 && p.hovered() {
		limit := max(0, p.contentHeight()-p.H+2*margin)
		p.Scroll = max(0, min(limit, p.Scroll-dy*scrollStep))
	}

	p.layout()
	for _, r := range p.rows {
		if r.widget != nil && r.visible {
			r.widget.Update()
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Fill, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 2, p.Border, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+5))

	p.layout()
	clip := screen.SubImage(image.Rect(int(p.X), int(p.Y+titleHeight), int(p.X+p.W), int(p.Y+p.H))).(*ebiten.Image)
	for _, r := range p.rows {
		switch {
		case r.header:
			vector.FillRect(clip, float32(p.X+5), float32(r.top), float32(p.W-10), headerHeight-5, p.Header, true)
			ebitenutil.DebugPrintAt(clip, r.label, int(p.X+margin), int(r.top+3))
		case r.inline:
			r.widget.Draw(clip)
			ebitenutil.DebugPrintAt(clip, r.label, int(p.X+margin+24), int(r.top))
		default:
			if r.label != "" {
				ebitenutil.DebugPrintAt(clip, r.label, int(p.X+margin), int(r.top))
			}
			r.widget.Draw(clip)
		}
	}
}
