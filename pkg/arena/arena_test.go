package arena

import (
	"errors"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

const eps = 1e-9

func testBounds() Bounds {
	return New(500, 300, 30).Bounds()
}

func TestArena_Bounds(t *testing.T) {
	b := testBounds()
	want := Bounds{Left: 30, Right: 530, Top: 30, Bottom: 330}
	if b != want {
		t.Errorf("Bounds() = %+v; want %+v", b, want)
	}
	w, h := New(500, 300, 30).WindowSize()
	if w != 560 || h != 360 {
		t.Errorf("WindowSize() = (%v, %v); want (560, 360)", w, h)
	}
	if !b.Contains(geometry.Vector2D{X: 30, Y: 330}) {
		t.Error("Contains() should include the walls")
	}
	if b.Contains(geometry.Vector2D{X: 29.9, Y: 100}) {
		t.Error("Contains() should exclude points left of the wall")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"wrap", Wrap, false},
		{"infinite", Wrap, false},
		{"", Wrap, false},
		{"Bounce", Bounce, false},
		{"bounce_back", Bounce, false},
		{"sticky", Wrap, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBoundaryMode) {
					t.Errorf("ParseMode(%q) error = %v; want ErrUnknownBoundaryMode", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
	if Wrap.Toggle() != Bounce || Bounce.Toggle() != Wrap {
		t.Error("Toggle() should swap the two modes")
	}
	if Bounce.String() != "bounce" {
		t.Errorf("Bounce.String() = %q", Bounce.String())
	}
}

func TestApply_Wrap(t *testing.T) {
	b := testBounds()
	const r = 10.0

	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"exits left", geometry.Vector2D{X: 19, Y: 100}, geometry.Vector2D{X: 520, Y: 100}},
		{"exits right", geometry.Vector2D{X: 521, Y: 100}, geometry.Vector2D{X: 40, Y: 100}},
		{"exits top", geometry.Vector2D{X: 100, Y: 19}, geometry.Vector2D{X: 100, Y: 320}},
		{"exits bottom", geometry.Vector2D{X: 100, Y: 321}, geometry.Vector2D{X: 100, Y: 40}},
		{"corner", geometry.Vector2D{X: 19, Y: 321}, geometry.Vector2D{X: 520, Y: 40}},
		{"inside", geometry.Vector2D{X: 200, Y: 200}, geometry.Vector2D{X: 200, Y: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, o := Apply(tt.pos, r, b, Wrap, 1.25)
			if !got.Eq(tt.want) {
				t.Errorf("Apply(%v) = %v; want %v", tt.pos, got, tt.want)
			}
			if o != 1.25 {
				t.Errorf("orientation = %v; want unchanged 1.25", o)
			}
		})
	}
}

func TestApply_WrapRoundTrip(t *testing.T) {
	b := testBounds()
	const r = 10.0
	const step = 1.0

	// leaving left puts the center on the right wall
	p, _ := Apply(geometry.Vector2D{X: b.Left - r - step, Y: 100}, r, b, Wrap, 0)
	if p.X+r != b.Right {
		t.Fatalf("center after left exit = %v; want right wall %v", p.X+r, b.Right)
	}

	// leaving right puts the upper-left corner one radius inside the left wall
	p.X += step
	p, _ = Apply(p, r, b, Wrap, 0)
	if p.X != b.Left+r || p.X+r != b.Left+2*r {
		t.Fatalf("after right exit pos.x = %v, center %v; want %v, %v", p.X, p.X+r, b.Left+r, b.Left+2*r)
	}

	// same on the vertical axis
	p, _ = Apply(geometry.Vector2D{X: 100, Y: b.Bottom - r + step}, r, b, Wrap, 0)
	if p.Y != b.Top+r {
		t.Errorf("after bottom exit pos.y = %v; want %v", p.Y, b.Top+r)
	}
	p, _ = Apply(geometry.Vector2D{X: 100, Y: b.Top - r - step}, r, b, Wrap, 0)
	if p.Y+r != b.Bottom {
		t.Errorf("center after top exit = %v; want bottom wall %v", p.Y+r, b.Bottom)
	}
}

func TestApply_OnBoundaryIsNoop(t *testing.T) {
	b := testBounds()
	const r = 10.0
	for _, mode := range []Mode{Wrap, Bounce} {
		for _, pos := range []geometry.Vector2D{
			{X: b.Left - r, Y: 100},
			{X: b.Right - r, Y: 100},
			{X: 100, Y: b.Top - r},
			{X: 100, Y: b.Bottom - r},
		} {
			got, o := Apply(pos, r, b, mode, 0.5)
			if got != pos || o != 0.5 {
				t.Errorf("%v: Apply(%v) = %v, %v; want unchanged", mode, pos, got, o)
			}
		}
	}
}

func TestApply_Bounce(t *testing.T) {
	b := testBounds()
	const r = 10.0
	pi := math.Pi

	tests := []struct {
		name    string
		pos     geometry.Vector2D
		o       float64
		wantPos geometry.Vector2D
		wantO   float64
	}{
		{"right wall heading east", geometry.Vector2D{X: 521, Y: 100}, 0, geometry.Vector2D{X: 519, Y: 100}, pi / 2},
		{"right wall heading south-east", geometry.Vector2D{X: 521, Y: 100}, 7 * pi / 4, geometry.Vector2D{X: 519, Y: 100}, 5 * pi / 4},
		{"right wall heading west untouched", geometry.Vector2D{X: 521, Y: 100}, pi, geometry.Vector2D{X: 519, Y: 100}, pi},
		{"left wall heading north-west", geometry.Vector2D{X: 19, Y: 100}, 3 * pi / 4, geometry.Vector2D{X: 20, Y: 100}, pi / 4},
		{"left wall heading south-west", geometry.Vector2D{X: 19, Y: 100}, 5 * pi / 4, geometry.Vector2D{X: 20, Y: 100}, 7 * pi / 4},
		{"top wall heading north-west", geometry.Vector2D{X: 100, Y: 19}, 3 * pi / 4, geometry.Vector2D{X: 100, Y: 20}, 5 * pi / 4},
		{"top wall heading north-east", geometry.Vector2D{X: 100, Y: 19}, pi / 4, geometry.Vector2D{X: 100, Y: 20}, 7 * pi / 4},
		{"bottom wall heading south-east", geometry.Vector2D{X: 100, Y: 321}, 7 * pi / 4, geometry.Vector2D{X: 100, Y: 319}, pi / 4},
		{"bottom wall heading south-west", geometry.Vector2D{X: 100, Y: 321}, 5 * pi / 4, geometry.Vector2D{X: 100, Y: 319}, 3 * pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, o := Apply(tt.pos, r, b, Bounce, tt.o)
			if !got.Eq(tt.wantPos) {
				t.Errorf("position = %v; want %v", got, tt.wantPos)
			}
			if math.Abs(o-tt.wantO) > eps {
				t.Errorf("orientation = %v; want %v", o, tt.wantO)
			}
			if o < 0 || o >= geometry.TwoPi {
				t.Errorf("orientation %v outside [0, 2Pi)", o)
			}
		})
	}
}

func TestApply_BounceCorner(t *testing.T) {
	b := testBounds()
	// past the right and the top wall while heading north-east
	got, o := Apply(geometry.Vector2D{X: 521, Y: 19}, 10, b, Bounce, math.Pi/4)
	if !got.Eq(geometry.Vector2D{X: 519, Y: 20}) {
		t.Errorf("position = %v; want (519, 20)", got)
	}
	// right wall turns it to 3Pi/4, then the top wall turns it to 5Pi/4
	if math.Abs(o-5*math.Pi/4) > eps {
		t.Errorf("orientation = %v; want 5Pi/4", o)
	}
}
