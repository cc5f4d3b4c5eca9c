package collision

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

const eps = 1e-9

func at(id int64, x, y, r float64) *agent.Agent {
	return agent.New(id, r, geometry.Vector2D{X: x, Y: y}, 0)
}

func randomAgents(n int, size float64, seed uint64) []*agent.Agent {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
	agents := make([]*agent.Agent, n)
	for i := range agents {
		r := 2 + rng.Float64()*8
		agents[i] = agent.New(int64(i), r, geometry.Vector2D{X: rng.Float64()*size - r, Y: rng.Float64()*size - r}, rng.Float64()*geometry.TwoPi)
	}
	return agents
}

func TestColliding(t *testing.T) {
	tests := []struct {
		name string
		a, b *agent.Agent
		want bool
	}{
		{"overlap", at(1, 0, 0, 10), at(2, 15, 0, 10), true},
		{"touching is not colliding", at(1, 0, 0, 10), at(2, 20, 0, 10), false},
		{"apart", at(1, 0, 0, 10), at(2, 50, 50, 10), false},
		{"different radii", at(1, 0, 0, 10), at(2, 10, 10, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colliding(tt.a, tt.b); got != tt.want {
				t.Errorf("Colliding() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPairwise_Detect(t *testing.T) {
	agents := []*agent.Agent{
		at(1, 0, 0, 10),
		at(2, 15, 0, 10),
		at(3, 200, 200, 10),
		at(4, 5, 5, 10),
	}
	got := Pairwise{}.Detect(agents)
	want := []Pair{{0, 1}, {0, 3}, {1, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Detect() = %v; want %v", got, want)
	}
	for _, p := range got {
		if p.A >= p.B {
			t.Errorf("pair %v is not ordered", p)
		}
	}
}

func TestGrid_MatchesPairwise(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 100, 400} {
		agents := randomAgents(n, 300, uint64(n)+1)
		want := Pairwise{}.Detect(agents)
		grid := NewGrid()
		got := grid.Detect(agents)
		if !slices.Equal(got, want) {
			t.Errorf("n=%d: Grid.Detect() = %v; want %v", n, got, want)
		}
		// a reused grid must not keep stale cells
		agents = randomAgents(n, 300, uint64(n)+100)
		if got, want := grid.Detect(agents), (Pairwise{}).Detect(agents); !slices.Equal(got, want) {
			t.Errorf("n=%d: reused Grid.Detect() differs from Pairwise", n)
		}
	}
}

func TestGrid_NegativeCoordinates(t *testing.T) {
	agents := []*agent.Agent{at(1, -12, -12, 5), at(2, -4, -12, 5), at(3, 3, -12, 5)}
	want := Pairwise{}.Detect(agents)
	if got := NewGrid().Detect(agents); !slices.Equal(got, want) {
		t.Errorf("Grid.Detect() = %v; want %v", got, want)
	}
}

func TestNewDetector(t *testing.T) {
	if d, err := NewDetector("grid"); err != nil {
		t.Errorf("NewDetector(grid) error = %v", err)
	} else if _, ok := d.(*Grid); !ok {
		t.Errorf("NewDetector(grid) = %T; want *Grid", d)
	}
	if d, err := NewDetector("pairwise"); err != nil || d == nil {
		t.Errorf("NewDetector(pairwise) = %v, %v", d, err)
	}
	if _, err := NewDetector("quadtree"); !errors.Is(err, ErrUnknownIndex) {
		t.Errorf("NewDetector(quadtree) error = %v; want ErrUnknownIndex", err)
	}
}

func TestResolve_Turn(t *testing.T) {
	tests := []struct {
		name      string
		reactorX  float64
		reactorY  float64
		orient    float64
		wantDelta float64
	}{
		// bearing 0 + orientation 0 is in [0, Pi]
		{"reactor east of instigator", 10, 0, 0, -TurnStep},
		// bearing Pi/2 (screen down) + Pi is 3Pi/2
		{"reactor below, heading west", 0, 10, math.Pi, TurnStep},
		// bearing -Pi/2 (screen up) + 0 wraps to 3Pi/2
		{"reactor above, heading east", 0, -10, 0, TurnStep},
		{"bearing exactly Pi", -10, 0, 0, -TurnStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instigator := at(1, 0, 0, 10)
			reactor := agent.New(2, 10, geometry.Vector2D{X: tt.reactorX, Y: tt.reactorY}, tt.orient)
			before := instigator.Orientation
			Resolve(instigator, reactor)
			if got := reactor.Orientation - tt.orient; math.Abs(got-tt.wantDelta) > eps {
				t.Errorf("orientation delta = %v; want %v", got, tt.wantDelta)
			}
			if instigator.Orientation != before || instigator.Velocity != agent.DefaultVelocity {
				t.Error("instigator must not be mutated")
			}
		})
	}
}

func TestResolve_TurnIsNotNormalized(t *testing.T) {
	instigator := at(1, 0, 0, 10)
	reactor := at(2, 10, 0, 10)
	Resolve(instigator, reactor)
	if reactor.Orientation != -TurnStep {
		t.Errorf("orientation = %v; want raw -Pi/8 until the next update", reactor.Orientation)
	}
}

// The one-tick overspeed above VMax is intentional and must be kept.
func TestResolve_OverspeedFidelity(t *testing.T) {
	instigator := at(1, 0, 0, 10)
	reactor := at(2, 10, 0, 10)

	Resolve(instigator, reactor)
	if reactor.Velocity != reactor.VMax+Overspeed {
		t.Fatalf("velocity at cap = %v; want VMax+0.5 = %v", reactor.Velocity, reactor.VMax+Overspeed)
	}
	if !reactor.Overspeed() {
		t.Error("Overspeed() = false right after a collision at the cap")
	}

	Resolve(instigator, reactor)
	if reactor.Velocity != reactor.VMax {
		t.Errorf("velocity above cap = %v; want snapped to VMax", reactor.Velocity)
	}

	reactor.Velocity = 0.2
	Resolve(instigator, reactor)
	if reactor.Velocity != reactor.VMax {
		t.Errorf("velocity below cap = %v; want snapped to VMax", reactor.Velocity)
	}

	reactor.Velocity = reactor.VMax
	Resolve(instigator, reactor)
	reactor.Update(agent.TickContext{
		Dt:     agent.DefaultDt,
		Bounds: arena.Bounds{Left: -1e6, Right: 1e6, Top: -1e6, Bottom: 1e6},
	})
	if reactor.Velocity != reactor.VMax {
		t.Errorf("velocity after update = %v; want clamped back to VMax", reactor.Velocity)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		a1, b1 := at(1, 3, 4, 10), agent.New(2, 10, geometry.Vector2D{X: 9, Y: 1}, 2.2)
		a2, b2 := at(1, 3, 4, 10), agent.New(2, 10, geometry.Vector2D{X: 9, Y: 1}, 2.2)
		b1.Velocity, b2.Velocity = 0.4, 0.4
		Resolve(a1, b1)
		Resolve(a2, b2)
		if *b1 != *b2 {
			t.Fatalf("Resolve() is not deterministic: %v vs %v", b1, b2)
		}
	}
}

func TestResolveAll_BothDirections(t *testing.T) {
	agents := []*agent.Agent{at(1, 0, 0, 10), at(2, 10, 0, 10)}
	n := ResolveAll(agents, Pairwise{}.Detect(agents))
	if n != 1 {
		t.Fatalf("ResolveAll() = %d; want 1", n)
	}
	for _, a := range agents {
		if a.Velocity != a.VMax+Overspeed {
			t.Errorf("%v: velocity = %v; want both agents to react", a, a.Velocity)
		}
	}
}

func BenchmarkPairwise_500(b *testing.B) {
	agents := randomAgents(500, 800, 42)
	d := Pairwise{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Detect(agents)
	}
}

func BenchmarkGrid_500(b *testing.B) {
	agents := randomAgents(500, 800, 42)
	d := NewGrid()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Detect(agents)
	}
}
