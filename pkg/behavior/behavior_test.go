package behavior

import (
	"errors"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		err  bool
	}{
		{"", KindNone, false},
		{"none", KindNone, false},
		{"Brownian", KindBrownian, false},
		{"flocking", KindFlocking, false},
		{"swarm", KindNone, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownBehavior) {
				t.Errorf("Parse(%q) error = %v; want ErrUnknownBehavior", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestNone_LeavesDrive(t *testing.T) {
	a := agent.New(1, 5, geometry.Vector2D{}, 0)
	a.Dtheta, a.Dv = 0.3, 0.1
	None{}.Steer(a, []*agent.Agent{a})
	if a.Dtheta != 0.3 || a.Dv != 0.1 {
		t.Errorf("None changed the drive to (%v, %v)", a.Dv, a.Dtheta)
	}
}

func TestBrownian_BoundedAndReproducible(t *testing.T) {
	b1 := NewBrownian(5, 2, 7)
	b2 := NewBrownian(5, 2, 7)
	a1 := agent.New(1, 5, geometry.Vector2D{}, 0)
	a2 := agent.New(1, 5, geometry.Vector2D{}, 0)

	spread := 0.0
	for i := 0; i < 1000; i++ {
		b1.Steer(a1, nil)
		b2.Steer(a2, nil)
		if a1.Dtheta != a2.Dtheta {
			t.Fatalf("same seed produced %v and %v", a1.Dtheta, a2.Dtheta)
		}
		if math.Abs(a1.Dtheta) > 2 {
			t.Fatalf("Dtheta %v above MaxTurn 2", a1.Dtheta)
		}
		spread = math.Max(spread, math.Abs(a1.Dtheta))
	}
	if spread == 0 {
		t.Error("Brownian never turned")
	}
}

func TestFlocking_Separation(t *testing.T) {
	f := DefaultFlocking()
	f.AlignFactor, f.CohesionFactor = 0, 0

	// heading east with a neighbor just to the north-east: turn right (clockwise)
	self := agent.New(1, 5, geometry.Vector2D{X: 100, Y: 100}, 0)
	other := agent.New(2, 5, geometry.Vector2D{X: 105, Y: 95}, 0)
	f.Steer(self, []*agent.Agent{self, other})
	if self.Dtheta >= 0 {
		t.Errorf("Dtheta = %v; want a clockwise turn away from the neighbor", self.Dtheta)
	}
}

func TestFlocking_Cohesion(t *testing.T) {
	f := DefaultFlocking()
	f.SeparationFactor, f.AlignFactor = 0, 0
	f.CohesionFactor = 0.1

	// heading east with a distant neighbor to the north: turn left (counter-clockwise)
	self := agent.New(1, 5, geometry.Vector2D{X: 100, Y: 100}, 0)
	other := agent.New(2, 5, geometry.Vector2D{X: 100, Y: 50}, 0)
	f.Steer(self, []*agent.Agent{self, other})
	if self.Dtheta <= 0 {
		t.Errorf("Dtheta = %v; want a counter-clockwise turn toward the neighbor", self.Dtheta)
	}
}

func TestFlocking_AlignmentIgnoresNeighborSpeed(t *testing.T) {
	f := DefaultFlocking()
	f.SeparationFactor, f.CohesionFactor = 0, 0
	f.AlignFactor = 0.5

	steer := func(speed float64) float64 {
		// heading east next to a neighbor moving north (vy is +y up)
		self := agent.New(1, 5, geometry.Vector2D{X: 100, Y: 100}, 0)
		other := agent.New(2, 5, geometry.Vector2D{X: 140, Y: 100}, math.Pi/2)
		other.Vx, other.Vy = 0, speed
		f.Steer(self, []*agent.Agent{self, other})
		return self.Dtheta
	}

	slow, fast := steer(0.2), steer(5)
	if slow <= 0 {
		t.Errorf("Dtheta = %v; want a counter-clockwise turn toward the neighbor's heading", slow)
	}
	if math.Abs(slow-fast) > 1e-9 {
		t.Errorf("Dtheta slow = %v, fast = %v; want the same turn", slow, fast)
	}
}

func TestFlocking_AloneCruises(t *testing.T) {
	f := DefaultFlocking()
	self := agent.New(1, 5, geometry.Vector2D{X: 100, Y: 100}, 1)
	self.Dtheta = 3
	f.Steer(self, []*agent.Agent{self})
	if math.Abs(self.Dtheta) > 1e-9 {
		t.Errorf("Dtheta = %v; want 0 with no neighbors", self.Dtheta)
	}
}

func TestFlocking_MaxTurn(t *testing.T) {
	f := DefaultFlocking()
	f.SeparationFactor = 100
	f.MaxTurn = 0.5
	self := agent.New(1, 5, geometry.Vector2D{X: 100, Y: 100}, 0)
	other := agent.New(2, 5, geometry.Vector2D{X: 101, Y: 99}, 0)
	f.Steer(self, []*agent.Agent{self, other})
	if math.Abs(self.Dtheta) > 0.5 {
		t.Errorf("|Dtheta| = %v; want <= MaxTurn", self.Dtheta)
	}
}
