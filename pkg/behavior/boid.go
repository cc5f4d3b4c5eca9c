package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// Flocking steers agents with the boids rules of Craig Reynolds (1986):
// separation inside ProtectedRange, alignment and cohesion inside VisualRange.
// https://en.wikipedia.org/wiki/Boids
//
// The rules produce a desired screen displacement, and the agent turns toward it
// at TurnGain times the angular error, limited to MaxTurn. Speed is not changed.
type Flocking struct {
	VisualRange    float64 // How far can they see?
	ProtectedRange float64 // Personal space radius

	CohesionFactor   float64
	SeparationFactor float64
	AlignFactor      float64

	TurnGain float64
	MaxTurn  float64
}

// DefaultFlocking returns settings that keep loose flocks at the default agent size.
func DefaultFlocking() Flocking {
	return Flocking{
		VisualRange:      75,
		ProtectedRange:   20,
		CohesionFactor:   0.005,
		SeparationFactor: 0.05,
		AlignFactor:      0.05,
		TurnGain:         4,
		MaxTurn:          10,
	}
}

func (f Flocking) Steer(self *agent.Agent, neighbors []*agent.Agent) {
	me := self.Center()
	heading := geometry.NewHeading(1, self.Orientation)
	if self.Velocity < 0 {
		heading = heading.Mul(-1)
	}

	var closeD, velAvg, posAvg geometry.Vector2D
	count := 0.0
	for _, other := range neighbors {
		if other == self {
			continue
		}
		c := other.Center()
		d := me.Sub(c)
		distSq := d.LenSqr()

		// 1. Separation
		if distSq < f.ProtectedRange*f.ProtectedRange {
			closeD = closeD.Add(d)
		}

		// Check visual range for Cohesion/Alignment
		if distSq < f.VisualRange*f.VisualRange {
			velAvg = velAvg.Add(geometry.Vector2D{X: other.Vx, Y: -other.Vy})
			posAvg = posAvg.Add(c)
			count++
		}
	}

	desired := heading.Add(closeD.Mul(f.SeparationFactor))
	if count > 0 {
		// only the direction of the neighbors' motion is matched
		velAvg = velAvg.Mul(1 / count).Normalize()
		posAvg = posAvg.Mul(1 / count)
		desired = desired.Add(velAvg.Sub(heading).Mul(f.AlignFactor))
		desired = desired.Add(posAvg.Sub(me).Mul(f.CohesionFactor))
	}
	if desired.LenSqr() < geometry.Epsilon {
		self.Dtheta = 0
		return
	}

	target := desired.Heading()
	if self.Velocity < 0 {
		target = geometry.NormalizeAngle(target + math.Pi)
	}
	turn := geometry.WrapToPi(target - self.Orientation)
	self.Dtheta = geometry.Clamp(turn*f.TurnGain, f.MaxTurn)
}
