package collision

import (
	"math"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

const (
	// TurnStep is the fixed avoidance turn applied to a reactor.
	TurnStep = math.Pi / 8
	// Overspeed is added to a reactor already at its cap. The next Update clamps it back.
	Overspeed = 0.5
)

// Resolve turns and accelerates reactor away from instigator. Only reactor is
// mutated and its orientation is left unnormalized until the next Update.
func Resolve(instigator, reactor *agent.Agent) {
	d := reactor.Pos.Sub(instigator.Pos)
	theta := math.Mod(d.Angle()+reactor.Orientation, geometry.TwoPi)
	if theta < 0 {
		theta += geometry.TwoPi
	}

	if theta <= math.Pi {
		reactor.Orientation -= TurnStep
	} else {
		reactor.Orientation += TurnStep
	}

	if reactor.Velocity == reactor.VMax {
		reactor.Velocity += Overspeed
	} else {
		reactor.Velocity = reactor.VMax
	}
}

// ResolveAll lets both agents of every pair react to the other, A first.
// It returns the number of pairs handled.
func ResolveAll(agents []*agent.Agent, pairs []Pair) int {
	for _, p := range pairs {
		Resolve(agents[p.A], agents[p.B])
		Resolve(agents[p.B], agents[p.A])
	}
	return len(pairs)
}
