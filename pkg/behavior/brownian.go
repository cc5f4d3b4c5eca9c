package behavior

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// Brownian draws a fresh turn rate from N(0, Sigma²) every tick.
// MaxTurn bounds |Dtheta| so that one tick never turns a full circle.
type Brownian struct {
	Sigma   float64
	MaxTurn float64
	rng     *rand.Rand
}

// NewBrownian returns a Brownian behavior with its own seeded generator.
func NewBrownian(sigma, maxTurn float64, seed uint64) *Brownian {
	return &Brownian{
		Sigma:   sigma,
		MaxTurn: maxTurn,
		rng:     rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
	}
}

func (b *Brownian) Steer(self *agent.Agent, _ []*agent.Agent) {
	self.Dtheta = geometry.Clamp(b.rng.NormFloat64()*b.Sigma, b.MaxTurn)
}
