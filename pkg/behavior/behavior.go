// Package behavior sets the drive (Dv, Dtheta) of agents before each tick.
package behavior

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
)

// ErrUnknownBehavior is returned by Parse for an unknown behavior name.
var ErrUnknownBehavior = errors.New("unknown behavior")

// Behavior updates self.Dv and self.Dtheta from its surroundings.
// neighbors may contain self, implementations skip it.
type Behavior interface {
	Steer(self *agent.Agent, neighbors []*agent.Agent)
}

// Kind names a behavior in configuration files.
type Kind string

const (
	KindNone     Kind = "none"
	KindBrownian Kind = "brownian"
	KindFlocking Kind = "flocking"
)

// Parse validates a behavior name; the empty string means none.
func Parse(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindNone, nil
	case KindNone, KindBrownian, KindFlocking:
		return k, nil
	default:
		return KindNone, fmt.Errorf("%w: %q", ErrUnknownBehavior, s)
	}
}

// None leaves the drive untouched, agents keep cruising.
type None struct{}

func (None) Steer(*agent.Agent, []*agent.Agent) {}
