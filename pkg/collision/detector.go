// Package collision finds overlapping agents and applies the deterministic
// avoidance response to them.
package collision

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
)

// ErrUnknownIndex is returned by NewDetector for an unknown index kind.
var ErrUnknownIndex = errors.New("unknown collision index")

// Pair holds the indexes of two overlapping agents with A < B.
type Pair struct {
	A, B int
}

// Detector returns every unordered pair of overlapping agents, sorted by (A, B).
// Implementations read the slice and never mutate the agents.
type Detector interface {
	Detect(agents []*agent.Agent) []Pair
}

// Colliding is the circle-circle overlap test on the agents' centers.
func Colliding(a, b *agent.Agent) bool {
	r := a.Radius + b.Radius
	return a.Center().DistanceSquaredTo(b.Center()) < r*r
}

// Pairwise is the O(N²) reference detector.
type Pairwise struct{}

func (Pairwise) Detect(agents []*agent.Agent) []Pair {
	var pairs []Pair
	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			if Colliding(agents[i], agents[j]) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}

// NewDetector maps a configuration name to a detector: "pairwise" or "grid".
func NewDetector(kind string) (Detector, error) {
	switch strings.ToLower(kind) {
	case "", "pairwise":
		return Pairwise{}, nil
	case "grid":
		return NewGrid(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, kind)
	}
}
