// Package history keeps a fixed number of past kinematic states per agent,
// newest first, for trails and for analysis.
package history

import (
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// Sample is one agent's recorded state for one tick. Position is the center.
type Sample struct {
	Orientation float64
	Position    geometry.Vector2D
	Vx, Vy      float64
}

// Buffer is a ring over depth slots for a fixed number of agents. The agent
// count is taken on the first Record; any later change resets the buffer.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	depth  int
	agents int
	head   int // slot of offset 0
	filled int
	ready  bool
	resets int

	orientation []float64 // [agent*depth + slot]
	position    []float64 // [(agent*2+axis)*depth + slot]
	vx          []float64
	vy          []float64
}

// New returns an empty buffer of the given depth. Depth 0 disables recording.
func New(depth int) *Buffer {
	return &Buffer{depth: max(depth, 0)}
}

func (b *Buffer) Depth() int { return b.depth }

// Len is the number of recorded ticks, at most Depth.
func (b *Buffer) Len() int { return b.filled }

// Agents is the agent count the buffer is shaped for, 0 before the first Record.
func (b *Buffer) Agents() int { return b.agents }

// Resets counts how many times a shape change discarded the history.
func (b *Buffer) Resets() int { return b.resets }

// SetDepth discards all history and uses the new depth from the next Record.
func (b *Buffer) SetDepth(depth int) {
	b.depth = max(depth, 0)
	b.Reset()
}

// Reset drops the storage; the next Record allocates again.
func (b *Buffer) Reset() {
	b.ready = false
	b.agents, b.head, b.filled = 0, 0, 0
	b.orientation, b.position, b.vx, b.vy = nil, nil, nil, nil
}

func (b *Buffer) allocate(n int) {
	b.agents = n
	b.orientation = make([]float64, n*b.depth)
	b.position = make([]float64, n*2*b.depth)
	b.vx = make([]float64, n*b.depth)
	b.vy = make([]float64, n*b.depth)
	b.head = b.depth - 1
	b.filled = 0
	b.ready = true
}

// Record shifts every ring by one slot and writes the current state of agents
// at offset 0. If the agent count no longer matches it resets instead and
// records nothing; the following call starts a fresh history.
func (b *Buffer) Record(agents []*agent.Agent) {
	if b.depth == 0 {
		return
	}
	if !b.ready {
		b.allocate(len(agents))
	} else if len(agents) != b.agents {
		b.Reset()
		b.resets++
		return
	}

	b.head = (b.head + 1) % b.depth
	for i, a := range agents {
		c := a.Center()
		b.orientation[i*b.depth+b.head] = a.Orientation
		b.position[(i*2)*b.depth+b.head] = c.X
		b.position[(i*2+1)*b.depth+b.head] = c.Y
		b.vx[i*b.depth+b.head] = a.Vx
		b.vy[i*b.depth+b.head] = a.Vy
	}
	if b.filled < b.depth {
		b.filled++
	}
}

func (b *Buffer) slot(offset int) int {
	return ((b.head-offset)%b.depth + b.depth) % b.depth
}

// At returns the sample of agent i recorded offset ticks ago. ok is false for
// offsets that hold no recorded tick yet.
func (b *Buffer) At(i, offset int) (s Sample, ok bool) {
	if !b.ready || i < 0 || i >= b.agents || offset < 0 || offset >= b.filled {
		return Sample{}, false
	}
	k := b.slot(offset)
	return Sample{
		Orientation: b.orientation[i*b.depth+k],
		Position: geometry.Vector2D{
			X: b.position[(i*2)*b.depth+k],
			Y: b.position[(i*2+1)*b.depth+k],
		},
		Vx: b.vx[i*b.depth+k],
		Vy: b.vy[i*b.depth+k],
	}, true
}

// Trail returns every recorded sample of agent i, newest first.
func (b *Buffer) Trail(i int) []Sample {
	if !b.ready || i < 0 || i >= b.agents {
		return nil
	}
	out := make([]Sample, 0, b.filled)
	for off := 0; off < b.filled; off++ {
		s, _ := b.At(i, off)
		out = append(out, s)
	}
	return out
}
