package collision

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
)

type gridKey struct {
	x, y int
}

// Grid is a uniform spatial hash. Cells are as wide as the largest possible
// contact distance, so every overlapping pair sits in the same or an adjacent
// cell and the 3x3 scan around each agent finds exactly the Pairwise result.
type Grid struct {
	cells    map[gridKey][]int
	cellSize float64
}

// NewGrid returns an empty grid; cell size is recomputed on every Detect.
func NewGrid() *Grid {
	return &Grid{cells: make(map[gridKey][]int)}
}

func (g *Grid) keyOf(a *agent.Agent) gridKey {
	c := a.Center()
	return gridKey{x: int(math.Floor(c.X / g.cellSize)), y: int(math.Floor(c.Y / g.cellSize))}
}

func (g *Grid) rebuild(agents []*agent.Agent) {
	// keep the slice capacity of every cell between ticks
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}

	maxRadius := 0.0
	for _, a := range agents {
		maxRadius = math.Max(maxRadius, a.Radius)
	}
	g.cellSize = math.Max(2*maxRadius, 1)

	for i, a := range agents {
		key := g.keyOf(a)
		g.cells[key] = append(g.cells[key], i)
	}
}

func (g *Grid) Detect(agents []*agent.Agent) []Pair {
	g.rebuild(agents)

	var pairs []Pair
	for i, a := range agents {
		k := g.keyOf(a)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range g.cells[gridKey{x: k.x + dx, y: k.y + dy}] {
					if j > i && Colliding(a, agents[j]) {
						pairs = append(pairs, Pair{A: i, B: j})
					}
				}
			}
		}
	}

	slices.SortFunc(pairs, func(p, q Pair) int {
		if p.A != q.A {
			return p.A - q.A
		}
		return p.B - q.B
	})
	return pairs
}
