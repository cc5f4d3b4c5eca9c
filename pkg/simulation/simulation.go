package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/collision"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/history"
)

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrNotSelected   = errors.New("agent is not selected")
)

// Observer is notified after every tick that advanced the simulation.
// Returned errors are logged and never stop the simulation.
type Observer interface {
	AfterTick(tick int64, agents []*agent.Agent) error
}

// StepResult describes what one Step did.
type StepResult struct {
	Tick       int64
	Advanced   bool
	Collisions int
	Recorded   bool
}

// PointerEvent is a cursor interaction in arena coordinates.
// Grab is the held main button, Turn the orientation nudge to apply.
type PointerEvent struct {
	Pos  geometry.Vector2D
	Grab bool
	Turn float64
}

// Simulation owns the agents, the arena and the history buffer and advances
// them one tick at a time. It is not safe for concurrent use, WorldActor
// serializes access when several collaborators share one.
type Simulation struct {
	cfg       *Config
	arena     arena.Arena
	agents    []*agent.Agent
	nextID    int64
	tick      int64
	detector  collision.Detector
	behavior  behavior.Behavior
	history   *history.Buffer
	observers []Observer
	logger    log.Logger
	rng       *rand.Rand
	seed      uint64
}

type Option func(*Simulation)

func WithLogger(l log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

func WithObserver(o Observer) Option {
	return func(s *Simulation) { s.observers = append(s.observers, o) }
}

func WithDetector(d collision.Detector) Option {
	return func(s *Simulation) { s.detector = d }
}

func WithBehavior(b behavior.Behavior) Option {
	return func(s *Simulation) { s.behavior = b }
}

// New validates cfg and populates cfg.NumAgents agents.
func New(cfg *Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Simulation{
		cfg:     cfg,
		arena:   cfg.Arena(),
		history: history.New(cfg.HistoryDepth),
		logger:  log.DiscardLogger,
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		seed:    seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.detector == nil {
		d, err := collision.NewDetector(cfg.CollisionIndex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		s.detector = d
	}
	if s.behavior == nil {
		b, err := cfg.newBehavior(seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		s.behavior = b
	}
	s.Populate(cfg.NumAgents)
	s.logger.Debugf("simulation ready: %d agents, arena %vx%v, seed %d", len(s.agents), cfg.Width, cfg.Height, seed)
	return s, nil
}

// Populate adds n agents at random integer positions that may overlap the
// walls by up to one radius, with uniform random orientations.
func (s *Simulation) Populate(n int) {
	r := s.cfg.AgentRadius
	low := s.cfg.Padding - r
	for i := 0; i < n; i++ {
		x := low + float64(s.rng.IntN(max(1, int(s.cfg.Width))))
		y := low + float64(s.rng.IntN(max(1, int(s.cfg.Height))))
		s.AddAgent(x, y, s.rng.Float64()*geometry.TwoPi)
	}
}

// AddAgent creates an agent with its upper-left corner at (x, y).
func (s *Simulation) AddAgent(x, y, orientation float64) *agent.Agent {
	a := agent.New(s.nextID, s.cfg.AgentRadius, geometry.Vector2D{X: x, Y: y}, orientation)
	a.VMax = s.cfg.VMax
	a.Velocity = agent.ClampVelocity(a.Velocity, a.VMax)
	s.nextID++
	s.agents = append(s.agents, a)
	return a
}

// RemoveAgent drops an agent; its id is never handed out again.
func (s *Simulation) RemoveAgent(id int64) error {
	for i, a := range s.agents {
		if a.ID == id {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %d: %w", id, ErrAgentNotFound)
}

// Step runs one tick: steer, detect and resolve collisions, integrate, then
// record. A paused step only records the last known state.
func (s *Simulation) Step(st Settings) StepResult {
	if st.HistoryDepth != s.history.Depth() {
		s.history.SetDepth(st.HistoryDepth)
	}

	res := StepResult{}
	if !st.Paused {
		for _, a := range s.agents {
			if !a.Selected {
				s.behavior.Steer(a, s.agents)
			}
		}
		if st.Collisions {
			res.Collisions = collision.ResolveAll(s.agents, s.detector.Detect(s.agents))
		}
		tc := agent.TickContext{Dt: s.cfg.Dt, Bounds: s.arena.Bounds(), Mode: st.Mode}
		for _, a := range s.agents {
			a.Update(tc)
		}
		s.tick++
		res.Advanced = true
	}

	if st.Recording && s.history.Depth() > 0 {
		s.history.Record(s.agents)
		res.Recorded = true
	}

	if res.Advanced {
		for _, o := range s.observers {
			if err := o.AfterTick(s.tick, s.agents); err != nil {
				s.logger.Errorf("observer failed at tick %d: %v", s.tick, err)
			}
		}
	}
	res.Tick = s.tick
	return res
}

// Pointer applies a cursor interaction. Agents under the cursor are turned by
// ev.Turn and, when grabbing or turning, centered on the cursor; only grabbed
// agents stay selected. Everything else is released.
func (s *Simulation) Pointer(ev PointerEvent) {
	for _, a := range s.agents {
		if (ev.Grab || ev.Turn != 0) && a.Contains(ev.Pos) {
			a.MoveTo(ev.Pos)
			a.Nudge(ev.Turn)
			a.Select(ev.Grab)
			continue
		}
		a.Select(false)
	}
}

// Rotate nudges one agent's orientation by delta.
func (s *Simulation) Rotate(id int64, delta float64) error {
	a, err := s.Agent(id)
	if err != nil {
		return err
	}
	a.Nudge(delta)
	return nil
}

// Select sets or clears one agent's selection flag.
func (s *Simulation) Select(id int64, selected bool) error {
	a, err := s.Agent(id)
	if err != nil {
		return err
	}
	a.Select(selected)
	return nil
}

// Teleport moves a selected agent's center to c.
func (s *Simulation) Teleport(id int64, c geometry.Vector2D) error {
	a, err := s.Agent(id)
	if err != nil {
		return err
	}
	if !a.Selected {
		return fmt.Errorf("teleport %d: %w", id, ErrNotSelected)
	}
	a.MoveTo(c)
	return nil
}

func (s *Simulation) Agent(id int64) (*agent.Agent, error) {
	for _, a := range s.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("agent %d: %w", id, ErrAgentNotFound)
}

// Agents returns the live agent slice; callers must not keep it across ticks.
func (s *Simulation) Agents() []*agent.Agent { return s.agents }

func (s *Simulation) Tick() int64 { return s.tick }

func (s *Simulation) Seed() uint64 { return s.seed }

func (s *Simulation) Config() *Config { return s.cfg }

func (s *Simulation) Arena() arena.Arena { return s.arena }

func (s *Simulation) History() *history.Buffer { return s.history }

// Done reports whether a bounded run reached its last tick.
func (s *Simulation) Done() bool {
	return s.cfg.Steps > 0 && s.tick >= s.cfg.Steps
}

// DistanceMatrix returns the pairwise distances between agent positions,
// indexed like Agents.
func (s *Simulation) DistanceMatrix() [][]float64 {
	n := len(s.agents)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = s.agents[i].Pos.DistanceTo(s.agents[j].Pos)
		}
	}
	return m
}
