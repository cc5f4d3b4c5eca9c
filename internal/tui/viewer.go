package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-agent-arena/internal/audio"
	"github.com/lao-tseu-is-alive/go-agent-arena/pb"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

const askTimeout = time.Second

// Viewer drives a world actor at the controls' tick rate and draws every frame.
type Viewer struct {
	ctx      context.Context
	screen   tcell.Screen
	worldPID *actor.PID
	controls *simulation.Controls
	beeper   *audio.Beeper
	proj     Projection
	cfg      *simulation.Config

	lastState *pb.Snapshot
	mouseCol  int
	mouseRow  int
	grabbing  bool
	dragging  bool              // a grab point was sent and not released yet
	dragFrom  geometry.Vector2D // last point sent while dragging
}

// New spawns a world actor for sim and binds it to an initialized screen.
// beeper may be nil.
func New(ctx context.Context, sim *simulation.Simulation, system actor.ActorSystem, screen tcell.Screen, beeper *audio.Beeper) (*Viewer, error) {
	controls, err := simulation.NewControls(sim.Config())
	if err != nil {
		return nil, err
	}
	pid, err := system.Spawn(ctx, "world-tui", simulation.NewWorldActor(sim, controls.Settings, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	screen.EnableMouse()
	cols, rows := screen.Size()
	return &Viewer{
		ctx:       ctx,
		screen:    screen,
		worldPID:  pid,
		controls:  controls,
		beeper:    beeper,
		proj:      Projection{Bounds: sim.Arena().Bounds(), Cols: cols, Rows: rows},
		cfg:       sim.Config(),
		lastState: &pb.Snapshot{},
	}, nil
}

// Controls exposes the viewer-side state.
func (v *Viewer) Controls() *simulation.Controls { return v.controls }

func tickInterval(tps int) time.Duration {
	return time.Second / time.Duration(simulation.ClampTPS(tps))
}

// Run blocks until the user quits, ctx is done or the world stops answering.
func (v *Viewer) Run() error {
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go v.pollEvents(eventChan, done)

	tps := v.controls.TPS
	ticker := time.NewTicker(tickInterval(tps))
	defer ticker.Stop()

	for {
		select {
		case <-v.ctx.Done():
			return nil
		case ev := <-eventChan:
			quit, err := v.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			if v.controls.TPS != tps {
				tps = v.controls.TPS
				ticker.Reset(tickInterval(tps))
			}
		case <-ticker.C:
			if err := v.step(); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed.
func (v *Viewer) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// step advances the world once and redraws.
func (v *Viewer) step() error {
	if err := actor.Tell(v.ctx, v.worldPID, &pb.Tick{Steps: 1}); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	snap, err := v.snapshot()
	if err != nil {
		return err
	}
	v.lastState = snap
	if v.beeper != nil {
		v.beeper.Collision(int(snap.GetCollisionCount()))
	}
	Render(v.screen, snap, v.proj, v.controls)
	v.screen.Show()
	return nil
}

func (v *Viewer) snapshot() (*pb.Snapshot, error) {
	resp, err := actor.Ask(v.ctx, v.worldPID, &pb.GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	snap, ok := resp.(*pb.Snapshot)
	if !ok {
		return nil, errors.New("snapshot: unexpected reply")
	}
	return snap, nil
}

// handleEvent reports whether the user asked to quit.
func (v *Viewer) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyLeft:
			return false, v.point(false, simulation.TurnDelta)
		case tcell.KeyRight:
			return false, v.point(false, -simulation.TurnDelta)
		case tcell.KeyRune:
			return v.handleCommand(simulation.CommandForKey(ev.Rune()))
		}

	case *tcell.EventMouse:
		v.mouseCol, v.mouseRow = ev.Position()
		buttons := ev.Buttons()
		turn := 0.0
		if buttons&tcell.WheelUp != 0 {
			turn += simulation.TurnDelta
		}
		if buttons&tcell.WheelDown != 0 {
			turn -= simulation.TurnDelta
		}
		grab := buttons&tcell.Button1 != 0
		if grab || v.grabbing || turn != 0 {
			v.grabbing = grab
			return false, v.point(grab, turn)
		}

	case *tcell.EventResize:
		v.proj.Cols, v.proj.Rows = v.screen.Size()
		v.screen.Sync()
	}
	return false, nil
}

func (v *Viewer) handleCommand(cmd simulation.Command) (bool, error) {
	switch cmd {
	case simulation.CmdQuit:
		return true, nil
	case simulation.CmdAddAgent:
		x, y := v.proj.ToArena(v.mouseCol, v.mouseRow)
		if _, _, ok := v.proj.ToCell(x, y); !ok || v.mouseCol == 0 && v.mouseRow == 0 {
			b := v.proj.Bounds
			x, y = (b.Left+b.Right)/2, (b.Top+b.Bottom)/2
		}
		r := v.cfg.AgentRadius
		return false, actor.Tell(v.ctx, v.worldPID, &pb.AddAgent{X: x - r, Y: y - r})
	}
	if v.controls.Apply(cmd) {
		return false, actor.Tell(v.ctx, v.worldPID, simulation.SettingsToProto(v.controls.Settings))
	}
	return false, nil
}

// point sends a pointer event at the mouse cell. A cell is coarser than an
// agent, so an agent drawn in that cell is targeted at its center, and a drag
// is split into moves shorter than the agent radius so it never loses its agent.
func (v *Viewer) point(grab bool, turn float64) error {
	x, y := v.proj.ToArena(v.mouseCol, v.mouseRow)
	for _, a := range v.lastState.GetAgents() {
		r := a.GetRadius()
		col, row, ok := v.proj.ToCell(a.GetX()+r, a.GetY()+r)
		if ok && col == v.mouseCol && row == v.mouseRow {
			x, y = a.GetX()+r, a.GetY()+r
			break
		}
	}

	p := geometry.Vector2D{X: x, Y: y}
	if grab && v.dragging {
		for _, q := range dragPath(v.dragFrom, p, math.Max(1, v.cfg.AgentRadius/2)) {
			if err := actor.Tell(v.ctx, v.worldPID, &pb.Pointer{X: q.X, Y: q.Y, Grab: true}); err != nil {
				return err
			}
		}
	}
	v.dragging, v.dragFrom = grab, p
	return actor.Tell(v.ctx, v.worldPID, &pb.Pointer{X: x, Y: y, Grab: grab, Turn: turn})
}

// dragPath returns the points strictly between from and to, at most maxStep
// apart on either axis.
func dragPath(from, to geometry.Vector2D, maxStep float64) []geometry.Vector2D {
	d := to.Sub(from)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y)) / maxStep))
	path := make([]geometry.Vector2D, 0, max(0, steps-1))
	for i := 1; i < steps; i++ {
		path = append(path, from.Add(d.Mul(float64(i)/float64(steps))))
	}
	return path
}
