package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-agent-arena/pb"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// WorldActor owns one Simulation and its Settings. Every read and write goes
// through its mailbox, so a tick is never observed half done.
type WorldActor struct {
	sim      *Simulation
	settings Settings
	// Communication with UI
	snapshotCh chan<- *pb.Snapshot
	trails     bool
	// --- Benchmark Stats ---
	tickCount      int
	collisionCount int
	lastCollisions int
	lastLogTime    time.Time
}

// NewWorldActor wraps sim. snapshotCh may be nil when nobody listens for pushed snapshots.
func NewWorldActor(sim *Simulation, settings Settings, snapshotCh chan<- *pb.Snapshot) *WorldActor {
	return &WorldActor{
		sim:         sim,
		settings:    settings,
		snapshotCh:  snapshotCh,
		trails:      true,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is starting with %d agents", ctx.ActorName(), len(w.sim.Agents()))
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started: arena %vx%v, boundary %s, seed %d",
			w.sim.Config().Width, w.sim.Config().Height, w.settings.Mode, w.sim.Seed())

	// The Main Simulation Step (Driven by the collaborator loop)
	case *pb.Tick:
		steps := max(1, int(msg.GetSteps()))
		for i := 0; i < steps && !w.sim.Done(); i++ {
			res := w.sim.Step(w.settings)
			w.lastCollisions = res.Collisions
			w.collisionCount += res.Collisions
			if res.Advanced {
				w.tickCount++
			}
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.snapshot())

	case *pb.UpdateSettings:
		next := settingsFromProto(msg)
		if next != w.settings {
			ctx.Logger().Debugf("settings changed: %+v", next)
		}
		w.settings = next

	case *pb.AddAgent:
		a := w.sim.AddAgent(msg.GetX(), msg.GetY(), msg.GetOrientation())
		ctx.Logger().Debugf("added agent %d", a.ID)
		ctx.Response(AgentToProto(a))

	case *pb.RemoveAgent:
		if err := w.sim.RemoveAgent(msg.GetId()); err != nil {
			ctx.Logger().Warnf("cannot remove agent: %v", err)
		}

	case *pb.Pointer:
		w.sim.Pointer(PointerEvent{
			Pos:  geometry.Vector2D{X: msg.GetX(), Y: msg.GetY()},
			Grab: msg.GetGrab(),
			Turn: msg.GetTurn(),
		})

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) snapshot() *pb.Snapshot {
	return w.sim.Snapshot(w.settings, w.trails, w.lastCollisions)
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Collisions: %d | Agents: %d | t = %d",
			w.tickCount, w.collisionCount, len(w.sim.Agents()), w.sim.Tick())
		w.tickCount = 0
		w.collisionCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.snapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
