package simulation

import (
	"github.com/lao-tseu-is-alive/go-agent-arena/pb"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
)

// AgentToProto copies the collaborator-visible state of a into its wire form.
// X and Y are the upper-left corner, like agent.Agent.Pos.
func AgentToProto(a *agent.Agent) *pb.AgentState {
	return &pb.AgentState{
		Id:          a.ID,
		X:           a.Pos.X,
		Y:           a.Pos.Y,
		Radius:      a.Radius,
		Orientation: a.Orientation,
		Velocity:    a.Velocity,
		Vx:          a.Vx,
		Vy:          a.Vy,
		Selected:    a.Selected,
		VMax:        a.VMax,
	}
}

func modeToProto(m arena.Mode) pb.BoundaryMode {
	if m == arena.Bounce {
		return pb.BoundaryMode_BOUNDARY_MODE_BOUNCE
	}
	return pb.BoundaryMode_BOUNDARY_MODE_WRAP
}

func modeFromProto(m pb.BoundaryMode) arena.Mode {
	if m == pb.BoundaryMode_BOUNDARY_MODE_BOUNCE {
		return arena.Bounce
	}
	return arena.Wrap
}

// SettingsToProto is the message a collaborator sends to change the settings.
func SettingsToProto(s Settings) *pb.UpdateSettings {
	return &pb.UpdateSettings{
		BoundaryMode: modeToProto(s.Mode),
		Collisions:   s.Collisions,
		Recording:    s.Recording,
		HistoryDepth: int32(s.HistoryDepth),
		Paused:       s.Paused,
	}
}

func settingsFromProto(msg *pb.UpdateSettings) Settings {
	return Settings{
		Mode:         modeFromProto(msg.GetBoundaryMode()),
		Collisions:   msg.GetCollisions(),
		Recording:    msg.GetRecording(),
		HistoryDepth: max(0, int(msg.GetHistoryDepth())),
		Paused:       msg.GetPaused(),
	}
}

// Snapshot captures the current state. With trails, each recorded agent gets its
// history of centers and orientations, newest first.
func (s *Simulation) Snapshot(st Settings, trails bool, collisions int) *pb.Snapshot {
	snap := &pb.Snapshot{
		Tick:           s.tick,
		Paused:         st.Paused,
		BoundaryMode:   modeToProto(st.Mode),
		Collisions:     st.Collisions,
		Recording:      st.Recording,
		Agents:         make([]*pb.AgentState, 0, len(s.agents)),
		CollisionCount: int32(collisions),
	}
	for _, a := range s.agents {
		snap.Agents = append(snap.Agents, AgentToProto(a))
	}
	if !trails || s.history.Len() == 0 || s.history.Agents() != len(s.agents) {
		return snap
	}

	snap.Trails = make([]*pb.Trail, 0, len(s.agents))
	for i, a := range s.agents {
		samples := s.history.Trail(i)
		t := &pb.Trail{
			AgentId:     a.ID,
			X:           make([]float64, 0, len(samples)),
			Y:           make([]float64, 0, len(samples)),
			Orientation: make([]float64, 0, len(samples)),
		}
		for _, sm := range samples {
			t.X = append(t.X, sm.Position.X)
			t.Y = append(t.Y, sm.Position.Y)
			t.Orientation = append(t.Orientation, sm.Orientation)
		}
		snap.Trails = append(snap.Trails, t)
	}
	return snap
}
