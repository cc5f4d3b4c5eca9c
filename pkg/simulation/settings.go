package simulation

import "github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"

const (
	MinTPS  = 1
	MaxTPS  = 60
	TPSStep = 5
)

// Settings are the simulation-wide switches passed into every Step.
// Collaborators change them between ticks, never during one.
type Settings struct {
	Mode         arena.Mode
	Collisions   bool
	Recording    bool
	HistoryDepth int
	Paused       bool
}

// ClampTPS keeps a tick rate inside [MinTPS, MaxTPS].
func ClampTPS(tps int) int {
	return max(MinTPS, min(MaxTPS, tps))
}
