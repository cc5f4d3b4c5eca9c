package simulation

// TurnDelta is the rotation applied per arrow key press or wheel notch.
const TurnDelta = 0.1

// Command is a collaborator action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdPause
	CmdBoundary
	CmdCollisions
	CmdTrails
	CmdRecording
	CmdColors
	CmdSlower
	CmdFaster
	CmdDefaultSpeed
	CmdAddAgent
	CmdTurnLeft
	CmdTurnRight
	CmdQuit
)

var keyBindings = map[rune]Command{
	' ': CmdPause,
	'b': CmdBoundary,
	'c': CmdCollisions,
	't': CmdTrails,
	'r': CmdRecording,
	'o': CmdColors,
	's': CmdSlower,
	'f': CmdFaster,
	'd': CmdDefaultSpeed,
	'a': CmdAddAgent,
	'q': CmdQuit,
}

// CommandForKey maps a typed character to its command, CmdNone when unbound.
func CommandForKey(r rune) Command {
	return keyBindings[r]
}

// Controls is the viewer-side state both frontends drive with the same keys.
// Settings are pushed to the world actor whenever Apply reports a change.
type Controls struct {
	Settings   Settings
	TPS        int
	DefaultTPS int
	// depth restored when recording is switched back on
	Depth              int
	ShowTrails         bool
	ColorByOrientation bool
}

// NewControls starts from the settings and tick rate of cfg.
func NewControls(cfg *Config) (*Controls, error) {
	st, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	tps := ClampTPS(cfg.TPS)
	return &Controls{
		Settings:   st,
		TPS:        tps,
		DefaultTPS: tps,
		Depth:      cfg.HistoryDepth,
		ShowTrails: true,
	}, nil
}

// Apply executes cmd and reports whether Settings changed.
// Commands that need a cursor (add, turn) or the frontend (quit) are left to the caller.
func (c *Controls) Apply(cmd Command) bool {
	before := c.Settings
	switch cmd {
	case CmdPause:
		c.Settings.Paused = !c.Settings.Paused
	case CmdBoundary:
		c.Settings.Mode = c.Settings.Mode.Toggle()
	case CmdCollisions:
		c.Settings.Collisions = !c.Settings.Collisions
	case CmdTrails:
		c.ShowTrails = !c.ShowTrails
	case CmdRecording:
		c.Settings.Recording = !c.Settings.Recording
		if c.Settings.Recording && c.Settings.HistoryDepth == 0 {
			c.Settings.HistoryDepth = max(1, c.Depth)
		}
	case CmdColors:
		c.ColorByOrientation = !c.ColorByOrientation
	case CmdSlower:
		c.TPS = ClampTPS(c.TPS - TPSStep)
	case CmdFaster:
		c.TPS = ClampTPS(c.TPS + TPSStep)
	case CmdDefaultSpeed:
		c.TPS = c.DefaultTPS
	}
	return c.Settings != before
}

// SetDepth changes the history depth, 0 disables recording storage.
func (c *Controls) SetDepth(depth int) bool {
	depth = max(0, depth)
	if depth > 0 {
		c.Depth = depth
	}
	if c.Settings.HistoryDepth == depth {
		return false
	}
	c.Settings.HistoryDepth = depth
	return true
}
