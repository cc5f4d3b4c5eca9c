package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
)

func newTestControls(t *testing.T) *Controls {
	t.Helper()
	c, err := NewControls(DefaultConfig())
	if err != nil {
		t.Fatalf("NewControls() error = %v", err)
	}
	return c
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want Command
	}{
		{' ', CmdPause},
		{'b', CmdBoundary},
		{'c', CmdCollisions},
		{'s', CmdSlower},
		{'f', CmdFaster},
		{'d', CmdDefaultSpeed},
		{'z', CmdNone},
	}
	for _, tt := range tests {
		if got := CommandForKey(tt.key); got != tt.want {
			t.Errorf("CommandForKey(%q) = %v; want %v", tt.key, got, tt.want)
		}
	}
}

func TestControls_Toggles(t *testing.T) {
	c := newTestControls(t)

	if !c.Apply(CmdPause) || !c.Settings.Paused {
		t.Error("CmdPause should pause and report a change")
	}
	if !c.Apply(CmdBoundary) || c.Settings.Mode != arena.Bounce {
		t.Errorf("CmdBoundary mode = %v; want bounce", c.Settings.Mode)
	}
	if !c.Apply(CmdCollisions) || !c.Settings.Collisions {
		t.Error("CmdCollisions should enable collisions")
	}
	if c.Apply(CmdTrails) || c.ShowTrails {
		t.Error("CmdTrails is viewer-only and should hide trails")
	}
	if c.Apply(CmdColors) || !c.ColorByOrientation {
		t.Error("CmdColors is viewer-only and should enable orientation colors")
	}
}

func TestControls_TPS(t *testing.T) {
	c := newTestControls(t)
	if c.TPS != 25 {
		t.Fatalf("TPS = %d; want 25", c.TPS)
	}
	for i := 0; i < 20; i++ {
		c.Apply(CmdFaster)
	}
	if c.TPS != MaxTPS {
		t.Errorf("TPS after speeding up = %d; want %d", c.TPS, MaxTPS)
	}
	for i := 0; i < 20; i++ {
		c.Apply(CmdSlower)
	}
	if c.TPS != MinTPS {
		t.Errorf("TPS after slowing down = %d; want %d", c.TPS, MinTPS)
	}
	c.Apply(CmdDefaultSpeed)
	if c.TPS != 25 {
		t.Errorf("TPS after reset = %d; want 25", c.TPS)
	}
}

func TestControls_RecordingRestoresDepth(t *testing.T) {
	c := newTestControls(t)
	c.SetDepth(0)
	if c.Settings.HistoryDepth != 0 {
		t.Fatalf("HistoryDepth = %d; want 0", c.Settings.HistoryDepth)
	}
	c.Apply(CmdRecording)
	if !c.Settings.Recording || c.Settings.HistoryDepth != 30 {
		t.Errorf("recording on with depth %d; want 30", c.Settings.HistoryDepth)
	}
	if c.SetDepth(30) {
		t.Error("SetDepth() to the current depth should report no change")
	}
}
