// Package gui renders the arena with Ebiten and forwards user input to the world actor.
package gui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-agent-arena/pb"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/ui"
)

const panelWidth = 220

// Debug text is always white, so the arena is dark.
var (
	background    = color.RGBA{R: 20, G: 22, B: 30, A: 255}
	wallColor     = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	agentColor    = color.RGBA{R: 190, G: 190, B: 200, A: 255}
	selectedColor = color.RGBA{R: 80, G: 170, B: 255, A: 255}
)

// Game is the ebiten.Game driving one world actor.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.Snapshot
	lastState  *pb.Snapshot

	cfg      *simulation.Config
	controls *simulation.Controls
	arenaW   int
	arenaH   int
	grabbing bool

	// UI Controls
	panel            *ui.Panel
	widgetBounce     *ui.Checkbox
	widgetCollisions *ui.Checkbox
	widgetRecording  *ui.Checkbox
	widgetTrails     *ui.Checkbox
	widgetColors     *ui.Checkbox
	widgetPaused     *ui.Checkbox
	widgetDepth      *ui.Slider
	widgetTPS        *ui.Slider
	addRequested     bool

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the world actor for sim and lays out the side panel.
func GetNewGame(ctx context.Context, sim *simulation.Simulation, system actor.ActorSystem) (*Game, error) {
	cfg := sim.Config()
	controls, err := simulation.NewControls(cfg)
	if err != nil {
		return nil, err
	}

	snapshotCh := make(chan *pb.Snapshot, 10) // Buffer to avoid blocking
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(sim, controls.Settings, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	w, h := sim.Arena().WindowSize()
	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.Snapshot{}, // Avoid nil pointer
		cfg:        cfg,
		controls:   controls,
		arenaW:     int(w),
		arenaH:     int(h),
	}

	panel := ui.NewPanel("Arena", w, 0, panelWidth, h)
	panel.Section("World")
	g.widgetBounce = panel.AddCheckbox("Bounce walls [b]", controls.Settings.Mode == arena.Bounce)
	g.widgetCollisions = panel.AddCheckbox("Collisions [c]", controls.Settings.Collisions)
	g.widgetPaused = panel.AddCheckbox("Paused [space]", controls.Settings.Paused)
	g.widgetTPS = panel.AddIntSlider("Ticks per second", simulation.MinTPS, simulation.MaxTPS, controls.TPS)
	panel.AddButton("Add agent [a]", func() { g.addRequested = true })

	panel.Section("History")
	g.widgetRecording = panel.AddCheckbox("Recording [r]", controls.Settings.Recording)
	g.widgetDepth = panel.AddIntSlider("Trail depth", 0, 200, controls.Settings.HistoryDepth)
	g.widgetTrails = panel.AddCheckbox("Show trails [t]", controls.ShowTrails)
	g.widgetColors = panel.AddCheckbox("Orientation colors [o]", controls.ColorByOrientation)
	g.panel = panel

	ebiten.SetTPS(controls.TPS)
	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel, then fold widget edits into the controls
	g.panel.Update()
	changed := g.readWidgets()

	// 2. Keyboard shortcuts
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		cmd := commandForKey(key)
		switch cmd {
		case simulation.CmdAddAgent:
			g.addRequested = true
		case simulation.CmdQuit:
			return ebiten.Termination
		default:
			if g.controls.Apply(cmd) {
				changed = true
			}
		}
	}
	g.writeWidgets()
	if ebiten.TPS() != g.controls.TPS {
		ebiten.SetTPS(g.controls.TPS)
	}
	if changed {
		if err := actor.Tell(g.ctx, g.worldPID, simulation.SettingsToProto(g.controls.Settings)); err != nil {
			return err
		}
	}

	// 3. Cursor interaction
	if err := g.handlePointer(); err != nil {
		return err
	}

	// 4. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// Trigger Simulation Step
	return actor.Tell(g.ctx, g.worldPID, &pb.Tick{Steps: 1})
}

func (g *Game) handlePointer() error {
	mx, my := ebiten.CursorPosition()
	overPanel := g.panel.Contains(mx, my)
	x, y := float64(mx), float64(my)

	if g.addRequested {
		g.addRequested = false
		r := g.cfg.AgentRadius
		if overPanel {
			x, y = float64(g.arenaW)/2, float64(g.arenaH)/2
		}
		if err := actor.Tell(g.ctx, g.worldPID, &pb.AddAgent{X: x - r, Y: y - r}); err != nil {
			return err
		}
	}
	if overPanel && !g.grabbing {
		return nil
	}

	turn := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		turn += simulation.TurnDelta
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		turn -= simulation.TurnDelta
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		turn += simulation.TurnDelta
	} else if dy < 0 {
		turn -= simulation.TurnDelta
	}

	grab := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !grab && !g.grabbing && turn == 0 {
		return nil
	}
	// a final event with grab unset releases whatever was dragged
	g.grabbing = grab
	return actor.Tell(g.ctx, g.worldPID, &pb.Pointer{X: x, Y: y, Grab: grab, Turn: turn})
}

func commandForKey(k ebiten.Key) simulation.Command {
	switch k {
	case ebiten.KeySpace:
		return simulation.CmdPause
	case ebiten.KeyEscape:
		return simulation.CmdQuit
	}
	// letter keys are named "A" to "Z"
	name := k.String()
	if len(name) != 1 {
		return simulation.CmdNone
	}
	return simulation.CommandForKey(rune(name[0]) | 0x20)
}

// readWidgets applies values the user changed with the mouse.
func (g *Game) readWidgets() bool {
	c := g.controls
	before := c.Settings
	if g.widgetBounce.Value != (c.Settings.Mode == arena.Bounce) {
		c.Settings.Mode = c.Settings.Mode.Toggle()
	}
	c.Settings.Collisions = g.widgetCollisions.Value
	c.Settings.Paused = g.widgetPaused.Value
	c.Settings.Recording = g.widgetRecording.Value
	c.SetDepth(g.widgetDepth.Int())
	c.ShowTrails = g.widgetTrails.Value
	c.ColorByOrientation = g.widgetColors.Value
	c.TPS = simulation.ClampTPS(g.widgetTPS.Int())
	return c.Settings != before
}

// writeWidgets mirrors keyboard changes back into the panel.
func (g *Game) writeWidgets() {
	c := g.controls
	g.widgetBounce.Value = c.Settings.Mode == arena.Bounce
	g.widgetCollisions.Value = c.Settings.Collisions
	g.widgetPaused.Value = c.Settings.Paused
	g.widgetRecording.Value = c.Settings.Recording
	g.widgetDepth.SetValue(float64(c.Settings.HistoryDepth))
	g.widgetTrails.Value = c.ShowTrails
	g.widgetColors.Value = c.ColorByOrientation
	g.widgetTPS.SetValue(float64(c.TPS))
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	g.drawWalls(screen)
	if g.controls.ShowTrails {
		g.drawTrails(screen)
	}
	for _, a := range g.lastState.GetAgents() {
		g.drawAgent(screen, a)
	}

	g.panel.Draw(screen)
	g.drawStats(screen)
}

func (g *Game) drawWalls(screen *ebiten.Image) {
	b := g.cfg.Arena().Bounds()
	vector.StrokeRect(screen,
		float32(b.Left), float32(b.Top),
		float32(b.Right-b.Left), float32(b.Bottom-b.Top),
		1, wallColor, false)
}

func (g *Game) drawTrails(screen *ebiten.Image) {
	for _, t := range g.lastState.GetTrails() {
		n := len(t.X)
		for i := 1; i < n; i += 2 {
			clr := g.trailColor(t.Orientation[i], i, n)
			vector.FillCircle(screen, float32(t.X[i]), float32(t.Y[i]), 1.5, clr, true)
		}
	}
}

func (g *Game) trailColor(orientation float64, age, depth int) color.RGBA {
	clr := agentColor
	if g.controls.ColorByOrientation {
		clr = orientationColor(orientation)
	}
	// older samples fade out
	clr.A = uint8(160 * (1 - float64(age)/float64(depth+1)))
	return clr
}

func (g *Game) drawAgent(screen *ebiten.Image, a *pb.AgentState) {
	r := a.GetRadius()
	cx, cy := a.GetX()+r, a.GetY()+r

	clr := agentColor
	switch {
	case a.GetSelected():
		clr = selectedColor
	case g.controls.ColorByOrientation:
		clr = orientationColor(a.GetOrientation())
	}
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), clr, true)

	// heading line, screen y grows downwards
	o := a.GetOrientation()
	tipX := cx + math.Cos(o)*r
	tipY := cy - math.Sin(o)*r
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(tipX), float32(tipY), 2, background, true)

	if a.GetSelected() {
		msg := fmt.Sprintf("ID: %d\nori.: %.2f", a.GetId(), o)
		ebitenutil.DebugPrintAt(screen, msg, int(cx+r), int(cy+r))
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	status := fmt.Sprintf("TPS: %d, t = %d", g.controls.TPS, g.lastState.GetTick())
	if g.cfg.Steps > 0 {
		status = fmt.Sprintf("TPS: %d, t = %d/%d", g.controls.TPS, g.lastState.GetTick(), g.cfg.Steps)
	}
	if g.lastState.GetPaused() {
		status += "  -Paused-"
	}
	ebitenutil.DebugPrintAt(screen, status, int(g.cfg.Padding), 5)

	// Display performance stats in the lower left corner
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  Update: %.2fms  Draw: %.2fms  Collisions: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg, g.lastState.GetCollisionCount())
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.Padding), g.arenaH-int(g.cfg.Padding)+8)
}

func (g *Game) Layout(w, h int) (int, int) { return g.arenaW + panelWidth, g.arenaH }

// WindowSize is the size to pass to ebiten.SetWindowSize.
func (g *Game) WindowSize() (int, int) { return g.arenaW + panelWidth, g.arenaH }
