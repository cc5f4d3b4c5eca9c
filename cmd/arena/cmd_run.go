package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/lao-tseu-is-alive/go-agent-arena/internal/gui"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the arena in a window",
		Long: `Open the arena in a window.

Keys:
  space    pause / resume
  b        toggle wrap / bounce walls
  c        toggle collisions
  t        show / hide trails
  r        toggle recording
  o        color agents by orientation
  s / f    slower / faster (step 5 TPS), d resets
  a        add an agent at the cursor
  arrows   turn the agent under the cursor, so does the wheel
  mouse    drag agents with the left button
  esc, q   quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			sim, err := simulation.New(cfg, simulation.WithLogger(logger))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			system, err := startSystem(cmd, logger)
			if err != nil {
				return err
			}
			defer system.Stop(ctx)

			game, err := gui.GetNewGame(ctx, sim, system)
			if err != nil {
				return err
			}
			ebiten.SetWindowSize(game.WindowSize())
			ebiten.SetWindowTitle("Agent Arena")
			logger.Infof("seed %d, %d agents", sim.Seed(), len(sim.Agents()))
			return ebiten.RunGame(game)
		},
	}
}
