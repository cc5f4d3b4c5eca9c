package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lao-tseu-is-alive/go-agent-arena/internal/headless"
	"github.com/lao-tseu-is-alive/go-agent-arena/internal/store"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

func newHeadlessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window, optionally recording to SQLite",
		Long: `Run the simulation without any window as fast as possible.

Examples:
  arena headless --steps 5000
  arena headless --config configs/arena.yaml --db runs/arena.db --every 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			steps, _ := cmd.Flags().GetInt64("steps")
			if !cmd.Flags().Changed("steps") && cfg.Steps > 0 {
				steps = cfg.Steps
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := []simulation.Option{simulation.WithLogger(logger)}
			dbPath, _ := cmd.Flags().GetString("db")
			var rec *store.Recorder
			if dbPath != "" {
				rec, err = store.Open(dbPath)
				if err != nil {
					return err
				}
				defer rec.Close()
				rec.Every, _ = cmd.Flags().GetInt64("every")
				opts = append(opts, simulation.WithObserver(rec))
			}

			sim, err := simulation.New(cfg, opts...)
			if err != nil {
				return err
			}
			if rec != nil {
				run, err := rec.BeginRun(ctx, sim.Seed(), cfg)
				if err != nil {
					return err
				}
				logger.Infof("recording run %d to %s", run, rec.Path())
			}
			st, err := cfg.Settings()
			if err != nil {
				return err
			}

			progress, _ := cmd.Flags().GetInt64("progress")
			runner := &headless.Runner{Sim: sim, Settings: st, Logger: logger, ProgressEvery: progress}
			sum := runner.Run(ctx, steps)

			if rec != nil {
				if err := rec.EndRun(ctx); err != nil {
					return err
				}
				count, err := rec.CountStates(ctx, rec.RunID())
				if err != nil {
					return err
				}
				logger.Infof("stored %d agent states", count)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed=%d ticks=%d collisions=%d elapsed=%s\n",
				sim.Seed(), sum.Ticks, sum.Collisions, sum.Elapsed)
			return nil
		},
	}
	cmd.Flags().Int64("steps", headless.DefaultSteps, "Number of ticks to run, the config steps when unset")
	cmd.Flags().String("db", "", "SQLite file receiving every agent state")
	cmd.Flags().Int64("every", 1, "Record one tick out of every N")
	cmd.Flags().Int64("progress", 100, "Log progress every N ticks, 0 disables")
	return cmd
}
