package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-agent-arena/internal/audio"
	"github.com/lao-tseu-is-alive/go-agent-arena/internal/tui"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Render the arena in the terminal",
		Long: `Render the arena in the terminal with the same keys as run.

Logs go to --log-file since the terminal is taken by the viewer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logFile, _ := cmd.Flags().GetString("log-file")
			logger, closeLog, err := fileLogger(cmd, logFile)
			if err != nil {
				return err
			}
			defer closeLog()

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

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()

			var beeper *audio.Beeper
			if sound, _ := cmd.Flags().GetBool("sound"); sound {
				beeper = audio.NewBeeper()
				if err := beeper.Initialize(); err != nil {
					// Non-fatal, the viewer runs without sound
					logger.Warnf("audio initialization failed: %v", err)
				}
				defer beeper.Close()
			}

			viewer, err := tui.New(ctx, sim, system, screen, beeper)
			if err != nil {
				return err
			}
			return viewer.Run()
		},
	}
	cmd.Flags().Bool("sound", false, "Beep on collisions")
	cmd.Flags().String("log-file", "", "Write logs to this file instead of discarding them")
	return cmd
}

func fileLogger(cmd *cobra.Command, path string) (golog.Logger, func(), error) {
	if path == "" {
		return golog.DiscardLogger, func() {}, nil
	}
	s, _ := cmd.Flags().GetString("log-level")
	level, err := parseLevel(s)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return golog.New(level, f), func() { f.Close() }, nil
}
