package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "arena",
		Short: "Agent arena - a 2D multi-agent simulator",
		Long: `arena moves circular agents inside a rectangular arena with wrap or
bounce walls, optional pairwise collisions and a recorded trail history.

Run it with a window, in the terminal, or headless with a SQLite recording.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (.json, .yaml, .yml or .toml)")
	rootCmd.PersistentFlags().String("schema", "", "JSON schema for the config, the embedded one by default")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newTuiCmd(),
		newHeadlessCmd(),
		newValidateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arena version %s\n", version)
		},
	}
}

// loadConfig reads --config, or returns the defaults when it is empty.
func loadConfig(cmd *cobra.Command) (*simulation.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	schema, _ := cmd.Flags().GetString("schema")
	if path == "" {
		cfg := simulation.DefaultConfig()
		return cfg, cfg.Validate()
	}
	return simulation.LoadConfig(path, schema)
}

func parseLevel(s string) (golog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return golog.DebugLevel, nil
	case "info", "":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	default:
		return golog.InfoLevel, fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", s)
	}
}

func newLogger(cmd *cobra.Command) (golog.Logger, error) {
	s, _ := cmd.Flags().GetString("log-level")
	level, err := parseLevel(s)
	if err != nil {
		return nil, err
	}
	return golog.New(level, os.Stderr), nil
}

// startSystem starts the actor system hosting the world actor.
func startSystem(cmd *cobra.Command, logger golog.Logger) (actor.ActorSystem, error) {
	system, err := actor.NewActorSystem("AgentArena",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(cmd.Context()); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}
