package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a config file against the schema and the arena constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			cfg, err := simulation.LoadConfig(args[0], schema)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d agents, %vx%v arena, %s walls, behavior %s)\n",
				args[0], cfg.NumAgents, cfg.Width, cfg.Height, cfg.BoundaryMode, cfg.Behavior)
			return nil
		},
	}
}
