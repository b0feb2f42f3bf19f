package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/XurBot_Go/internal/bootstrap"
)

// runCmd performs exactly one pass; it is also the root command's default
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check once and post the results",
	RunE:  runOnce,
}

func runOnce(cmd *cobra.Command, args []string) error {
	runner, recorder := bootstrap.BuildRunner(cfg, bootstrap.Options{DryRun: dryRun})
	defer bootstrap.FlushMetrics(cfg, recorder)

	_, err := runner.Run(cmd.Context())
	return err
}
