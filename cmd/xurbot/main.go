package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/XurBot_Go/internal/bootstrap"
	"github.com/osse101/XurBot_Go/internal/config"
)

var (
	configPath string
	dryRun     bool

	cfg *config.Config
)

// rootCmd runs a single notification pass when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "xurbot",
	Short: "Announce Xur's location and inventory to a Discord webhook",
	Long: `xurbot checks where Xur is, and when he is present posts his location and
one card per item on sale to a Discord webhook.

Run it once per check interval from cron, or use "xurbot watch" to keep it
running on an in-process schedule.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runOnce,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (or set CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log webhook payloads instead of posting them")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("xurbot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig loads and validates configuration, then installs the logger
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	cfg = loaded

	bootstrap.SetupLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err == nil {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}
	return nil
}
