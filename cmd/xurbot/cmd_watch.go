package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/XurBot_Go/internal/bootstrap"
	"github.com/osse101/XurBot_Go/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

var (
	schedule string
	runNow   bool
)

// watchCmd keeps the process alive and runs one fresh pass per schedule tick
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run on a cron schedule until interrupted",
	Long: `Run a fresh check on every tick of a cron schedule. Runs share nothing;
a tick that fires while the previous run is still in progress is skipped.

Schedules accept an optional seconds field ("0 */15 * * * *") or descriptors
such as "@every 15m" and "@hourly".`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&schedule, "schedule", "", "Cron schedule (default from SCHEDULE)")
	watchCmd.Flags().BoolVar(&runNow, "run-now", false, "Run once immediately before waiting for the first tick")
}

func runWatch(cmd *cobra.Command, args []string) error {
	spec := schedule
	if spec == "" {
		spec = cfg.Schedule
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, recorder := bootstrap.BuildRunner(cfg, bootstrap.Options{DryRun: dryRun})
	job := scheduler.JobFunc(func(jobCtx context.Context) error {
		defer bootstrap.FlushMetrics(cfg, recorder)
		_, err := runner.Run(jobCtx)
		return err
	})

	// Scheduled runs are not tied to the signal context; shutdown drains them.
	sched := scheduler.New(context.Background())
	if err := sched.Schedule(spec, job); err != nil {
		return err
	}

	if runNow {
		if err := job.Process(ctx); err != nil {
			slog.Error(scheduler.LogMsgJobFailed, "error", err)
		}
	}

	sched.Start()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, sched)
	return nil
}
