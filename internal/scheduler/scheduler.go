package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Log messages
const (
	LogMsgJobFailed    = "Scheduled job failed"
	LogMsgJobScheduled = "Job scheduled"
)

// Job represents a task run on every tick
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Scheduler runs jobs on cron specs. A tick that arrives while the previous
// run of the same job is still going is skipped, so runs never overlap.
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
}

// New creates a scheduler whose jobs receive ctx.
// Specs accept an optional leading seconds field and descriptors such as "@every 15m".
func New(ctx context.Context) *Scheduler {
	log := cronLogger{log: slog.Default().With("component", "scheduler")}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	return &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(log),
			cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
		),
		ctx: ctx,
	}
}

// Schedule registers job under spec
func (s *Scheduler) Schedule(spec string, job Job) error {
	id, err := s.cron.AddFunc(spec, func() {
		if err := job.Process(s.ctx); err != nil {
			slog.Error(LogMsgJobFailed, "spec", spec, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	slog.Info(LogMsgJobScheduled, "spec", spec, "next", s.cron.Entry(id).Next)
	return nil
}

// Start begins firing jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new ticks. The returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger routes cron's own logging through slog
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
