package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
	"github.com/osse101/XurBot_Go/internal/metrics"
)

// LocationResolver reports where the vendor is, or domain.ErrVendorAbsent
type LocationResolver interface {
	Resolve(ctx context.Context) (domain.Location, error)
}

// InventoryFetcher lists the item hashes currently on sale
type InventoryFetcher interface {
	VendorSales(ctx context.Context) ([]domain.ItemHash, error)
}

// ManifestResolver fetches one definition per hash
type ManifestResolver interface {
	Resolve(ctx context.Context, hashes []domain.ItemHash) []domain.ItemResult
}

// ItemFormatter turns a definition into a display-ready item
type ItemFormatter interface {
	Format(ctx context.Context, def domain.ItemDefinition) (domain.Item, error)
}

// Notifier publishes the presence alert and item cards
type Notifier interface {
	SendPresence(ctx context.Context, loc domain.Location) error
	SendItemCard(ctx context.Context, item domain.Item) error
}

// Recorder receives run-level metrics
type Recorder interface {
	RunFinished(outcome string, elapsed time.Duration)
	ItemNotified(category string)
	ItemFailed()
}

// Deps are the collaborators of a Runner
type Deps struct {
	Location  LocationResolver
	Inventory InventoryFetcher
	Manifest  ManifestResolver
	Formatter ItemFormatter
	Notifier  Notifier
	Metrics   Recorder
}

// Runner executes one notification run at a time.
// It holds no state between runs.
type Runner struct {
	deps Deps
}

// NewRunner creates a runner
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run locates the vendor, announces it, and posts one card per offered item.
// Absence is a successful run with Report.Present false.
func (r *Runner) Run(ctx context.Context) (domain.Report, error) {
	report := domain.Report{RunID: logger.NewRunID()}
	ctx = logger.WithRunID(ctx, report.RunID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted)

	start := time.Now()
	err := r.run(ctx, &report)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeNotified
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
		log.Error(LogMsgRunFailed, "error", err, "duration", elapsed)
	case !report.Present:
		outcome = metrics.OutcomeAbsent
	default:
		log.Info(LogMsgRunFinished, "sent", len(report.Sent), "failed", len(report.Failed), "duration", elapsed)
	}
	if r.deps.Metrics != nil {
		r.deps.Metrics.RunFinished(outcome, elapsed)
	}

	return report, err
}

func (r *Runner) run(ctx context.Context, report *domain.Report) error {
	log := logger.FromContext(ctx)

	loc, err := r.deps.Location.Resolve(ctx)
	if errors.Is(err, domain.ErrVendorAbsent) {
		log.Info(LogMsgVendorAbsent)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve location: %w", err)
	}
	report.Present = true
	report.Location = &loc
	log.Info(LogMsgVendorPresent, "planet", loc.Planet, "place", loc.Place)

	if err := r.deps.Notifier.SendPresence(ctx, loc); err != nil {
		return err
	}

	hashes, err := r.deps.Inventory.VendorSales(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch inventory: %w", err)
	}
	report.Hashes = hashes

	items := r.buildItems(ctx, r.deps.Manifest.Resolve(ctx, hashes), report)

	if len(report.Failed) > 0 {
		log.Warn(LogMsgItemsSkipped, "failed_hashes", report.FailedHashes())
	}

	log.Info(LogMsgSendingCards, "count", len(items))
	for _, item := range items {
		if err := r.deps.Notifier.SendItemCard(ctx, item); err != nil {
			return err
		}
		report.Sent = append(report.Sent, item)
		if r.deps.Metrics != nil {
			r.deps.Metrics.ItemNotified(string(item.Category))
		}
	}

	return nil
}

// buildItems formats every resolved definition, moving failures into the report
func (r *Runner) buildItems(ctx context.Context, results []domain.ItemResult, report *domain.Report) []domain.Item {
	log := logger.FromContext(ctx)
	items := make([]domain.Item, 0, len(results))

	for _, res := range results {
		if !res.Failed() {
			item, err := r.deps.Formatter.Format(ctx, *res.Definition)
			if err != nil {
				log.Warn(LogMsgFormatFailed, "hash", res.Hash, "error", err)
				res.Err = err
			} else {
				res.Item = &item
				items = append(items, item)
				continue
			}
		}

		report.Failed = append(report.Failed, res)
		if r.deps.Metrics != nil {
			r.deps.Metrics.ItemFailed()
		}
	}
	return items
}
