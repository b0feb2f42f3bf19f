package bootstrap

import (
	"log/slog"

	"github.com/osse101/XurBot_Go/internal/bungie"
	"github.com/osse101/XurBot_Go/internal/config"
	"github.com/osse101/XurBot_Go/internal/discord"
	"github.com/osse101/XurBot_Go/internal/item"
	"github.com/osse101/XurBot_Go/internal/location"
	"github.com/osse101/XurBot_Go/internal/manifest"
	"github.com/osse101/XurBot_Go/internal/metrics"
	"github.com/osse101/XurBot_Go/internal/pipeline"
	"github.com/osse101/XurBot_Go/internal/transport"
)

// Options tweak how the runner is assembled
type Options struct {
	// DryRun logs webhook payloads instead of posting them
	DryRun bool
	// HTTP overrides the transport's doer; nil builds one from cfg.HTTPTimeout
	HTTP transport.Doer
}

// BuildRunner wires every pipeline component from cfg around one shared transport
func BuildRunner(cfg *config.Config, opts Options) (*pipeline.Runner, *metrics.Recorder) {
	recorder := metrics.NewRecorder()

	doer := opts.HTTP
	if doer == nil {
		doer = transport.NewHTTPClient(cfg.HTTPTimeout)
	}
	client := transport.New(doer, transport.WithObserver(recorder))

	platform := bungie.NewClient(client, bungie.Config{
		APIKey:      cfg.BungieAPIKey,
		VendorURL:   cfg.VendorURL(),
		ItemBaseURL: cfg.ItemBaseURL(),
		VendorHash:  cfg.VendorHash,
		Denylist:    cfg.Denylist,
	})

	renderer := discord.NewRenderer(discord.Identity{
		Username:  cfg.BotName,
		AvatarURL: cfg.AvatarURL,
	}, cfg.SearchURL)

	var notifier pipeline.Notifier
	if opts.DryRun {
		slog.Warn(LogMsgDryRunEnabled)
		notifier = discord.NewLogNotifier(renderer)
	} else {
		notifier = discord.NewWebhookNotifier(client, cfg.DiscordWebhook, renderer)
	}

	runner := pipeline.NewRunner(pipeline.Deps{
		Location:  location.NewResolver(client, cfg.LocationURL),
		Inventory: platform,
		Manifest:  manifest.NewResolver(platform),
		Formatter: item.NewFormatter(cfg.IconBaseURL, item.FlavorSource(cfg.FlavorSource)),
		Notifier:  notifier,
		Metrics:   recorder,
	})

	return runner, recorder
}

// FlushMetrics writes the recorder to cfg.MetricsTextfile when one is configured.
// Failures are logged; metrics never change the run's exit status.
func FlushMetrics(cfg *config.Config, recorder *metrics.Recorder) {
	if cfg.MetricsTextfile == "" || recorder == nil {
		return
	}
	if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
		slog.Error(LogMsgMetricsWriteFailed, "path", cfg.MetricsTextfile, "error", err)
		return
	}
	slog.Debug(LogMsgMetricsWritten, "path", cfg.MetricsTextfile)
}
