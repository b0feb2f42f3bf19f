package bootstrap

import (
	"log/slog"

	"github.com/osse101/XurBot_Go/internal/config"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application config.
// The environment picks a preset; explicit level, format and version override it.
func SetupLogger(cfg *config.Config) {
	logCfg := logger.ConfigForEnvironment(cfg.Environment)
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		logCfg.Format = cfg.LogFormat
	}
	if cfg.Version != "" {
		logCfg.Version = cfg.Version
	}

	logger.InitLogger(logCfg)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.Level, "format", logCfg.Format, "add_source", logCfg.AddSource)
	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", cfg.Version)
	slog.Debug(LogMsgConfigLoaded,
		"location_url", cfg.LocationURL,
		"vendor_url", cfg.VendorURL(),
		"vendor_hash", cfg.VendorHash,
		"denylist", cfg.Denylist,
		"flavor_source", cfg.FlavorSource,
		"http_timeout", cfg.HTTPTimeout)
}
