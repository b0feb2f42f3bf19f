package bootstrap

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting XurBot"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgDryRunEnabled      = "Dry run enabled, nothing will be posted to Discord"
	LogMsgMetricsWritten     = "Metrics written"
	LogMsgMetricsWriteFailed = "Failed to write metrics textfile"
	LogMsgShuttingDown       = "Shutting down scheduler"
	LogMsgShutdownTimedOut   = "Scheduler shutdown timed out"
	LogMsgShutdownComplete   = "Shutdown complete"
)
