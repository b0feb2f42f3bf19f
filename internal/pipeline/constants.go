package pipeline

// Log messages
const (
	LogMsgRunStarted    = "Run started"
	LogMsgVendorAbsent  = "Xur isn't here, skipping the alert"
	LogMsgVendorPresent = "Xur located"
	LogMsgFormatFailed  = "Item formatting failed, skipping"
	LogMsgRunFinished   = "Run finished"
	LogMsgRunFailed     = "Run failed"
	LogMsgItemsSkipped  = "Some items were skipped"
	LogMsgSendingCards  = "Sending inventory to Discord"
)
