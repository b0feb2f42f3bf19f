package transport

import "time"

// Header names and values
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderAPIKey      = "X-API-Key"
	ContentTypeJSON   = "application/json"
)

// DefaultTimeout bounds a single request when no timeout is configured
const DefaultTimeout = 10 * time.Second

// maxErrorBodyBytes limits how much of a failed response is kept for diagnostics
const maxErrorBodyBytes = 512

// Log messages
const (
	LogMsgRequestStarted  = "Upstream request started"
	LogMsgRequestFinished = "Upstream request finished"
	LogMsgRequestFailed   = "Upstream request failed"
)
