package bungie

// Endpoint names used in logs, metrics and errors
const (
	EndpointVendorSales    = "vendor_sales"
	EndpointItemDefinition = "item_definition"
)

// PlatformErrorCodeSuccess is the envelope ErrorCode for a successful call
const PlatformErrorCodeSuccess = 1

// Log messages
const (
	LogMsgDenylistedHash = "Skipping denylisted item hash"
	LogMsgDuplicateHash  = "Skipping duplicate item hash"
	LogMsgSalesResolved  = "Vendor sales resolved"
)
