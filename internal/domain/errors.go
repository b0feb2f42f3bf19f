package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgVendorAbsent     = "vendor is not present"
	ErrMsgMissingField     = "missing expected field"
	ErrMsgUnexpectedStatus = "unexpected response status"
	ErrMsgAPIError         = "platform API returned an error"
	ErrMsgInvalidConfig    = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrVendorAbsent is not a failure: the location feed reported no vendor today.
	ErrVendorAbsent = errors.New(ErrMsgVendorAbsent)

	ErrMissingField     = errors.New(ErrMsgMissingField)
	ErrUnexpectedStatus = errors.New(ErrMsgUnexpectedStatus)
	ErrAPIError         = errors.New(ErrMsgAPIError)
	ErrInvalidConfig    = errors.New(ErrMsgInvalidConfig)
)
