package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Loading errors
	ErrAPIRequest  = fmt.Errorf("request failed")
	ErrHTTPStatus  = fmt.Errorf("unexpected HTTP status")
	ErrParse       = fmt.Errorf("malformed sheet data")
	ErrMissingData = fmt.Errorf("no sheet source configured")

	// Navigation errors
	ErrUnknownSheetID    = fmt.Errorf("sheet not found")
	ErrNotLoaded         = fmt.Errorf("sheets not loaded")
	ErrInvalidTransition = fmt.Errorf("invalid view transition")

	// Service errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
