package shared

import "fmt"

var (
	// Credential resolution errors
	ErrCredentialUnavailable = fmt.Errorf("no usable credential")
	ErrCredentialRefresh     = fmt.Errorf("token refresh failed")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Dataset and selection errors
	ErrInvalidDataset   = fmt.Errorf("invalid dataset")
	ErrInsufficientData = fmt.Errorf("insufficient data")

	// Remote service errors
	ErrRemoteService    = fmt.Errorf("remote service error")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
