package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Source API errors
	ErrRemoteUnavailable     = fmt.Errorf("remote API unavailable")
	ErrNotFound              = fmt.Errorf("playlist not found")
	ErrItemDetailUnavailable = fmt.Errorf("item detail unavailable")

	// Normalization and artifact errors
	ErrMissingRequiredField = fmt.Errorf("missing required field")
	ErrWriteFailed          = fmt.Errorf("snapshot write failed")

	// Input validation errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrMissingArgument    = fmt.Errorf("missing required argument")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
)
