package grocy

import "fmt"

// ErrorType represents the category of error that occurred talking to the
// stock service.
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level error (connection refused,
	// timeout, DNS failure)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates a non-success status code from the service
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServiceError represents an error that occurred during a stock service call.
// Every ServiceError is fatal for the panel process: the panel exists to show
// live truth and does not retry.
type ServiceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Type, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-level error
func NewNetworkError(message string, err error) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an error for a non-success status code
func NewHTTPError(statusCode int, message string) *ServiceError {
	return &ServiceError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates an error for a malformed response body
func NewParseError(message string, err error) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// IsNetworkError checks if an error is a transport-level error
func IsNetworkError(err error) bool {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr.Type == ErrTypeNetwork
	}
	return false
}

// IsHTTPError checks if an error is a non-success status error
func IsHTTPError(err error) bool {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr.Type == ErrTypeHTTP
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr.Type == ErrTypeParse
	}
	return false
}
