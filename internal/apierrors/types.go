// Package apierrors classifies backend and transport failures so callers can
// branch on a single sentinel per failure kind and retry logic can
// distinguish recoverable from irrecoverable errors.
package apierrors

import "fmt"

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable Category = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 400 Bad Request, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with categorization metadata and the
// taxonomy sentinel it maps to, so errors.Is works across package boundaries.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // response body, kept for debugging
	Sentinel   error  // taxonomy sentinel this failure maps to (may be nil)
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap exposes both the sentinel and the underlying error to errors.Is/As.
func (e *ClassifiedError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Sentinel != nil {
		errs = append(errs, e.Sentinel)
	}
	if e.Underlying != nil {
		errs = append(errs, e.Underlying)
	}
	return errs
}

// IsRecoverable reports whether err may be retried.
func IsRecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Recoverable
	}
	return false
}
