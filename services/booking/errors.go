package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the lifecycle engine.
const (
	CodeInvalidTransition = "invalidTransition"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "notFound"
	CodeInvalidReference  = "invalidReference"
	CodeStoreFailure      = "storeFailure"
)

// LifecycleError is a coded error returned by the lifecycle engine so
// handlers can map failures to HTTP statuses without string matching.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewLifecycleError(code, msg string) error {
	return &LifecycleError{Code: code, Message: msg}
}

// CodeOf extracts the lifecycle error code, or "" for other errors.
func CodeOf(err error) string {
	var le *LifecycleError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
