package xano

import "fmt"

// APIError is a non-2xx response from the Xano meta API. The adapter does not
// distinguish retryable from non-retryable statuses; every one of them is
// surfaced verbatim to the caller.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("xano api: %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("xano api: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}
