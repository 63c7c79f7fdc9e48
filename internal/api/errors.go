package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is the 404 signal. For the singleton profile it is not a fault
// at all: it means the resource has not been created yet, and callers must
// branch on it instead of reporting an error.
var ErrNotFound = errors.New("resource not found")

// HTTPError is any non-2xx answer from the API. The body, when present, is
// carried along for logging; it is already drained from the response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Body)
}

// IsAuthFailure reports whether err is an HTTP error with an
// authentication-class status.
func IsAuthFailure(err error) bool {
	var he *HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.Status == http.StatusUnauthorized || he.Status == http.StatusForbidden
}

// RequestError classifies a failed gateway operation so callers can report
// which operation on which resource went wrong without parsing messages.
type RequestError struct {
	Op       string
	Resource string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Resource, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
