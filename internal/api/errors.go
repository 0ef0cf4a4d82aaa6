package api

import (
	"fmt"
	"strings"
)

// ErrUnavailable indicates the backend could not be reached.
type ErrUnavailable struct {
	Endpoint string
	Err      error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s: backend unavailable: %v", e.Endpoint, e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrStatus indicates the backend answered with a non-2xx status.
type ErrStatus struct {
	Endpoint   string
	StatusCode int
	Body       string // first bytes of the response body
}

func (e *ErrStatus) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.StatusCode, body)
}

// ErrInvalidResponse indicates a 2xx response whose body could not be used.
type ErrInvalidResponse struct {
	Endpoint string
	Err      error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Endpoint, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
