package api

import (
	"fmt"
	"net/http"

	"github.com/mycomarket/mycomarket-go/internal/common"
)

// Error is a failed API call: a non-2xx status or a success=false envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// match with errors.Is without importing net/http.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return common.ErrUnavailable
	}
	return nil
}
