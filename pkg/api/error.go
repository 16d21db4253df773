package api

import (
	"errors"
	"net/http"
)

// FallbackDetail is shown when the backend gives no usable detail message.
const FallbackDetail = "an unexpected error occurred"

// Error is a non-2xx backend response. Detail carries the backend's
// human-readable message verbatim.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return FallbackDetail
}

// IsUnauthorized reports whether err is an authentication failure. The
// session store treats these as an invalid token and self-heals.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// IsNotFound reports whether err is a missing-resource response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
