package v1

import (
	"errors"
	"net/http"

	"github.com/gl-recovery/backend/internal/session"
)

type httpError struct {
	Error string `json:"error" example:"there is no session with the specified ID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Upload errors
var (
	errNoFileUpload    = errors.New("you must upload both the GL dump and the GL description file to this endpoint, missing form field")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Query errors
var (
	errOrderQueryEmpty = errors.New("the order query parameter must be set to search for recoveries")
)
