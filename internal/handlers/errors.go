package handlers

import (
	"net/http"
	"strings"
)

// errorStatus maps a service error to an HTTP status code. Service errors
// wrap repository sentinels, so matching is by substring.
func errorStatus(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "is required"),
		strings.Contains(msg, "invalid status"),
		strings.Contains(msg, "out of range"),
		strings.Contains(msg, "no fields to update"),
		strings.Contains(msg, "unsupported export format"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
