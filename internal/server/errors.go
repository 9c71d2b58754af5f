// Package server provides the HTTP REST API for the OSINT-Hive search
// service.
package server

import (
	"fmt"
	"net/http"
)

// ErrUnknownSource indicates an unrecognized dataset mode parameter.
type ErrUnknownSource struct {
	Mode string
}

func (e *ErrUnknownSource) Error() string {
	return fmt.Sprintf("unknown dataset mode: %s", e.Mode)
}

// ErrProfileNotFound indicates a profile lookup miss.
type ErrProfileNotFound struct {
	Source string
	ID     string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found in %s: %s", e.Source, e.ID)
}

// ErrValidation indicates a request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAnalysisUnavailable indicates that no generative-AI collaborator is
// configured.
type ErrAnalysisUnavailable struct{}

func (e *ErrAnalysisUnavailable) Error() string {
	return "AI analysis is not configured on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUnknownSource, *ErrValidation:
		return http.StatusBadRequest
	case *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrAnalysisUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
