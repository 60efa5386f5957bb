package mcp

import (
	"errors"
	"fmt"

	"github.com/ratnesh149/raginators-hybrid/internal/dataset"
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, candidate.ErrMissingID):
		return &APIError{Code: "INVALID_INPUT", Message: "candidate id required", RecoveryHint: "Pass an id from list_candidates"}
	case errors.Is(err, dataset.ErrUnknownFormat):
		return &APIError{Code: "UNKNOWN_FORMAT", Message: err.Error(), RecoveryHint: "Use csv, json, or yaml"}
	case errors.Is(err, candidate.ErrInvalidRecord):
		return &APIError{Code: "INVALID_RECORD", Message: err.Error()}
	default:
		return nil
	}
}

func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
