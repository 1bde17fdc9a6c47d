package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
	"github.com/ganot/soporte-mcp/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrStoreNotFound):
		return &APIError{
			Code:         "STORE_NOT_FOUND",
			Message:      err.Error(),
			RecoveryHint: "Run the soporte-seed command to create the database",
		}
	case errors.Is(err, ticket.ErrInvalidArgument):
		return &APIError{
			Code:         "INVALID_ARGUMENT",
			Message:      err.Error(),
			RecoveryHint: "Check the allowed values in the tool description",
		}
	case errors.Is(err, repository.ErrStoreFailure):
		return &APIError{
			Code:    "STORE_FAILURE",
			Message: err.Error(),
		}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
