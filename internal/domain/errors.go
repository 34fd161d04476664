package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrLoginRequired      = errors.New("login required")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ValidationError reports input rejected before any request is made.
type ValidationError struct {
	Message string
	Fields  []string
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// RejectedError is a well-formed backend answer with success=false. It is not
// a connectivity failure and never triggers the offline fallback.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return "request rejected by server: " + e.Message
}

func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}
