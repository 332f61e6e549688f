package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError for callers that need to branch on the
// failure category rather than on the HTTP status.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindUnauthorized        Kind = "unauthorized"
	KindNotFound            Kind = "not_found"
	KindQuotaExceeded       Kind = "quota_exceeded"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindEmptyGeneration     Kind = "empty_generation"
	KindStorage             Kind = "storage"
)

// AppError is the failure type services return to the HTTP layer.
// Message is safe to show to clients; Err keeps the internal cause
// for logs and errors.Is/As chains.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func NewValidation(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

// NewNotFound takes the resource name, e.g. "Content" -> "Content not found".
func NewNotFound(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: resource + " not found",
	}
}

func NewQuotaExceeded(message string) *AppError {
	return &AppError{
		Kind:    KindQuotaExceeded,
		Status:  http.StatusTooManyRequests,
		Message: message,
	}
}

func NewUpstreamUnavailable(message string, err error) *AppError {
	return &AppError{
		Kind:    KindUpstreamUnavailable,
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

func NewEmptyGeneration(message string) *AppError {
	return &AppError{
		Kind:    KindEmptyGeneration,
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

func NewStorage(err error) *AppError {
	return &AppError{
		Kind:    KindStorage,
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong. Please try again.",
		Err:     err,
	}
}
