package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline and service error taxonomy. Every component failure is wrapped
// into one of these sentinels so the HTTP boundary can classify it.
var (
	ErrUpstreamService      = errors.New("upstream service error")
	ErrConversionFailed     = errors.New("document conversion failed")
	ErrClassificationFailed = errors.New("document classification failed")
	ErrExtractionFailed     = errors.New("document extraction failed")
	ErrStorageFailed        = errors.New("storage write failed")
	ErrMedicationMismatch   = errors.New("medication does not match prescription")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("resource not found")
)

// NewAppError builds an AppError around a sentinel cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UserMessage turns an internal error into the friendly sentence sent
// back over chat. The messaging flow never surfaces raw error text.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMedicationMismatch):
		return "That medicine doesn't match your current prescription. Please check with your healthcare provider."
	case errors.Is(err, ErrConversionFailed):
		return "I couldn't read the pages of that document. Please try sending a clearer copy."
	case errors.Is(err, ErrClassificationFailed):
		return "I couldn't tell what kind of medical document that is. Please try again with a clearer copy."
	case errors.Is(err, ErrExtractionFailed):
		return "I couldn't extract the details from that document. Please try again later."
	case errors.Is(err, ErrStorageFailed):
		return "I couldn't save your records right now. Please try again later."
	case errors.Is(err, ErrValidation):
		return "I couldn't understand that message. Please send a medical document or reply using the buttons."
	default:
		return "Something went wrong while processing your message. Please try again later."
	}
}

// UpstreamError carries the status and body of a failed call to an
// external service (extraction, rasterization, messaging).
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstreamService }

func NewUpstreamError(service string, status int, body string) *UpstreamError {
	return &UpstreamError{Service: service, Status: status, Body: body}
}
