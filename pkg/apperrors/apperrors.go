package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure category in API responses.
type ErrorCode string

const (
	CodeValidation        ErrorCode = "VALIDATION_ERROR"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredential ErrorCode = "INVALID_CREDENTIAL"
	CodeStorage           ErrorCode = "STORAGE_ERROR"
	CodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// AppError carries a stable code and the HTTP status a handler should write.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	HTTPCode int       `json:"-"`
	Err      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode, Err: err}
}

func NotFound(what string) *AppError {
	return New(CodeNotFound, what+" not found", http.StatusNotFound)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Storage(err error) *AppError {
	return Wrap(err, CodeStorage, "file storage failure", http.StatusInternalServerError)
}

// Status returns the HTTP status for err: the embedded status for an
// AppError, 500 for anything else.
func Status(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.HTTPCode
	}
	return http.StatusInternalServerError
}

// Message returns the user-visible message for err. Non-AppError failures
// collapse to a generic message; internal detail belongs in logs only.
func Message(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
