package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Fields carries per-field validation messages keyed by JSON field name.
	Fields map[string][]string `json:"fields,omitempty"`
	Err    error               `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation builds a 422 carrying every violated field constraint so the
// client can highlight exact fields.
func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Submission failed validation",
		Fields:  fields,
	}
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
