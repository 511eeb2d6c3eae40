package pkg

import "fmt"

// AppError is the error envelope handlers translate use case failures into.
//
// Code is machine-readable and only used for logs; the HTTP body carries the
// message alone (see ToHTTPError).
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewDomainError builds an AppError that keeps the underlying cause.
// When message is empty the cause's text is used instead.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Message: e.Message}
}
