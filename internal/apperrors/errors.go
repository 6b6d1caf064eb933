// Package apperrors defines the error kinds surfaced over HTTP.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
)

// AppError carries the message shown to the client and the wrapped cause,
// which is only logged.
type AppError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg, HTTPStatus: http.StatusBadRequest}
}

func Auth(msg string) *AppError {
	return &AppError{Kind: KindAuth, Message: msg, HTTPStatus: http.StatusUnauthorized}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

// Storage wraps a backend failure under a client-safe message.
func Storage(msg string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: msg, HTTPStatus: http.StatusInternalServerError, Err: err}
}

// As extracts an *AppError from err.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
