// Package apperr holds the error kinds shared by every service. Controllers
// switch on Code(err) to pick a status; anything without a code is treated as
// an internal failure.
package apperr

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	ErrValidation    ErrCode = "VALIDATION"
	ErrReference     ErrCode = "REFERENCE"
	ErrConflict      ErrCode = "CONFLICT"
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrOutOfStock    ErrCode = "OUT_OF_STOCK"
	ErrAlreadyClosed ErrCode = "ALREADY_CLOSED"
	ErrStorage       ErrCode = "STORAGE"
)

type codedError struct {
	code   ErrCode
	msg    string
	fields map[string]string
	cause  error
}

func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *codedError) Code() ErrCode { return e.code }
func (e *codedError) Unwrap() error { return e.cause }

// Message is the client-safe part of the error.
func (e *codedError) Message() string { return e.msg }

func New(c ErrCode, msg string) error { return &codedError{code: c, msg: msg} }

func Validation(fields map[string]string) error {
	return &codedError{code: ErrValidation, msg: "validation error", fields: fields}
}

// Invalid is a single-field validation failure.
func Invalid(field, reason string) error {
	return Validation(map[string]string{field: reason})
}

func Reference(msg string) error     { return New(ErrReference, msg) }
func Conflict(msg string) error      { return New(ErrConflict, msg) }
func NotFound(msg string) error      { return New(ErrNotFound, msg) }
func OutOfStock(msg string) error    { return New(ErrOutOfStock, msg) }
func AlreadyClosed(msg string) error { return New(ErrAlreadyClosed, msg) }

// Storage wraps a driver/transport failure. The cause is kept for logs only.
func Storage(op string, cause error) error {
	if cause == nil {
		return nil
	}
	if Code(cause) != "" {
		return cause
	}
	return &codedError{code: ErrStorage, msg: op, cause: cause}
}

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

func Message(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return ""
}

func Fields(err error) map[string]string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.fields
	}
	return nil
}
