package models

import "errors"

// Sentinel kinds for the error taxonomy. Handlers map these to HTTP
// statuses; the user-facing message lives on the DomainError wrapper.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("not authorized")
	ErrValidation    = errors.New("validation failed")
	ErrQuotaExceeded = errors.New("booking limit reached")
)

type DomainError struct {
	kind error
	msg  string
}

func (e *DomainError) Error() string { return e.msg }
func (e *DomainError) Unwrap() error { return e.kind }

func NotFound(msg string) error      { return &DomainError{kind: ErrNotFound, msg: msg} }
func Forbidden(msg string) error     { return &DomainError{kind: ErrForbidden, msg: msg} }
func Invalid(msg string) error       { return &DomainError{kind: ErrValidation, msg: msg} }
func QuotaExceeded(msg string) error { return &DomainError{kind: ErrQuotaExceeded, msg: msg} }
