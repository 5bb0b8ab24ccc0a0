package models

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so that the transport layer can pick a response without
// inspecting error messages.
type Kind uint8

const (
	KindInfrastructure Kind = iota
	KindInvalidInput
	KindInvalidRange
	KindMissingAttribution
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidRange:
		return "invalid_range"
	case KindMissingAttribution:
		return "missing_attribution"
	case KindNotFound:
		return "not_found"
	default:
		return "infrastructure"
	}
}

// Error is the typed error returned by the service and repository layers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is. Any *Error of the same Kind matches them.
var (
	ErrInfrastructure     = &Error{Kind: KindInfrastructure, Message: "infrastructure failure"}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput, Message: "invalid employee data"}
	ErrInvalidRange       = &Error{Kind: KindInvalidRange, Message: "invalid salary range"}
	ErrMissingAttribution = &Error{Kind: KindMissingAttribution, Message: "attribution is required"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "employee not found"}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds a typed error with a formatted message and no cause.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Infrastructure wraps a storage or transport failure. The message is what clients may see,
// the cause is kept for logs.
func Infrastructure(msg string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in the chain, KindInfrastructure otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInfrastructure
}

// PublicMessage returns the message of the first *Error in the chain without its cause.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "unexpected error"
}
