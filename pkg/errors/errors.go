package errors

import (
	"fmt"
	"strings"
)

// ErrInvalidPhone is returned when a customer phone cannot be normalized
// into a usable international number
type ErrInvalidPhone struct {
	Input  interface{}
	E164   string
	Digits string
}

func (e *ErrInvalidPhone) Error() string {
	return fmt.Sprintf("invalid phone %v (normalized to %q)", e.Input, e.Digits)
}

// ErrMissingConfig is returned when required messaging settings are absent
type ErrMissingConfig struct {
	Keys []string
}

func (e *ErrMissingConfig) Error() string {
	return fmt.Sprintf("missing configuration: %s", strings.Join(e.Keys, ", "))
}

// ErrUpstream is returned when the messaging API rejects a send
type ErrUpstream struct {
	StatusCode int
	Details    interface{}
	StoreTag   string
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("messaging API error: status %d", e.StatusCode)
}

// ErrUnauthorized is returned when an inbound webhook key does not match
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}
