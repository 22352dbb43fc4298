package service

import (
	"errors"
	"fmt"
)

// ErrEmptyMedia is returned when a product has no images to show or cycle through
var ErrEmptyMedia = errors.New("product has no images")

// Validation reasons
const (
	ReasonMissingName    = "missing name"
	ReasonMissingContact = "missing contact"
	ReasonInvalidContact = "invalid contact"
)

// ValidationError reports bad reservation input
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// TransportError reports a failed mail submission and the stage it failed at
type TransportError struct {
	Stage string // connect, starttls, auth, submit
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mail %s failed: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotifyError is returned by a submission that passed validation but could not notify the shop
type NotifyError struct {
	Cause    error
	Recorded bool // the request was stored even though the email failed
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Cause)
}

func (e *NotifyError) Unwrap() error { return e.Cause }
