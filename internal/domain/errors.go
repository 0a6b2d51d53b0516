package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Credential errors
	ErrMsgNoCredential = "no api key configured"

	// Attack errors
	ErrMsgMalformedAttack = "malformed attack"

	// Store errors
	ErrMsgStore = "store error"

	// Secret errors
	ErrMsgSecretNotFound = "secret not found"
	ErrMsgDecryptFailed  = "failed to decrypt secret"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNoCredential is a configuration error: no upstream API key is available
	// for the caller. It is raised before any network activity.
	ErrNoCredential = errors.New(ErrMsgNoCredential)

	// ErrMalformedAttack is returned when an upstream attack lacks id, attacker or start time.
	ErrMalformedAttack = errors.New(ErrMsgMalformedAttack)

	ErrSecretNotFound = errors.New(ErrMsgSecretNotFound)
	ErrDecryptFailed  = errors.New(ErrMsgDecryptFailed)
)

// StoreError wraps any failure of the underlying storage driver.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMsgStore, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err for operation op. A nil err yields nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
