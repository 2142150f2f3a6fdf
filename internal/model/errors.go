package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline. Coordinators wrap these with %w so
// callers can classify failures with errors.Is while still surfacing a
// human-readable message. None of them is fatal to the process.
var (
	// ErrValidation marks malformed or missing input, recoverable by re-entry.
	ErrValidation = errors.New("validation failed")
	// ErrNoSigner marks a write attempted without a configured signing identity.
	ErrNoSigner = errors.New("no signing identity configured")
	// ErrNotFound marks an item that is absent or not yet visible on the ledger.
	ErrNotFound = errors.New("item not found")
	// ErrAlreadyVerified is terminal for the given id.
	ErrAlreadyVerified = errors.New("item is already verified")
	// ErrMissingEvidence marks a verification attempt with no cached image.
	ErrMissingEvidence = errors.New("no image found for this item")
	// ErrConfig marks a missing external credential. Not user-recoverable.
	ErrConfig = errors.New("missing configuration")
	// ErrClassifierUnavailable marks a failed call to the classification service.
	ErrClassifierUnavailable = errors.New("classification service failed")
	// ErrClassificationMismatch means none of the top predicted labels matched
	// the claimed item type. No ledger write may follow it.
	ErrClassificationMismatch = errors.New("image does not match the claimed item type")
)

// SubmissionError wraps a rejected or reverted ledger write together with a
// human-readable cause extracted from the underlying failure.
type SubmissionError struct {
	Cause string
	Err   error
}

// NewSubmissionError builds a SubmissionError. Cause should already be the
// readable form; Err keeps the original failure for wrapping.
func NewSubmissionError(cause string, err error) *SubmissionError {
	return &SubmissionError{Cause: cause, Err: err}
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %s", e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
