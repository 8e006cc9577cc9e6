package dmq

import (
	"errors"
	"fmt"
)

// OversizedMessageError indicates that a message failed admission because its
// payload exceeds the configured maximum size. Nothing was mutated; the
// rejection is final for this input and surfaced to the submitter.
type OversizedMessageError struct {
	error
}

func NewOversizedMessageErrorf(msg string, args ...interface{}) error {
	return OversizedMessageError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e OversizedMessageError) Unwrap() error {
	return e.error
}

// IsOversizedMessageError returns whether the given error is an OversizedMessageError
func IsOversizedMessageError(err error) bool {
	return errors.As(err, &OversizedMessageError{})
}

// QueueTooShortError indicates a processed-count report claiming more
// messages than the para's queue holds. It rejects the candidate block the
// report arrived in; no partial application happens.
type QueueTooShortError struct {
	error
}

func NewQueueTooShortErrorf(msg string, args ...interface{}) error {
	return QueueTooShortError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e QueueTooShortError) Unwrap() error {
	return e.error
}

// IsQueueTooShortError returns whether the given error is a QueueTooShortError
func IsQueueTooShortError(err error) bool {
	return errors.As(err, &QueueTooShortError{})
}

// ZeroProcessedError indicates a processed-count report of zero against a
// non-empty queue. A para with pending messages must make progress on at
// least one of them per candidate, so the candidate is rejected.
type ZeroProcessedError struct {
	error
}

func NewZeroProcessedErrorf(msg string, args ...interface{}) error {
	return ZeroProcessedError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e ZeroProcessedError) Unwrap() error {
	return e.error
}

// IsZeroProcessedError returns whether the given error is a ZeroProcessedError
func IsZeroProcessedError(err error) bool {
	return errors.As(err, &ZeroProcessedError{})
}
