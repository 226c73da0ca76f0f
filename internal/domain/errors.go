package domain

import (
	"errors"
	"fmt"
)

// Validation errors, recovered locally with a user-facing message.
var (
	// ErrNoActiveSession is returned when an answer arrives
	// without a training session in progress.
	ErrNoActiveSession = errors.New("no active training session")

	// ErrEmptyVocabulary is returned when training is requested
	// for a user with no stored words.
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
)

// PersistenceError is a systemic repository failure: the whole
// operation was aborted and rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
