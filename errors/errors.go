// Package errors holds the sentinel errors shared by the varcheck packages,
// plus a small accumulator for reporting several failures as one error.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks a validator or logger that was configured
	// with values it cannot honor. It signals a programming mistake, not bad data.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidCheckSet is returned when a check set is structurally broken,
	// e.g. it contains a nil check.
	ErrInvalidCheckSet = fmt.Errorf("%w: invalid check set", ErrInvalidConfiguration)

	// ErrViolation wraps every violation reported through Report.Err.
	ErrViolation = errors.New("validation violation")

	ErrWrongType = errors.New("wrong type")
)

// Collection accumulates errors in the order they were added.
// It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends err to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError reports whether at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Err returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) Err() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Is forwards to the standard library errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As forwards to the standard library errors.As.
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap forwards to the standard library errors.Unwrap.
func Unwrap(err error) error { return errors.Unwrap(err) }
