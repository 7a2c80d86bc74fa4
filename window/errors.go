// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "window: ..." so callers can grep for them.
// Algorithm packages return these sentinels (directly or through
// *ArgumentError) and tests match them via errors.Is.
var (
	// ErrNoWindow is returned when no window satisfies the procedure's
	// condition, including the empty-input case.
	ErrNoWindow = errors.New("window: no valid window")

	// ErrInvalidArgument is returned when a configuration value (k, K,
	// pattern, state) is rejected before the scan starts.
	ErrInvalidArgument = errors.New("window: invalid argument")
)

// ArgumentError describes a rejected argument. It unwraps to
// ErrInvalidArgument.
type ArgumentError struct {
	Op     string // procedure name, e.g. "fixed.MaxSum"
	Name   string // argument name, e.g. "k"
	Value  any    // offending value
	Reason string // short constraint, e.g. "must be >= 1"
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s=%v: %s", e.Op, e.Name, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// InvalidArgument is a shorthand constructor used by the algorithm packages.
func InvalidArgument(op, name string, value any, reason string) error {
	return &ArgumentError{Op: op, Name: name, Value: value, Reason: reason}
}
