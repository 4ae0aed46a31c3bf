package domain

import "errors"

// Domain errors represent business rule failures.
// The shell and TUI recover from all of them and return to the menu.
var (
	// ErrInvalidBloodGroup indicates a group outside the eight canonical values.
	ErrInvalidBloodGroup = errors.New("invalid blood group")

	// ErrInvalidAge indicates a donor age outside the accepted range.
	ErrInvalidAge = errors.New("invalid donor age")

	// ErrInvalidMenuChoice indicates a menu selection outside 1-7.
	ErrInvalidMenuChoice = errors.New("invalid menu choice")

	// ErrInvalidInput indicates malformed input, such as a non-integer age.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a service was built without its store.
	ErrNotImplemented = errors.New("not implemented")
)
