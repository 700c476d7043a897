package wizard

import "errors"

// Validation and flow errors for the interactive wizard.
var (
	// ErrDeclined is returned when the user answers no at the
	// confirmation gate.
	ErrDeclined = errors.New("install declined by user")
)
