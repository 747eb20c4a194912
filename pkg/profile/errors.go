package profile

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDriver is returned when the requested authentication mode
// can never work with the chosen driver backend. Check with errors.Is.
var ErrUnsupportedDriver = errors.New("authentication mode not supported by driver")

// MissingFieldError reports a required field that was not supplied for the
// chosen authentication mode. Retrieve with errors.As.
type MissingFieldError struct {
	Mode  AuthMode
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s authentication requires %s", e.Mode, e.Field)
}

// missingField is a shorthand used by the resolve paths.
func missingField(mode AuthMode, field string) error {
	return &MissingFieldError{Mode: mode, Field: field}
}

// WarningCode identifies a non-fatal advisory emitted during resolution.
type WarningCode int

const (
	// WarningCredentialsIgnored means credentials were supplied but the
	// selected strategy cannot use them; resolution proceeded without them.
	WarningCredentialsIgnored WarningCode = iota
)

// Warning is a non-fatal advisory. Warnings accompany a successful profile
// and never abort resolution.
type Warning struct {
	Code    WarningCode
	Message string
}
