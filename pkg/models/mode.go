package models

import (
	"errors"
	"fmt"
)

// ErrUnknownInterpretMode is returned when an interpretation style is not
// one of the supported values. Unknown styles are rejected, never silently
// mapped to a default.
var ErrUnknownInterpretMode = errors.New("unknown interpretation mode")

// InterpretMode selects the output style of the log interpreter.
type InterpretMode string

const (
	InterpretSummary InterpretMode = "summary"
	InterpretEmail   InterpretMode = "email"
	InterpretManager InterpretMode = "manager"
)

// ParseInterpretMode validates a raw mode string into an InterpretMode.
func ParseInterpretMode(raw string) (InterpretMode, error) {
	switch InterpretMode(raw) {
	case InterpretSummary, InterpretEmail, InterpretManager:
		return InterpretMode(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of summary, email, manager)", ErrUnknownInterpretMode, raw)
	}
}
