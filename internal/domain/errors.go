package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPortal   = errors.New("unknown portal")
	ErrProfileNotFound = errors.New("profile not found")
)

// SessionUnavailableError reports that no page text could be obtained for a portal.
type SessionUnavailableError struct {
	Portal Portal
	Err    error
}

func (e *SessionUnavailableError) Error() string {
	return fmt.Sprintf("%s: session unavailable: %v", e.Portal.Label(), e.Err)
}

func (e *SessionUnavailableError) Unwrap() error {
	return e.Err
}

type ExtractionError struct {
	Portal Portal
	Hint   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: credits not found on page; %s", e.Portal.Label(), e.Hint)
}

type UsageError struct {
	Arg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("unknown argument %q: run without arguments, or with one of %s", e.Arg, portalChoices())
}

func portalChoices() string {
	out := ""
	for i, p := range knownPortals {
		if i > 0 {
			out += " / "
		}
		out += "'" + string(p) + "'"
	}
	return out
}
