package domain

import (
	"fmt"
	"strings"
)

type Portal string

const (
	PortalTeamio Portal = "teamio"
	PortalInWork Portal = "inwork"
)

var knownPortals = []Portal{PortalTeamio, PortalInWork}

// KnownPortals returns every tracked portal in collection order.
func KnownPortals() []Portal {
	out := make([]Portal, len(knownPortals))
	copy(out, knownPortals)
	return out
}

// Label is the display name, also used as the portal value in the record log.
func (p Portal) Label() string {
	switch p {
	case PortalTeamio:
		return "Teamio"
	case PortalInWork:
		return "InWork"
	default:
		return string(p)
	}
}

func (p Portal) Known() bool {
	for _, known := range knownPortals {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePortal accepts either the identifier or the label, case-insensitively.
func ParsePortal(raw string) (Portal, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, known := range knownPortals {
		if normalized == string(known) || normalized == strings.ToLower(known.Label()) {
			return known, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPortal, raw)
}

// PortalTarget describes how a session reaches a portal's credits page.
type PortalTarget struct {
	Portal   Portal
	URL      string
	LoginURL string
	// Locator is an optional CSS selector for the element holding the number.
	Locator string
	// ReloadAfterConfirm re-navigates to URL once the operator is logged in.
	ReloadAfterConfirm bool
	// RequireProfile fails the session when no bootstrapped profile exists.
	RequireProfile bool
	Instructions   string
}
