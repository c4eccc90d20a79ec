package domain

import (
	"errors"
	"strings"
	"time"
)

type CreditReading struct {
	Portal    Portal
	Credits   int
	Timestamp time.Time
}

func NewCreditReading(portal Portal, credits int, at time.Time) CreditReading {
	return CreditReading{Portal: portal, Credits: credits, Timestamp: at.UTC()}
}

func (r CreditReading) Validate() error {
	if strings.TrimSpace(string(r.Portal)) == "" {
		return errors.New("portal is required")
	}
	if r.Credits < 0 {
		return errors.New("credits must be non-negative")
	}
	if r.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}

	return nil
}
