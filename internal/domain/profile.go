package domain

import "time"

// Profile is a browser user-data directory that holds an authenticated session.
type Profile struct {
	Portal         Portal
	Dir            string
	BootstrappedAt time.Time
	LastUsedAt     time.Time
}
