package models

import "time"

// Status is the derived lifecycle state of a capsule. It is computed on
// every read and never stored.
type Status string

const (
	StatusLocked   Status = "locked"
	StatusReady    Status = "ready"
	StatusUnlocked Status = "unlocked"
)

// DeriveStatus classifies a capsule at the given instant.
//
// The unlock-date comparison is inclusive: a capsule whose unlock date
// equals now is ready. Location triggers are never evaluated here; a
// location-locked capsule stays locked until unlocked manually.
func DeriveStatus(c *Capsule, now time.Time) Status {
	if c.IsUnlocked {
		return StatusUnlocked
	}
	if c.UnlockDate != nil && !now.Before(*c.UnlockDate) {
		return StatusReady
	}
	return StatusLocked
}
