package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestDeriveStatus_UnlockedWins(t *testing.T) {
	now := time.Now()
	c := &Capsule{
		IsUnlocked: true,
		UnlockDate: datePtr(now.Add(24 * time.Hour)), // even with a future date
	}
	require.Equal(t, StatusUnlocked, DeriveStatus(c, now))
}

func TestDeriveStatus_ReadyWhenDatePassed(t *testing.T) {
	now := time.Now()
	c := &Capsule{UnlockDate: datePtr(now.Add(-time.Hour))}
	require.Equal(t, StatusReady, DeriveStatus(c, now))
}

func TestDeriveStatus_BoundaryIsInclusive(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := &Capsule{UnlockDate: datePtr(now)}
	require.Equal(t, StatusReady, DeriveStatus(c, now), "unlockDate == now derives ready, not locked")
}

func TestDeriveStatus_LockedWhenDateInFuture(t *testing.T) {
	now := time.Now()
	c := &Capsule{UnlockDate: datePtr(now.Add(time.Minute))}
	require.Equal(t, StatusLocked, DeriveStatus(c, now))
}

func TestDeriveStatus_LockedWithoutDate(t *testing.T) {
	c := &Capsule{}
	require.Equal(t, StatusLocked, DeriveStatus(c, time.Now()))
}

func TestDeriveStatus_LocationTriggerStaysLocked(t *testing.T) {
	// Location unlock is decorative: the coordinates are never evaluated.
	c := &Capsule{UnlockLocation: &UnlockLocation{Latitude: 40.3, Longitude: -105.6, Name: "Trailhead"}}
	require.Equal(t, StatusLocked, DeriveStatus(c, time.Now()))
}

func TestDeriveStatus_Monotonic(t *testing.T) {
	now := time.Now()
	c := &Capsule{UnlockDate: datePtr(now.Add(-time.Hour))}
	require.Equal(t, StatusReady, DeriveStatus(c, now))

	c.IsUnlocked = true
	c.UnlockedAt = datePtr(now)

	// Once unlocked, later reads never regress to locked or ready.
	for _, at := range []time.Time{now, now.Add(time.Hour), now.Add(365 * 24 * time.Hour)} {
		require.Equal(t, StatusUnlocked, DeriveStatus(c, at))
	}
}
