// Package models defines the capsule and settings records persisted by
// Memory Vault, plus the pure status derivation over them.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
)

// MediaKind classifies an attachment.
type MediaKind string

const (
	MediaKindPhoto MediaKind = "photo"
	MediaKindVideo MediaKind = "video"
)

// MediaItem is a single attachment. Items are immutable once attached to
// a capsule.
type MediaItem struct {
	ID        string    `json:"id"`
	Kind      MediaKind `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
}

// UnlockLocation is a decorative location trigger. It is stored and
// displayed but never evaluated against a real position; location-locked
// capsules are unlocked manually.
type UnlockLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Theme is a cosmetic tag with no behavioral effect.
type Theme string

const (
	ThemeDefault     Theme = "default"
	ThemeBirthday    Theme = "birthday"
	ThemeAnniversary Theme = "anniversary"
	ThemeGraduation  Theme = "graduation"
	ThemeTravel      Theme = "travel"
)

// TriggerType is the condition controlling unlock eligibility.
type TriggerType string

const (
	TriggerDate     TriggerType = "date"
	TriggerLocation TriggerType = "location"
	TriggerManual   TriggerType = "manual"
)

// Capsule is a stored memory record. Timestamps serialize as RFC 3339
// strings. Photos and Location duplicate a subset of Media/UnlockLocation
// for records written by older releases; they round-trip unchanged and
// are not authoritative.
type Capsule struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Message        string          `json:"message"`
	Media          []MediaItem     `json:"media"`
	Photos         []string        `json:"photos,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UnlockDate     *time.Time      `json:"unlockDate,omitempty"`
	UnlockLocation *UnlockLocation `json:"unlockLocation,omitempty"`
	Location       string          `json:"location,omitempty"`
	IsUnlocked     bool            `json:"isUnlocked"`
	UnlockedAt     *time.Time      `json:"unlockedAt,omitempty"`
	Theme          Theme           `json:"theme"`
}

// Trigger reports the capsule's trigger type: date when an unlock date is
// set, location when only a location is set, manual otherwise.
func (c *Capsule) Trigger() TriggerType {
	switch {
	case c.UnlockDate != nil:
		return TriggerDate
	case c.UnlockLocation != nil:
		return TriggerLocation
	default:
		return TriggerManual
	}
}

// Validate checks the invariants enforced at the creation boundary.
// The unlock date is only checked here, never re-validated later.
func (c *Capsule) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	for _, m := range c.Media {
		if m.Size < 0 {
			return fmt.Errorf("%w: media %s has negative size", common.ErrorValidation, m.ID)
		}
		if m.Kind != MediaKindPhoto && m.Kind != MediaKindVideo {
			return fmt.Errorf("%w: media %s has unknown kind %q", common.ErrorValidation, m.ID, m.Kind)
		}
	}
	if c.UnlockDate != nil && c.UnlockDate.Before(c.CreatedAt) {
		return fmt.Errorf("%w: unlock date precedes creation time", common.ErrorValidation)
	}
	return nil
}

// Normalize backfills the legacy fields from their authoritative
// counterparts so records stay readable by older releases. Called before
// every persist.
func (c *Capsule) Normalize() {
	if c.Media == nil {
		c.Media = []MediaItem{}
	}

	var photos []string
	for _, m := range c.Media {
		if m.Kind == MediaKindPhoto {
			photos = append(photos, m.URL)
		}
	}
	if photos != nil {
		c.Photos = photos
	}

	if c.Location == "" && c.UnlockLocation != nil {
		c.Location = c.UnlockLocation.Name
	}
}

// Clone returns a deep copy, so callers can hand capsules across
// layers without sharing slices or pointers.
func (c Capsule) Clone() Capsule {
	out := c
	if c.Media != nil {
		out.Media = append([]MediaItem(nil), c.Media...)
	}
	if c.Photos != nil {
		out.Photos = append([]string(nil), c.Photos...)
	}
	if c.UnlockDate != nil {
		d := *c.UnlockDate
		out.UnlockDate = &d
	}
	if c.UnlockedAt != nil {
		d := *c.UnlockedAt
		out.UnlockedAt = &d
	}
	if c.UnlockLocation != nil {
		l := *c.UnlockLocation
		out.UnlockLocation = &l
	}
	return out
}
