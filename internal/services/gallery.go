// Package services holds the view-model layer: gallery filtering and the
// capsule and settings services the presentation calls into.
package services

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/models"
)

// StatusFilter selects a gallery subset by derived status.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterLocked                = StatusFilter(models.StatusLocked)
	FilterReady                 = StatusFilter(models.StatusReady)
	FilterUnlocked              = StatusFilter(models.StatusUnlocked)
)

// Counts is the per-status breakdown shown in the gallery header.
type Counts struct {
	Locked   int
	Ready    int
	Unlocked int
}

func (c Counts) Total() int { return c.Locked + c.Ready + c.Unlocked }

// FilterCapsules narrows the collection to records matching both the
// search query and the status filter. The query is trimmed and matched
// case-insensitively as a substring of the title or the message; an
// empty query matches everything. Input order is preserved and the
// input slice is never modified.
func FilterCapsules(capsules []models.Capsule, query string, status StatusFilter, now time.Time) []models.Capsule {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Capsule, 0, len(capsules))
	for i := range capsules {
		c := &capsules[i]
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Message), query) {
			continue
		}
		if status != "" && status != FilterAll && StatusFilter(models.DeriveStatus(c, now)) != status {
			continue
		}
		result = append(result, c.Clone())
	}
	return result
}

// StatusCounts derives the status of every capsule at the given instant
// and tallies the results.
func StatusCounts(capsules []models.Capsule, now time.Time) Counts {
	var counts Counts
	for i := range capsules {
		switch models.DeriveStatus(&capsules[i], now) {
		case models.StatusLocked:
			counts.Locked++
		case models.StatusReady:
			counts.Ready++
		case models.StatusUnlocked:
			counts.Unlocked++
		}
	}
	return counts
}
