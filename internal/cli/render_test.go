package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/memoryvault/internal/models"
)

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "[locked  ]", statusBadge(models.StatusLocked))
	assert.Equal(t, "[ready   ]", statusBadge(models.StatusReady))
	assert.Equal(t, "[unlocked]", statusBadge(models.StatusUnlocked))
}

func TestRenderCapsuleRow(t *testing.T) {
	unlockDate := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	c := &models.Capsule{
		ID:         "c1",
		Title:      "Sealed",
		UnlockDate: &unlockDate,
		Media:      []models.MediaItem{{ID: "m1", Kind: models.MediaKindPhoto}},
	}

	row := renderCapsuleRow(c, models.StatusLocked)
	assert.Contains(t, row, "[locked  ]")
	assert.Contains(t, row, "Sealed")
	assert.Contains(t, row, "unlocks 2027-01-02")
	assert.Contains(t, row, "(1 media)")
}

func TestRenderCapsule_MessageVisibility(t *testing.T) {
	c := &models.Capsule{
		ID:      "c1",
		Title:   "Sealed",
		Message: "the secret",
		Theme:   models.ThemeDefault,
	}

	locked := renderCapsule(c, models.StatusLocked)
	assert.NotContains(t, locked, "the secret")
	assert.Contains(t, locked, "hidden until unlocked")

	unlocked := renderCapsule(c, models.StatusUnlocked)
	assert.Contains(t, unlocked, "the secret")
}

func TestRenderCapsule_LocationTrigger(t *testing.T) {
	c := &models.Capsule{
		ID:             "c1",
		Title:          "Nearby",
		UnlockLocation: &models.UnlockLocation{Latitude: 40.3428, Longitude: -105.6836, Name: "Rocky Mountain National Park"},
	}

	out := renderCapsule(c, models.StatusLocked)
	assert.Contains(t, out, "trigger: location")
	assert.Contains(t, out, "Rocky Mountain National Park")
	assert.Contains(t, out, "40.3428")
}
