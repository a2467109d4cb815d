package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/memoryvault/internal/common"
)

func TestCapsule_Validate_TitleRequired(t *testing.T) {
	c := &Capsule{Title: "   ", CreatedAt: time.Now()}
	err := c.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestCapsule_Validate_UnlockDateBeforeCreation(t *testing.T) {
	created := time.Now()
	c := &Capsule{
		Title:      "Test",
		CreatedAt:  created,
		UnlockDate: datePtr(created.Add(-time.Hour)),
	}
	require.ErrorIs(t, c.Validate(), common.ErrorValidation)
}

func TestCapsule_Validate_MediaKindAndSize(t *testing.T) {
	c := &Capsule{
		Title:     "Test",
		CreatedAt: time.Now(),
		Media:     []MediaItem{{ID: "m1", Kind: "gif", URL: "u", Name: "n", Size: 1}},
	}
	require.ErrorIs(t, c.Validate(), common.ErrorValidation)

	c.Media[0].Kind = MediaKindPhoto
	c.Media[0].Size = -1
	require.ErrorIs(t, c.Validate(), common.ErrorValidation)

	c.Media[0].Size = 0
	require.NoError(t, c.Validate())
}

func TestCapsule_Trigger(t *testing.T) {
	now := time.Now()

	c := &Capsule{}
	assert.Equal(t, TriggerManual, c.Trigger())

	c.UnlockLocation = &UnlockLocation{Name: "Home"}
	assert.Equal(t, TriggerLocation, c.Trigger())

	// A date wins when both are present.
	c.UnlockDate = datePtr(now)
	assert.Equal(t, TriggerDate, c.Trigger())
}

func TestCapsule_Normalize_BackfillsLegacyFields(t *testing.T) {
	c := &Capsule{
		Title: "Trip",
		Media: []MediaItem{
			{ID: "m1", Kind: MediaKindPhoto, URL: "https://example.com/a.jpg", Name: "a.jpg", Size: 1},
			{ID: "m2", Kind: MediaKindVideo, URL: "https://example.com/b.mp4", Name: "b.mp4", Size: 2},
		},
		UnlockLocation: &UnlockLocation{Latitude: 1, Longitude: 2, Name: "Lake Cabin"},
	}
	c.Normalize()

	assert.Equal(t, []string{"https://example.com/a.jpg"}, c.Photos, "only photo URLs are mirrored")
	assert.Equal(t, "Lake Cabin", c.Location)
}

func TestCapsule_Normalize_KeepsExistingLegacyLocation(t *testing.T) {
	c := &Capsule{
		Location:       "Old Name",
		UnlockLocation: &UnlockLocation{Name: "New Name"},
	}
	c.Normalize()
	assert.Equal(t, "Old Name", c.Location)
}

func TestCapsule_Normalize_EmptyMediaMarshalsAsArray(t *testing.T) {
	c := &Capsule{ID: "1", Title: "t", CreatedAt: time.Now().UTC()}
	c.Normalize()

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"media":[]`)
}

func TestCapsule_JSONRoundTrip_PreservesLegacyFields(t *testing.T) {
	raw := `{
		"id": "1",
		"title": "Summer Vacation 2024",
		"message": "hello",
		"media": [{"id":"m1","type":"photo","url":"https://x/a.jpg","name":"a.jpg","size":2048000}],
		"photos": ["https://x/a.jpg"],
		"createdAt": "2024-07-15T10:30:00Z",
		"unlockDate": "2025-07-15T10:30:00Z",
		"location": "Rocky Mountain National Park",
		"unlockLocation": {"latitude":40.3428,"longitude":-105.6836,"name":"Rocky Mountain National Park"},
		"isUnlocked": false,
		"theme": "travel"
	}`

	var c Capsule
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	require.Equal(t, "Summer Vacation 2024", c.Title)
	require.NotNil(t, c.UnlockDate)
	require.Equal(t, time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC), c.UnlockDate.UTC())
	require.Equal(t, []string{"https://x/a.jpg"}, c.Photos)
	require.Equal(t, "Rocky Mountain National Park", c.Location)
	require.Nil(t, c.UnlockedAt, "absent optional timestamp stays absent")

	b, err := json.Marshal(&c)
	require.NoError(t, err)

	var back Capsule
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, c, back)
}

func TestCapsule_Clone_IsDeep(t *testing.T) {
	now := time.Now()
	c := Capsule{
		ID:         "1",
		Media:      []MediaItem{{ID: "m1", Kind: MediaKindPhoto}},
		UnlockDate: datePtr(now),
	}
	cp := c.Clone()

	cp.Media[0].ID = "changed"
	*cp.UnlockDate = now.Add(time.Hour)

	require.Equal(t, "m1", c.Media[0].ID)
	require.True(t, c.UnlockDate.Equal(now))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Notifications)
	assert.True(t, s.SoundEffects)
	assert.Equal(t, UIThemeLight, s.Theme)
	assert.Equal(t, PrivacyPrivate, s.Privacy)
}
