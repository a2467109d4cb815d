package services

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/repositories/capsules"
	"github.com/dmitrijs2005/memoryvault/internal/storage"
	"github.com/dmitrijs2005/memoryvault/internal/vault"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupCapsuleService(t *testing.T) CapsuleService {
	t.Helper()
	v := vault.New(storage.NewMemoryStorage(), testLogger())
	require.NoError(t, v.WriteCapsules(context.Background(), []models.Capsule{}))
	return NewCapsuleService(capsules.NewVaultRepository(v), t.TempDir(), testLogger())
}

func TestCreate_AppliesDefaults(t *testing.T) {
	s := setupCapsuleService(t)

	created, err := s.Create(context.Background(), CreateParams{Title: "  Hello  ", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, models.ThemeDefault, created.Theme)
	assert.False(t, created.IsUnlocked)
}

func TestCreate_EmptyTitleRejected(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateParams{Title: "   "})
	require.ErrorIs(t, err, common.ErrorValidation)

	// The record invariants gate the create; nothing is persisted.
	capsules, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, capsules)
}

func TestUnlock_RefusedWhileDateNotElapsed(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	tomorrow := time.Now().Add(24 * time.Hour)
	created, err := s.Create(ctx, CreateParams{Title: "Test", UnlockDate: &tomorrow})
	require.NoError(t, err)

	_, err = s.Unlock(ctx, created.ID, time.Now())
	require.ErrorIs(t, err, common.ErrorValidation)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsUnlocked)
}

func TestUnlock_AllowedOnceDateElapsed(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	unlockDate := time.Now().Add(time.Hour)
	created, err := s.Create(ctx, CreateParams{Title: "Test", UnlockDate: &unlockDate})
	require.NoError(t, err)

	// Inclusive boundary: now == unlockDate is enough.
	unlocked, err := s.Unlock(ctx, created.ID, unlockDate)
	require.NoError(t, err)
	assert.True(t, unlocked.IsUnlocked)
	require.NotNil(t, unlocked.UnlockedAt)
}

func TestUnlock_ManualCapsuleUnlocksOnRequest(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Title: "Manual"})
	require.NoError(t, err)

	unlocked, err := s.Unlock(ctx, created.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, unlocked.IsUnlocked)
}

func TestUnlock_LocationCapsuleUnlocksOnRequest(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{
		Title:          "Nearby",
		UnlockLocation: &models.UnlockLocation{Latitude: 1, Longitude: 2, Name: "Pier"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TriggerLocation, created.Trigger())

	unlocked, err := s.Unlock(ctx, created.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, unlocked.IsUnlocked)
}

func TestUnlock_NotFound(t *testing.T) {
	s := setupCapsuleService(t)

	_, err := s.Unlock(context.Background(), "absent", time.Now())
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAttachMedia_CopiesFileAndAppends(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Title: "Test"})
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "beach.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpegdata"), 0o600))

	saved, err := s.AttachMedia(ctx, created.ID, src)
	require.NoError(t, err)
	require.Len(t, saved.Media, 1)

	m := saved.Media[0]
	assert.Equal(t, models.MediaKindPhoto, m.Kind)
	assert.Equal(t, "beach.jpg", m.Name)
	assert.Equal(t, int64(len("jpegdata")), m.Size)
	assert.NotEmpty(t, m.ID)
	assert.FileExists(t, m.URL)

	// Legacy photos field is backfilled on save.
	assert.Equal(t, []string{m.URL}, saved.Photos)
}

func TestAttachMedia_VideoKindFromExtension(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Title: "Test"})
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("mp4data"), 0o600))

	saved, err := s.AttachMedia(ctx, created.ID, src)
	require.NoError(t, err)
	require.Len(t, saved.Media, 1)
	assert.Equal(t, models.MediaKindVideo, saved.Media[0].Kind)
}

func TestAttachMedia_UnsupportedExtension(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Title: "Test"})
	require.NoError(t, err)

	_, err = s.AttachMedia(ctx, created.ID, "notes.txt")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestDelete_Passthrough(t *testing.T) {
	s := setupCapsuleService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Title: "Test"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
