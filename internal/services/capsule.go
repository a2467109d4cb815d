package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/filex"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/repositories/capsules"
)

// CreateParams is the caller-supplied part of a new capsule. The id,
// creation timestamp and unlock state are assigned by the repository.
type CreateParams struct {
	Title          string
	Message        string
	Theme          models.Theme
	UnlockDate     *time.Time
	UnlockLocation *models.UnlockLocation
}

type CapsuleService interface {
	List(ctx context.Context) ([]models.Capsule, error)
	Get(ctx context.Context, id string) (*models.Capsule, error)
	Create(ctx context.Context, p CreateParams) (*models.Capsule, error)

	// Unlock refuses with common.ErrorValidation while a date trigger
	// has not elapsed. Manual and location capsules unlock on request.
	Unlock(ctx context.Context, id string, now time.Time) (*models.Capsule, error)

	// AttachMedia copies the file at path into the media directory and
	// appends it to the capsule's media list.
	AttachMedia(ctx context.Context, id string, path string) (*models.Capsule, error)

	Delete(ctx context.Context, id string) error
}

type capsuleService struct {
	repo     capsules.Repository
	mediaDir string
	log      logging.Logger
}

func NewCapsuleService(repo capsules.Repository, mediaDir string, log logging.Logger) CapsuleService {
	return &capsuleService{repo: repo, mediaDir: mediaDir, log: log}
}

func (s *capsuleService) List(ctx context.Context) ([]models.Capsule, error) {
	return s.repo.ListAll(ctx)
}

func (s *capsuleService) Get(ctx context.Context, id string) (*models.Capsule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *capsuleService) Create(ctx context.Context, p CreateParams) (*models.Capsule, error) {
	theme := p.Theme
	if theme == "" {
		theme = models.ThemeDefault
	}

	c := models.Capsule{
		Title:          strings.TrimSpace(p.Title),
		Message:        p.Message,
		Theme:          theme,
		UnlockDate:     p.UnlockDate,
		UnlockLocation: p.UnlockLocation,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "capsule created", "id", created.ID, "trigger", created.Trigger())
	return created, nil
}

func (s *capsuleService) Unlock(ctx context.Context, id string, now time.Time) (*models.Capsule, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.IsUnlocked && c.UnlockDate != nil && now.Before(*c.UnlockDate) {
		return nil, fmt.Errorf("%w: capsule %s is locked until %s",
			common.ErrorValidation, id, c.UnlockDate.Format(time.RFC3339))
	}

	unlocked, err := s.repo.Unlock(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "capsule unlocked", "id", id, "title", unlocked.Title)
	return unlocked, nil
}

func (s *capsuleService) AttachMedia(ctx context.Context, id string, path string) (*models.Capsule, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kind, err := mediaKindFromPath(path)
	if err != nil {
		return nil, err
	}

	dst, size, err := filex.CopyFile(path, filepath.Join(s.mediaDir, id))
	if err != nil {
		return nil, fmt.Errorf("attach media: %w", err)
	}

	c.Media = append(c.Media, models.MediaItem{
		ID:   uuid.NewString(),
		Kind: kind,
		URL:  dst,
		Name: filepath.Base(dst),
		Size: size,
	})

	saved, err := s.repo.Save(ctx, *c)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "media attached", "id", id, "file", filepath.Base(dst), "bytes", size)
	return saved, nil
}

func (s *capsuleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "capsule deleted", "id", id)
	return nil
}

func mediaKindFromPath(path string) (models.MediaKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic":
		return models.MediaKindPhoto, nil
	case ".mp4", ".mov", ".webm", ".avi", ".mkv":
		return models.MediaKindVideo, nil
	default:
		return "", fmt.Errorf("%w: unsupported media file %s", common.ErrorValidation, filepath.Base(path))
	}
}
