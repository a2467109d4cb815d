package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/vault"
)

type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)

	// Set updates one named setting and persists the whole singleton.
	Set(ctx context.Context, name, value string) (models.Settings, error)

	Update(ctx context.Context, s models.Settings) error
}

type settingsService struct {
	vault *vault.Vault
	log   logging.Logger
}

func NewSettingsService(v *vault.Vault, log logging.Logger) SettingsService {
	return &settingsService{vault: v, log: log}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.vault.ReadSettings(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.vault.WriteSettings(ctx, settings); err != nil {
		return err
	}
	s.log.Info(ctx, "settings updated")
	return nil
}

func (s *settingsService) Set(ctx context.Context, name, value string) (models.Settings, error) {
	settings, err := s.vault.ReadSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	switch name {
	case "notifications":
		b, err := parseBool(value)
		if err != nil {
			return models.Settings{}, err
		}
		settings.Notifications = b
	case "sound":
		b, err := parseBool(value)
		if err != nil {
			return models.Settings{}, err
		}
		settings.SoundEffects = b
	case "theme":
		settings.Theme = models.UITheme(value)
	case "privacy":
		settings.Privacy = models.Privacy(value)
	default:
		return models.Settings{}, fmt.Errorf("%w: unknown setting %q", common.ErrorValidation, name)
	}

	if err := s.Update(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", common.ErrorValidation, value)
	}
}
