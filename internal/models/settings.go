package models

import (
	"fmt"

	"github.com/dmitrijs2005/memoryvault/internal/common"
)

// UITheme selects the presentation color scheme.
type UITheme string

const (
	UIThemeLight UITheme = "light"
	UIThemeDark  UITheme = "dark"
)

// Privacy controls whether the gallery is shareable.
type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyShared  Privacy = "shared"
)

// Settings is the process-wide singleton of user preferences. It is
// written wholesale on every save; there is no partial-field merge.
type Settings struct {
	Notifications bool    `json:"notifications"`
	SoundEffects  bool    `json:"soundEffects"`
	Theme         UITheme `json:"theme"`
	Privacy       Privacy `json:"privacy"`
}

// Validate checks the enum fields before a save.
func (s Settings) Validate() error {
	if s.Theme != UIThemeLight && s.Theme != UIThemeDark {
		return fmt.Errorf("%w: unknown theme %q", common.ErrorValidation, s.Theme)
	}
	if s.Privacy != PrivacyPrivate && s.Privacy != PrivacyShared {
		return fmt.Errorf("%w: unknown privacy %q", common.ErrorValidation, s.Privacy)
	}
	return nil
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		SoundEffects:  true,
		Theme:         UIThemeLight,
		Privacy:       PrivacyPrivate,
	}
}
