package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/notify"
	"github.com/dmitrijs2005/memoryvault/internal/services"
)

// Show renders a single capsule in full.
func (a *App) Show(ctx context.Context, id string) error {
	c, err := a.capsuleService.Get(ctx, id)
	if err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn(renderCapsule(c, models.DeriveStatus(c, nowFn())))
	return nil
}

// Create interactively collects a new capsule and persists it.
func (a *App) Create(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	message, err := GetMultiline(a.reader, "Message to your future self", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	theme, err := GetSimpleText(a.reader, "Theme (default, birthday, anniversary, graduation, travel)", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	params := services.CreateParams{
		Title:   title,
		Message: message,
		Theme:   models.Theme(theme),
	}

	trigger, err := GetSimpleText(a.reader, "Trigger (date, location, manual)", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	switch trigger {
	case "", string(models.TriggerManual):
		// nothing to collect
	case string(models.TriggerDate):
		unlockDate, err := a.promptUnlockDate(ctx)
		if err != nil {
			return err
		}
		params.UnlockDate = unlockDate
	case string(models.TriggerLocation):
		loc, err := a.promptLocation(ctx)
		if err != nil {
			return err
		}
		params.UnlockLocation = loc
	default:
		err := fmt.Errorf("%w: unknown trigger %q", common.ErrorValidation, trigger)
		a.printError(ctx, err)
		return err
	}

	created, err := a.capsuleService.Create(ctx, params)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	printlnFn("Created capsule", created.ID)
	return nil
}

// promptUnlockDate reads and validates the unlock date. The input
// parses to midnight UTC, so the comparison runs against the start of
// the current day; today's date is accepted and unlocks immediately.
func (a *App) promptUnlockDate(ctx context.Context) (*time.Time, error) {
	text, err := GetSimpleText(a.reader, "Unlock date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return nil, err
	}

	unlockDate, err := time.Parse("2006-01-02", text)
	if err != nil {
		err = fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", common.ErrorValidation, text)
		a.printError(ctx, err)
		return nil, err
	}

	now := nowFn().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if unlockDate.Before(today) {
		err = fmt.Errorf("%w: unlock date must not be in the past", common.ErrorValidation)
		a.printError(ctx, err)
		return nil, err
	}
	return &unlockDate, nil
}

func (a *App) promptLocation(ctx context.Context) (*models.UnlockLocation, error) {
	name, err := GetSimpleText(a.reader, "Place name", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return nil, err
	}

	coords, err := GetSimpleText(a.reader, "Coordinates (lat,long)", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return nil, err
	}

	parts := strings.SplitN(coords, ",", 2)
	if len(parts) != 2 {
		err = fmt.Errorf("%w: expected lat,long", common.ErrorValidation)
		a.printError(ctx, err)
		return nil, err
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	long, longErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || longErr != nil {
		err = fmt.Errorf("%w: invalid coordinates %q", common.ErrorValidation, coords)
		a.printError(ctx, err)
		return nil, err
	}

	return &models.UnlockLocation{Latitude: lat, Longitude: long, Name: name}, nil
}

// Attach copies a media file into the vault and appends it to a capsule.
func (a *App) Attach(ctx context.Context, args []string) error {
	saved, err := a.capsuleService.AttachMedia(ctx, args[0], args[1])
	if err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Attached %s (%d media total)", args[1], len(saved.Media)))
	return nil
}

// Unlock opens a capsule and reveals its message. Honors the settings:
// an OS notification and a terminal bell unless switched off.
func (a *App) Unlock(ctx context.Context, id string) error {
	unlocked, err := a.capsuleService.Unlock(ctx, id, nowFn())
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	printlnFn(renderCapsule(unlocked, models.StatusUnlocked))

	settings, err := a.settingsService.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "error reading settings after unlock", "error", err)
		return nil
	}
	if settings.Notifications {
		notify.Send("Memory Vault", fmt.Sprintf("Capsule %q unlocked", unlocked.Title))
	}
	if settings.SoundEffects {
		fmt.Print("\a")
	}
	return nil
}

// Delete removes a capsule from the gallery.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.capsuleService.Delete(ctx, id); err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn("Deleted", id)
	return nil
}
