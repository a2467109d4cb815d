package cli

import (
	"context"
	"fmt"
)

// Settings prints the current settings.
func (a *App) Settings(ctx context.Context) error {
	s, err := a.settingsService.Get(ctx)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("notifications: %s", onOff(s.Notifications)))
	printlnFn(fmt.Sprintf("sound:         %s", onOff(s.SoundEffects)))
	printlnFn(fmt.Sprintf("theme:         %s", s.Theme))
	printlnFn(fmt.Sprintf("privacy:       %s", s.Privacy))
	return nil
}

// Set changes one setting, e.g. "set notifications off".
func (a *App) Set(ctx context.Context, args []string) error {
	if _, err := a.settingsService.Set(ctx, args[0], args[1]); err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn("Updated", args[0])
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
