package cli

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/services"
)

// List renders the whole gallery, one row per capsule.
func (a *App) List(ctx context.Context) error {
	return a.renderGallery(ctx, "", services.FilterAll)
}

// Filter narrows the gallery. The first argument is taken as a status
// filter when it names one (locked, ready, unlocked, all); everything
// else joins into the search query.
func (a *App) Filter(ctx context.Context, args []string) error {
	status := services.FilterAll
	query := ""

	for i, arg := range args {
		if i == 0 {
			switch services.StatusFilter(arg) {
			case services.FilterLocked, services.FilterReady, services.FilterUnlocked, services.FilterAll:
				status = services.StatusFilter(arg)
				continue
			}
		}
		if query != "" {
			query += " "
		}
		query += arg
	}

	return a.renderGallery(ctx, query, status)
}

func (a *App) renderGallery(ctx context.Context, query string, status services.StatusFilter) error {
	capsules, err := a.capsuleService.List(ctx)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	now := nowFn()
	filtered := services.FilterCapsules(capsules, query, status, now)
	if len(filtered) == 0 {
		printlnFn("No capsules found")
		return nil
	}

	for i := range filtered {
		printlnFn(renderCapsuleRow(&filtered[i], models.DeriveStatus(&filtered[i], now)))
	}
	return nil
}

func (a *App) printError(ctx context.Context, err error) {
	a.log.Error(ctx, "command failed", "error", err)
	printlnFn("Error:", err.Error())
}
