package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/memoryvault/internal/services"
	"github.com/dmitrijs2005/memoryvault/internal/storage"
	"github.com/dmitrijs2005/memoryvault/internal/watch"
)

// Watch follows external changes to the data directory and re-renders
// the gallery after each burst of writes. Blocks until Ctrl-C. Only the
// file backend exposes a directory to watch.
func (a *App) Watch(ctx context.Context) error {
	fs, ok := a.store.(*storage.FileStorage)
	if !ok {
		printlnFn("watch requires the file backend")
		return nil
	}

	watchCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printlnFn("Watching", fs.Dir(), "(Ctrl-C to stop)")

	w := watch.New(fs.Dir(), a.config.WatchDebounce, a.log, func(ctx context.Context) {
		printlnFn("--- vault changed ---")
		_ = a.renderGallery(ctx, "", services.FilterAll)
	})

	if err := w.Run(watchCtx); err != nil {
		a.printError(ctx, err)
		return err
	}
	return nil
}
