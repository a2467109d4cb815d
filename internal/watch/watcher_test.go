package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/memoryvault/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRun_DebouncesBurstIntoSingleCallback(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(dir, 50*time.Millisecond, testLogger(), func(ctx context.Context) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "capsules.json"), []byte(`[]`), 0o600))
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)

	// A quiet burst of writes collapses into one callback.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestRun_MissingDirFails(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent"), time.Millisecond, testLogger(), func(context.Context) {})
	err := w.Run(context.Background())
	require.Error(t, err)
}

func TestShouldIgnore(t *testing.T) {
	w := New("", time.Millisecond, testLogger(), nil)

	assert.True(t, w.shouldIgnore(fsnotify.Event{Name: "/d/x", Op: fsnotify.Chmod}))
	assert.True(t, w.shouldIgnore(fsnotify.Event{Name: "/d/.tmp-123", Op: fsnotify.Create}))
	assert.False(t, w.shouldIgnore(fsnotify.Event{Name: "/d/capsules.json", Op: fsnotify.Write}))
}
