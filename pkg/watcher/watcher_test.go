package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/watcher"
)

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	watched := filepath.Join(dir, "structures.ini")
	other := filepath.Join(dir, "other.ini")
	require.NoError(t, os.WriteFile(watched, []byte("[General]\n"), 0o600))

	w, err := watcher.New(watcher.WithDebounce(50 * time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.Add(watched))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(changed []string) { batches <- changed })
	}()

	// give the watcher time to start reading events
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("[General]\n"), 0o600))
	for range 3 {
		require.NoError(t, os.WriteFile(watched, []byte("[Time]\ntStop = 60\n"), 0o600))
	}

	select {
	case changed := <-batches:
		require.Len(t, changed, 1)
		assert.Equal(t, "structures.ini", filepath.Base(changed[0]))
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_AddMissingDirectory(t *testing.T) {
	t.Parallel()

	w, err := watcher.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	err = w.Add(filepath.Join(t.TempDir(), "missing", "model.mdu"))
	require.Error(t, err)
}

func TestWatcher_Closed(t *testing.T) {
	t.Parallel()

	w, err := watcher.New()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = w.Run(context.Background(), func([]string) {})
	require.ErrorIs(t, err, watcher.ErrClosed)
}
