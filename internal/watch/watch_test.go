package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersOnChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir}, 50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0o600))

	select {
	case <-w.Triggers():
	case <-time.After(5 * time.Second):
		t.Fatal("expected a trigger after file write")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir}, 200*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte{byte(i)}, 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Triggers():
	case <-time.After(5 * time.Second):
		t.Fatal("expected a trigger after burst")
	}

	// The burst settles into a single trigger.
	select {
	case <-w.Triggers():
		t.Fatal("expected no second trigger")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherToleratesMissingRoot(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "nope")}, 50*time.Millisecond, nil)
	require.NoError(t, err)
	w.Stop()
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := New([]string{t.TempDir()}, 50*time.Millisecond, nil)
	require.NoError(t, err)
	w.Stop()
	assert.NotPanics(t, w.Stop)
}
