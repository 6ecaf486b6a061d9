package file

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	watcher := NewWatcher(store)
	watcher.SetDebounce(10 * time.Millisecond)
	changed := make(chan struct{}, 4)
	watcher.OnChange(func() { changed <- struct{}{} })
	require.NoError(t, watcher.Start())
	defer watcher.Close()

	require.NoError(t, os.WriteFile(store.Path(), []byte("[search]\nindex_name = \"signoz\"\n"), 0600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Equal(t, "signoz", store.GetString("search.index_name"))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	watcher := NewWatcher(store)
	watcher.SetDebounce(10 * time.Millisecond)
	changed := make(chan struct{}, 1)
	watcher.OnChange(func() { changed <- struct{}{} })
	require.NoError(t, watcher.Start())
	defer watcher.Close()

	require.NoError(t, os.WriteFile(dir+"/other.txt", []byte("x"), 0600))

	select {
	case <-changed:
		t.Fatal("unexpected change notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Close(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	watcher := NewWatcher(store)
	require.NoError(t, watcher.Start())
	require.NoError(t, watcher.Start(), "second start is a no-op")

	require.NoError(t, watcher.Close())
	require.NoError(t, watcher.Close())
	assert.ErrorIs(t, watcher.Start(), ErrWatcherClosed)
}
