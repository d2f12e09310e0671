package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFont(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
}

func TestFontsMissingDirectory(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing"), "/fonts", nil)

	fonts, err := c.Fonts()
	require.NoError(t, err)
	assert.NotNil(t, fonts)
	assert.Empty(t, fonts)
}

func TestFontsRescanWithoutWatcher(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "Lobster-Regular.ttf")

	c := New(dir, "/fonts", nil)

	fonts, err := c.Fonts()
	require.NoError(t, err)
	require.Len(t, fonts, 1)
	assert.Equal(t, "font-custom-lobster-regular", fonts[0].Value)
	assert.Equal(t, "/fonts/Lobster-Regular.ttf", fonts[0].File)

	writeFont(t, dir, "Abel.otf")

	fonts, err = c.Fonts()
	require.NoError(t, err)
	require.Len(t, fonts, 2)
	assert.Equal(t, "Abel", fonts[0].Label)
}

func TestWatchInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "Lobster-Regular.ttf")

	c := New(dir, "/fonts", nil)
	require.NoError(t, c.Watch(context.Background()))
	t.Cleanup(func() { c.Close() })

	fonts, err := c.Fonts()
	require.NoError(t, err)
	require.Len(t, fonts, 1)

	writeFont(t, dir, "Abel.otf")

	assert.Eventually(t, func() bool {
		fonts, err := c.Fonts()
		return err == nil && len(fonts) == 2
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing"), "/fonts", nil)

	assert.Error(t, c.Watch(context.Background()))
	assert.NoError(t, c.Close())
}

func TestInvalidate(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "a.ttf")

	c := New(dir, "/fonts", nil)
	require.NoError(t, c.Watch(context.Background()))
	defer c.Close()

	_, err := c.Fonts()
	require.NoError(t, err)

	c.Invalidate()

	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()
	assert.False(t, cached)
}

func watching(c *Catalog) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

func TestWatchDirectoryRemovedAndRecreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fonts")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeFont(t, dir, "Lobster-Regular.ttf")

	c := New(dir, "/fonts", nil)
	require.NoError(t, c.Watch(context.Background()))
	t.Cleanup(func() { c.Close() })

	fonts, err := c.Fonts()
	require.NoError(t, err)
	require.Len(t, fonts, 1)

	require.NoError(t, os.RemoveAll(dir))

	assert.Eventually(t, func() bool {
		fonts, err := c.Fonts()
		return err == nil && len(fonts) == 0
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Mkdir(dir, 0755))
	writeFont(t, dir, "Abel.otf")
	writeFont(t, dir, "Lobster-Regular.ttf")

	assert.Eventually(t, func() bool {
		fonts, err := c.Fonts()
		return err == nil && len(fonts) == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.True(t, watching(c))

	// the new directory is watched too
	writeFont(t, dir, "Roboto.woff2")
	assert.Eventually(t, func() bool {
		fonts, err := c.Fonts()
		return err == nil && len(fonts) == 3
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchDirectoryRenamed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "fonts")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeFont(t, dir, "Lobster-Regular.ttf")

	c := New(dir, "/fonts", nil)
	require.NoError(t, c.Watch(context.Background()))
	t.Cleanup(func() { c.Close() })

	fonts, err := c.Fonts()
	require.NoError(t, err)
	require.Len(t, fonts, 1)

	require.NoError(t, os.Rename(dir, filepath.Join(root, "fonts-old")))
	require.NoError(t, os.Mkdir(dir, 0755))
	writeFont(t, dir, "Abel.otf")
	writeFont(t, dir, "Roboto.woff2")

	assert.Eventually(t, func() bool {
		fonts, err := c.Fonts()
		return err == nil && len(fonts) == 2
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchStopsCachingWhenContextDone(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "a.ttf")

	ctx, cancel := context.WithCancel(context.Background())
	c := New(dir, "/fonts", nil)
	require.NoError(t, c.Watch(ctx))
	t.Cleanup(func() { c.Close() })

	_, err := c.Fonts()
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool { return !watching(c) }, 5*time.Second, 20*time.Millisecond)

	writeFont(t, dir, "b.ttf")

	fonts, err := c.Fonts()
	require.NoError(t, err)
	assert.Len(t, fonts, 2)
	assert.False(t, watching(c))
}
