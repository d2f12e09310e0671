package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Catalog serves the font metadata of one directory.
// Without a watcher every call to Fonts rescans the directory. Once Watch has
// started, the last scan is cached until the directory changes.
type Catalog struct {
	dir          string
	publicPrefix string
	logger       *zap.SugaredLogger

	mu      sync.RWMutex
	fonts   []fontcatalog.FontMetadata
	cached  bool
	watcher *fsnotify.Watcher
	doneCh  chan struct{}

	// bumped on every invalidation so a scan racing a change is not cached
	generation uint64

	// set when the watched directory itself was removed or renamed; Fonts
	// tries to watch it again with watchCtx once it exists
	lost     bool
	watchCtx context.Context
}

func New(dir, publicPrefix string, logger *zap.SugaredLogger) *Catalog {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Catalog{
		dir:          dir,
		publicPrefix: publicPrefix,
		logger:       logger,
	}
}

func (c *Catalog) Dir() string {
	return c.dir
}

// A missing directory or one without font files yields an empty list, not an error.
func (c *Catalog) Fonts() ([]fontcatalog.FontMetadata, error) {
	c.rewatch()

	c.mu.RLock()
	if c.cached {
		fonts := c.fonts
		c.mu.RUnlock()
		return fonts, nil
	}
	generation := c.generation
	c.mu.RUnlock()

	fonts, err := c.scan()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.watcher != nil && c.generation == generation {
		c.fonts = fonts
		c.cached = true
	}
	c.mu.Unlock()

	return fonts, nil
}

func (c *Catalog) scan() ([]fontcatalog.FontMetadata, error) {
	files, err := fontcatalog.ScanFontDir(c.dir)
	switch {
	case errors.Is(err, fontcatalog.ErrDirNotExist), errors.Is(err, fontcatalog.ErrNoFonts):
		c.logger.Debugw("No fonts available", "dir", c.dir, "reason", err)
		return []fontcatalog.FontMetadata{}, nil
	case err != nil:
		return nil, err
	}

	return fontcatalog.BuildMetadata(files, c.publicPrefix), nil
}

func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.invalidateLocked()
	c.mu.Unlock()
}

func (c *Catalog) invalidateLocked() {
	c.fonts = nil
	c.cached = false
	c.generation++
}

// Starts watching the directory and enables caching. Non-blocking; the watch
// ends when ctx is done or Close is called. If the directory is later removed
// or renamed, caching stops until the directory exists again.
func (c *Catalog) Watch(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", c.dir, err)
	}

	c.watcher = watcher
	c.doneCh = make(chan struct{})
	c.lost = false
	c.watchCtx = ctx
	c.invalidateLocked()

	go c.run(ctx, watcher, c.doneCh)

	c.logger.Infow("Watching font directory", "dir", c.dir)
	return nil
}

// Re-arms a watch lost to the directory being removed or renamed
func (c *Catalog) rewatch() {
	c.mu.RLock()
	lost, ctx := c.lost, c.watchCtx
	c.mu.RUnlock()

	if !lost || ctx == nil || ctx.Err() != nil {
		return
	}

	if err := c.Watch(ctx); err != nil {
		c.logger.Debugw("Font directory not watchable yet", "dir", c.dir, "error", err)
	}
}

func (c *Catalog) run(ctx context.Context, watcher *fsnotify.Watcher, doneCh chan struct{}) {
	defer close(doneCh)

	dir := filepath.Clean(c.dir)

	for {
		select {
		case <-ctx.Done():
			c.dropWatch(watcher, false)
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) == dir && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				c.logger.Warnw("Font directory went away, rescanning on every request until it is back", "dir", c.dir, "op", event.Op.String())
				c.dropWatch(watcher, true)
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Write) {
				c.logger.Debugw("Font directory changed", "path", event.Name, "op", event.Op.String())
				c.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.Warnw("Font directory watcher error", "dir", c.dir, "error", err)
		}
	}
}

// Stops caching for watcher unless Close or a newer Watch already replaced it
func (c *Catalog) dropWatch(watcher *fsnotify.Watcher, lost bool) {
	c.mu.Lock()
	owned := c.watcher == watcher
	if owned {
		c.watcher = nil
		c.doneCh = nil
		c.lost = lost
		c.invalidateLocked()
	}
	c.mu.Unlock()

	if owned {
		if err := watcher.Close(); err != nil {
			c.logger.Warnw("Closing font directory watcher", "dir", c.dir, "error", err)
		}
	}
}

// Stops the watcher and drops the cache. Safe to call without Watch.
func (c *Catalog) Close() error {
	c.mu.Lock()
	watcher, doneCh := c.watcher, c.doneCh
	c.watcher = nil
	c.doneCh = nil
	c.lost = false
	c.watchCtx = nil
	c.invalidateLocked()
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}

	err := watcher.Close()
	<-doneCh
	return err
}
