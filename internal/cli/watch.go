package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gohtmlint/internal/logging"
)

// watchDebounce batches filesystem event bursts into one relint. Editors
// often fire several events per save.
const watchDebounce = 200 * time.Millisecond

// runWatch lints once, then relints whenever an HTML file under workDir
// changes. The logger rides the context. It blocks until the context is
// cancelled or an interrupt arrives; a clean shutdown returns nil.
func runWatch(ctx context.Context, workDir string, relint func(context.Context)) error {
	logger := logging.FromContext(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, workDir); err != nil {
		return fmt.Errorf("watch %s: %w", workDir, err)
	}

	// First pass before any change arrives.
	relint(ctx)
	logger.Info("watching for changes", logging.FieldPath, workDir)

	// Event collection and relinting run separately so a slow pass never
	// backs up the watcher.
	trigger := make(chan string, 1)

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return collectEvents(egctx, watcher, logger, trigger)
	})
	eg.Go(func() error {
		return relintLoop(egctx, logger, trigger, relint)
	})
	return eg.Wait()
}

// collectEvents reads watcher events, debounces them, and sends one
// trigger per burst. New directories join the watch as they appear.
func collectEvents(ctx context.Context, watcher *fsnotify.Watcher, logger *log.Logger, trigger chan<- string) error {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("filesystem event", logging.FieldEvent, event.Op.String(), logging.FieldPath, event.Name)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDirRecursive(watcher, event.Name); err != nil {
						logger.Warn("cannot watch new directory", logging.FieldPath, event.Name, logging.FieldError, err)
					}
				}
			}

			if !isHTMLPath(event.Name) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			name := event.Name
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case trigger <- name:
				default:
					// A trigger is already pending; it covers this burst too.
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.FieldError, err)
		}
	}
}

// relintLoop runs one lint pass per trigger.
func relintLoop(ctx context.Context, logger *log.Logger, trigger <-chan string, relint func(context.Context)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case name := <-trigger:
			logger.Info("change detected", logging.FieldPath, name)
			relint(ctx)
		}
	}
}

// watchDirRecursive adds root and every directory below it to the
// watcher, skipping hidden directories and installed dependencies.
func watchDirRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "bower_components") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// isHTMLPath reports whether path names an HTML document.
func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
