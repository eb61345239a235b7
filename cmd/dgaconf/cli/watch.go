package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/viennacmp/dga/slogger"
)

// WatchOptions holds configuration for the watch command.
type WatchOptions struct {
	Patterns []string
	Debounce time.Duration
}

// ManifestWatcher revalidates manifests whenever they change on disk.
type ManifestWatcher struct {
	options   WatchOptions
	watcher   *fsnotify.Watcher
	logger    slogger.Logger
	debouncer map[string]time.Time
}

// NewManifestWatcher creates a watcher for the given options.
func NewManifestWatcher(options WatchOptions, logger slogger.Logger) (*ManifestWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &ManifestWatcher{
		options:   options,
		watcher:   watcher,
		logger:    logger,
		debouncer: make(map[string]time.Time),
	}, nil
}

// Start begins watching for manifest changes until the context is canceled.
func (mw *ManifestWatcher) Start(ctx context.Context) error {
	defer mw.watcher.Close()

	if err := mw.addWatchPaths(); err != nil {
		return err
	}

	fmt.Println(boldStyle.Sprint("Watching manifests"))
	fmt.Printf("Patterns: %s\n", strings.Join(mw.options.Patterns, ", "))
	fmt.Println("Press Ctrl+C to stop...")
	fmt.Println()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nWatcher stopped")
			return nil
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return nil
			}
			mw.handleFileEvent(event)
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return nil
			}
			mw.logger.Error("file watcher error", "error", err)
		}
	}
}

// addWatchPaths watches the directories containing the files matched by the
// patterns. fsnotify watches directories, not globs, so events are filtered
// against the patterns again in handleFileEvent.
func (mw *ManifestWatcher) addWatchPaths() error {
	watchedDirs := make(map[string]bool)
	for _, pattern := range mw.options.Patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			dir := filepath.Dir(match)
			if watchedDirs[dir] {
				continue
			}
			if err := mw.watcher.Add(dir); err != nil {
				mw.logger.Warn("failed to watch directory", "dir", dir, "error", err)
				continue
			}
			mw.logger.Debug("watching directory", "dir", dir)
			watchedDirs[dir] = true
		}
	}
	if len(watchedDirs) == 0 {
		return fmt.Errorf("no files found to watch for patterns: %s", strings.Join(mw.options.Patterns, ", "))
	}
	return nil
}

func (mw *ManifestWatcher) handleFileEvent(event fsnotify.Event) {
	if !mw.matchesPatterns(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	// Debounce only the events that trigger revalidation; a Chmod or Rename
	// must not suppress the Write that follows it.
	now := time.Now()
	if lastTime, exists := mw.debouncer[event.Name]; exists && now.Sub(lastTime) < mw.options.Debounce {
		return
	}
	mw.debouncer[event.Name] = now
	if err := validateManifest(event.Name); err != nil {
		fmt.Printf("%s %s\n", errorStyle.Sprint("✗"), event.Name)
		fmt.Printf("  %v\n", err)
		return
	}
	fmt.Printf("%s %s\n", successStyle.Sprint("✓"), event.Name)
}

func (mw *ManifestWatcher) matchesPatterns(path string) bool {
	for _, pattern := range mw.options.Patterns {
		if matched, err := doublestar.PathMatch(filepath.ToSlash(pattern), filepath.ToSlash(path)); err == nil && matched {
			return true
		}
		// A bare filename pattern should match the same file reported with
		// a directory prefix.
		if filepath.Base(pattern) == filepath.Base(path) && !strings.ContainsAny(pattern, "*?[{") {
			return true
		}
	}
	return false
}

var watchCmd = &cobra.Command{
	Use:   "watch [patterns...]",
	Short: "Revalidate manifests whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce, err := cmd.Flags().GetDuration("debounce")
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		mw, err := NewManifestWatcher(WatchOptions{
			Patterns: args,
			Debounce: debounce,
		}, newLogger())
		if err != nil {
			return err
		}
		return mw.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "Minimum time between revalidations of the same file")
}
