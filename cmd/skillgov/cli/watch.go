package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/skillgov/check"
	"github.com/deepnoodle-ai/skillgov/slogger"
)

// watchOptions holds configuration for the watch command
type watchOptions struct {
	Pattern  string
	Debounce time.Duration
}

// corpusWatcher re-runs the governance checks whenever a governed file
// changes.
type corpusWatcher struct {
	options   watchOptions
	rc        *runContext
	watcher   *fsnotify.Watcher
	logger    slogger.Logger
	debouncer map[string]time.Time
}

func newCorpusWatcher(options watchOptions, rc *runContext, logger slogger.Logger) (*corpusWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &corpusWatcher{
		options:   options,
		rc:        rc,
		watcher:   watcher,
		logger:    logger,
		debouncer: make(map[string]time.Time),
	}, nil
}

// Start begins watching for file changes and blocks until ctx is done.
func (cw *corpusWatcher) Start(ctx context.Context) error {
	defer cw.watcher.Close()

	if err := cw.addWatchPaths(); err != nil {
		return fmt.Errorf("failed to add watch paths: %w", err)
	}
	cw.logger.Info("watching corpus", "root", cw.rc.root, "pattern", cw.options.Pattern)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			cw.handleEvent(event)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.logger.Error("watch error", "error", err)
		}
	}
}

// addWatchPaths registers every non-excluded directory under the root.
// fsnotify watches are non-recursive, so each directory is added
// individually.
func (cw *corpusWatcher) addWatchPaths() error {
	return filepath.WalkDir(cw.rc.root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if path != cw.rc.root && cw.rc.classifier.Excluded(path) {
			return filepath.SkipDir
		}
		return cw.watcher.Add(path)
	})
}

func (cw *corpusWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// Newly created directories need their own watch.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if !cw.rc.classifier.Excluded(event.Name) {
			_ = cw.watcher.Add(event.Name)
		}
		return
	}

	rel := cw.rc.classifier.Rel(event.Name)
	if !cw.matchesPattern(rel) {
		return
	}
	if last, ok := cw.debouncer[event.Name]; ok && time.Since(last) < cw.options.Debounce {
		return
	}
	cw.debouncer[event.Name] = time.Now()

	cw.logger.Debug("file changed", "path", rel)
	paths := []string{event.Name}
	var findings []check.Finding
	findings = append(findings, cw.rc.checker.Frontmatter(paths)...)
	findings = append(findings, cw.rc.checker.References(paths)...)
	findings = append(findings, cw.rc.checker.Isolation(paths)...)
	findings = append(findings, cw.rc.checker.ContextLoad(paths)...)
	findings = append(findings, cw.rc.checker.Budget(paths)...)
	findings = append(findings, cw.rc.checker.Prose(paths)...)

	if len(findings) == 0 {
		cw.logger.Info("clean", "path", rel)
		return
	}
	for _, f := range findings {
		printFinding(os.Stderr, f)
	}
}

func (cw *corpusWatcher) matchesPattern(rel string) bool {
	matched, err := doublestar.Match(cw.options.Pattern, rel)
	return err == nil && matched
}

func newWatchCommand() *cobra.Command {
	options := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run governance checks when corpus files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext()
			if err != nil {
				return err
			}
			watcher, err := newCorpusWatcher(options, rc, getLogger())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watcher.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&options.Pattern, "pattern", "**/*.md",
		"Doublestar pattern for files to check, relative to the repo root")
	cmd.Flags().DurationVar(&options.Debounce, "debounce", 500*time.Millisecond,
		"Minimum interval between checks of the same file")
	return cmd
}
