package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is called each time the watcher triggers a re-format.
// It returns the generation result for entry change tracking.
type RunFunc func(ctx context.Context) (*RunResult, error)

// RunResult holds the output of a single format run so the watcher can
// report counts and entry-level changes between generations.
type RunResult struct {
	// Lines is the number of raw lines read from the book.
	Lines int

	// Entries is the number of entries emitted after filtering.
	Entries int

	// Changes are the entry-level differences against the previous run.
	Changes []EntryChange

	// OutputPath is where the rendered block was written.
	OutputPath string
}

// Options configures the watch behaviour.
type Options struct {
	// BookPath is the book file to watch. Its parent directory is watched so
	// that editors that replace the file on save (rename + create) still
	// trigger a run.
	BookPath string

	// Debounce is the quiet period before triggering a re-format.
	Debounce time.Duration

	// Logger is used for structured logging.
	Logger *slog.Logger

	// Out is the writer for user-facing status messages.
	Out io.Writer
}

// DefaultOptions returns sensible default watch options.
func DefaultOptions() Options {
	return Options{
		Debounce: 500 * time.Millisecond,
		Logger:   slog.Default(),
		Out:      os.Stderr,
	}
}

// Run starts the file watcher and blocks until the context is cancelled
// or a SIGINT/SIGTERM signal is received.
func Run(ctx context.Context, opts Options, runFn RunFunc) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}

	abs, err := filepath.Abs(opts.BookPath)
	if err != nil {
		return fmt.Errorf("resolving book path %q: %w", opts.BookPath, err)
	}

	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("watching book file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory rather than the file itself: save-by-rename
	// editors would otherwise detach the watch on the first save.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching book directory: %w", err)
	}

	// Trap SIGINT / SIGTERM for graceful shutdown.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(opts.Out, "watching %s (debounce=%s)\n", opts.BookPath, opts.Debounce)

	// Initial generation.
	doRun(sigCtx, opts, runFn, "(initial)")

	debouncer := NewDebouncer(opts.Debounce, func(path string) {
		doRun(sigCtx, opts, runFn, path)
	})
	defer debouncer.Stop()

	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(opts.Out, "\nshutting down watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevant(event) || !sameFile(event.Name, abs) {
				continue
			}

			debouncer.Trigger(event.Name)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// doRun executes a single format run and prints the status line.
func doRun(ctx context.Context, opts Options, runFn RunFunc, trigger string) {
	now := time.Now().Format("15:04:05")

	result, err := runFn(ctx)
	if err != nil {
		fmt.Fprintf(opts.Out, "[%s] %s → ERROR: %v\n", now, trigger, err)
		return
	}

	fmt.Fprintf(opts.Out, "[%s] %s → OK (%d lines, %d entries)\n",
		now, trigger, result.Lines, result.Entries)

	if len(result.Changes) > 0 {
		fmt.Fprintf(opts.Out, "  entries: %s\n", DiffSummary(result.Changes))
	}
}

// sameFile reports whether an event path refers to the watched book file.
func sameFile(eventPath, bookPath string) bool {
	abs, err := filepath.Abs(eventPath)
	if err != nil {
		return false
	}

	return abs == bookPath
}

// isRelevant filters out events that cannot change the book's content.
func isRelevant(event fsnotify.Event) bool {
	if event.Op == 0 {
		return false
	}

	// Only care about write, create, remove, rename.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	// Ignore editor temporary files and hidden files.
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp") || strings.HasPrefix(name, "#") {
		return false
	}

	return true
}
