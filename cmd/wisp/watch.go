package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wisplang/wisp/internal/replcache"
)

// runWatch runs file once, then re-runs it on every subsequent write,
// until Ctrl-C. Each run gets a fresh root environment: watch mode is
// for iterating on a script, not for accumulating REPL-style state
// across edits.
func runWatch(file string, cache *replcache.Cache, useColor, noLint bool) error {
	if file == "" || file == "-" {
		return &CLIError{Type: "usage", Message: "--watch requires a real file path, not stdin"}
	}

	ctx, cancel := newCancellableContext()
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &CLIError{Type: "io", Message: "could not start the file watcher", Details: err.Error()}
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return &CLIError{Type: "io", Message: fmt.Sprintf("could not watch %s", dir), Details: err.Error()}
	}

	runOnce := func() {
		fmt.Fprintln(os.Stderr, Colorize(fmt.Sprintf("--- running %s ---", file), colorGray, useColor))
		if err := runFile(file, cache, useColor, noLint); err != nil {
			FormatError(os.Stderr, err, useColor)
		}
	}

	runOnce()

	target := filepath.Clean(file)
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, Colorize("watch error: "+err.Error(), colorRed, useColor))
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce = time.After(50 * time.Millisecond)
		case <-debounce:
			runOnce()
			debounce = nil
		}
	}
}

// newCancellableContext returns a context cancelled on SIGINT/SIGTERM,
// so Ctrl-C stops --watch's event loop cleanly.
func newCancellableContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
	return ctx, cancel
}
