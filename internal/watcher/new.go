package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/script-refine/internal/logger"
)

// settleDelay is how long a new file is left alone before it is handed off
const settleDelay = 500 * time.Millisecond

// New creates a new Watcher instance with concurrency control. Only files
// accepted by match are passed to handler, each holding a slot of limiter.
func New(inputDir string, match func(path string) bool, handler EventHandler, log logger.Logger, limiter Limiter) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		match:    match,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		limiter:  limiter,
		settle:   settleDelay,
	}, nil
}
