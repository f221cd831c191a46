package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error

// Limiter bounds concurrent handler calls. It is shared with other work
// that must respect the same cap.
type Limiter interface {
	Acquire(ctx context.Context) error
	Release()
	Cap() int
}
