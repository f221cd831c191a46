package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-refine/internal/processor"
	"github.com/nguyentantai21042004/script-refine/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refine transcripts dropped into the input folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}
}

func (a *app) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := a.cfg.Paths
	if err := processor.EnsureDirectories([]string{paths.Input, paths.Output, paths.Archived}); err != nil {
		return err
	}

	// One semaphore so the backlog and new files share performance.max_concurrent.
	sem := processor.NewSemaphore(a.cfg.Performance.MaxConcurrent)
	proc := processor.New(a.cfg, a.refiner, sem, a.log)

	w, err := watcher.New(paths.Input, processor.IsTranscript, proc.Process, a.log, sem)
	if err != nil {
		return err
	}
	defer w.Stop()

	// Files created before the watcher existed are not reported by fsnotify.
	if err := proc.ProcessBacklog(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.log.Info(ctx, "Watching %s (output: %s, archived: %s). Press Ctrl+C to stop", paths.Input, paths.Output, paths.Archived)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info(context.Background(), "Watcher stopped")
	return nil
}
