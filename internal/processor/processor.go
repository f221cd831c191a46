package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// IsTranscript reports whether path has a transcript extension
func IsTranscript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

// Process orchestrates refining a single transcript file
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	// The backlog sweep and the watcher can both see a file created at startup.
	if !p.claim(transcriptPath) {
		p.logger.Debug(ctx, "Already processing %s", transcriptPath)
		return nil
	}
	defer p.unclaim(transcriptPath)

	p.logger.Info(ctx, "Starting transcript refinement: %s", transcriptPath)

	// Step 1: Read transcript
	data, err := os.ReadFile(transcriptPath)
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Debug(ctx, "Transcript %s already archived", transcriptPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	transcript := string(data)
	if strings.TrimSpace(transcript) == "" {
		p.logger.Warn(ctx, "Skipping empty transcript: %s", transcriptPath)
		return nil
	}

	// Step 2: Refine
	result, err := p.refiner.Process(ctx, transcript, p.opts)
	if err != nil {
		return fmt.Errorf("refine: %w", err)
	}

	// Step 3: Write outputs named after the source
	mdPath, docxPath, err := p.writeOutputs(ctx, transcriptPath, result)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 4: Move source to archived folder
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Refined %s (%d words, readability %s) in %s",
		filepath.Base(transcriptPath), result.WordCount, result.ReadabilityScore, time.Since(startTime))
	p.logger.Info(ctx, "Output: %s, %s", mdPath, docxPath)

	return nil
}

// ProcessBacklog refines every transcript already in the input folder,
// bounded by the shared Semaphore. Failures are logged and the
// file is left in place.
func (p *implProcessor) ProcessBacklog(ctx context.Context) error {
	entries, err := os.ReadDir(p.cfg.Paths.Input)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && IsTranscript(e.Name()) {
			paths = append(paths, filepath.Join(p.cfg.Paths.Input, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil
	}

	p.logger.Info(ctx, "Processing %d waiting transcripts", len(paths))

	var wg sync.WaitGroup
	for _, path := range paths {
		if err := p.sem.Acquire(ctx); err != nil {
			break
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer p.sem.Release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
			}
		}(path)
	}
	wg.Wait()

	return ctx.Err()
}

func (p *implProcessor) claim(path string) bool {
	path = filepath.Clean(path)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inFlight[path]; busy {
		return false
	}
	p.inFlight[path] = struct{}{}
	return true
}

func (p *implProcessor) unclaim(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, filepath.Clean(path))
}
