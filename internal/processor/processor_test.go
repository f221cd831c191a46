package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/script-refine/internal/config"
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

type fakeRefiner struct {
	mu     sync.Mutex
	err    error
	inputs []string
	opts   refiner.Options
}

func (f *fakeRefiner) Process(ctx context.Context, transcript string, opts refiner.Options) (*refiner.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, transcript)
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &refiner.Result{
		CleanedText:      "# Cats\n\nToday we're going to talk about cats.",
		SEOKeywords:      []string{"cats"},
		ReadabilityScore: "Grade 6",
		WordCount:        7,
	}, nil
}

func newTestProcessor(t *testing.T, r refiner.Refiner) (*implProcessor, *config.Config) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
		Performance: config.PerformanceConfig{MaxConcurrent: 2},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, EnsureDirectories([]string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived}))

	return New(cfg, r, NewSemaphore(cfg.Performance.MaxConcurrent), logger.Nop()).(*implProcessor), cfg
}

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIsTranscript(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.txt", true},
		{"TALK.TXT", true},
		{"notes.md", true},
		{"video.mp4", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTranscript(tt.path))
		})
	}
}

func TestProcess(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	src := writeTranscript(t, cfg.Paths.Input, "cats.txt", "um so cats")

	require.NoError(t, p.Process(context.Background(), src))

	assert.Equal(t, []string{"um so cats"}, fr.inputs)
	assert.Equal(t, refiner.Options{AddHeadings: true, SEOFocus: true}, fr.opts)

	md, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "cats.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "Today we're going to talk about cats.")
	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "cats.docx"))

	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "cats.txt"))
}

func TestProcessSkipsEmptyTranscript(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	src := writeTranscript(t, cfg.Paths.Input, "empty.txt", "  \n")

	require.NoError(t, p.Process(context.Background(), src))

	assert.Empty(t, fr.inputs)
	assert.FileExists(t, src)
}

func TestProcessRefineFailureKeepsSource(t *testing.T) {
	p, cfg := newTestProcessor(t, &fakeRefiner{err: errors.New("boom")})
	src := writeTranscript(t, cfg.Paths.Input, "cats.txt", "cats")

	err := p.Process(context.Background(), src)

	require.Error(t, err)
	assert.FileExists(t, src)
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "cats.md"))
}

func TestProcessBacklog(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	writeTranscript(t, cfg.Paths.Input, "a.txt", "first")
	writeTranscript(t, cfg.Paths.Input, "b.md", "second")
	writeTranscript(t, cfg.Paths.Input, "c.mp4", "not a transcript")

	require.NoError(t, p.ProcessBacklog(context.Background()))

	assert.ElementsMatch(t, []string{"first", "second"}, fr.inputs)
	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "a.md"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "b.md"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Input, "c.mp4"))
}

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	require.NoError(t, sem.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sem.Acquire(ctx), context.Canceled)

	sem.Release()
	assert.NoError(t, sem.Acquire(context.Background()))
}

func TestNewSemaphoreMinimumCapacity(t *testing.T) {
	assert.Equal(t, 1, NewSemaphore(0).Cap())
	assert.Equal(t, 1, NewSemaphore(-3).Cap())
	assert.Equal(t, 4, NewSemaphore(4).Cap())
}

func TestProcessAlreadyArchivedIsNoop(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	src := writeTranscript(t, cfg.Paths.Input, "cats.txt", "cats")

	require.NoError(t, p.Process(context.Background(), src))
	require.NoError(t, p.Process(context.Background(), src))

	assert.Len(t, fr.inputs, 1)
}

func TestProcessSkipsFileInFlight(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	src := writeTranscript(t, cfg.Paths.Input, "cats.txt", "cats")

	require.True(t, p.claim(src))
	require.NoError(t, p.Process(context.Background(), src))
	assert.Empty(t, fr.inputs)
	assert.FileExists(t, src)

	p.unclaim(src)
	require.NoError(t, p.Process(context.Background(), src))
	assert.Len(t, fr.inputs, 1)
}

func TestProcessBacklogRespectsSharedSemaphore(t *testing.T) {
	fr := &fakeRefiner{}
	p, cfg := newTestProcessor(t, fr)
	p.sem = NewSemaphore(1)
	writeTranscript(t, cfg.Paths.Input, "a.txt", "first")

	// The watcher holds the only slot.
	require.NoError(t, p.sem.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.ProcessBacklog(ctx), context.DeadlineExceeded)
	assert.Empty(t, fr.inputs)

	p.sem.Release()
	require.NoError(t, p.ProcessBacklog(context.Background()))
	assert.Equal(t, []string{"first"}, fr.inputs)
}
