package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/script-refine/internal/config"
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

type fakeRefiner struct {
	err  error
	opts refiner.Options
	text string
}

func (f *fakeRefiner) Process(ctx context.Context, transcript string, opts refiner.Options) (*refiner.Result, error) {
	f.text, f.opts = transcript, opts
	if f.err != nil {
		return nil, f.err
	}
	return &refiner.Result{
		CleanedText:      "Today we're going to talk about cats.",
		SEOKeywords:      []string{"cats", "pets"},
		ReadabilityScore: "Grade 6",
		WordCount:        6,
	}, nil
}

func newTestApp(t *testing.T, r refiner.Refiner) *app {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	return &app{cfg: cfg, log: logger.Nop(), refiner: r}
}

func TestRefineOneFromStdin(t *testing.T) {
	fr := &fakeRefiner{}
	a := newTestApp(t, fr)
	var out bytes.Buffer

	err := a.refineOne(context.Background(), strings.NewReader("um so cats"), &out, "-", a.defaultOptions(), refineFlags{})

	require.NoError(t, err)
	assert.Equal(t, "um so cats", fr.text)
	assert.Contains(t, out.String(), "Today we're going to talk about cats.")
	assert.Contains(t, out.String(), "Readability: Grade 6 | Words: 6 | Keywords: cats, pets")
}

func TestRefineOneWritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "talk.txt")
	require.NoError(t, os.WriteFile(in, []byte("cats"), 0644))

	a := newTestApp(t, &fakeRefiner{})
	for _, name := range []string{"out.md", "out.txt", "out.docx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			var out bytes.Buffer

			err := a.refineOne(context.Background(), nil, &out, in, a.defaultOptions(), refineFlags{out: path})

			require.NoError(t, err)
			assert.FileExists(t, path)
			assert.Empty(t, out.String())
		})
	}
}

func TestRefineOneErrors(t *testing.T) {
	a := newTestApp(t, &fakeRefiner{err: assert.AnError})

	err := a.refineOne(context.Background(), strings.NewReader("cats"), &bytes.Buffer{}, "-", a.defaultOptions(), refineFlags{})
	require.Error(t, err)
	assert.Equal(t, refiner.GenericErrorMessage, err.Error())

	err = a.refineOne(context.Background(), strings.NewReader("  "), &bytes.Buffer{}, "-", a.defaultOptions(), refineFlags{})
	assert.EqualError(t, err, "transcript is empty")

	err = a.refineOne(context.Background(), nil, &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.txt"), a.defaultOptions(), refineFlags{})
	assert.Error(t, err)
}

func TestWriteResultRejectsUnknownExtension(t *testing.T) {
	err := writeResult(filepath.Join(t.TempDir(), "out.pdf"), &refiner.Result{})
	assert.Error(t, err)
}

func TestRefineCmdFlagsOverrideDefaults(t *testing.T) {
	fr := &fakeRefiner{}
	a := newTestApp(t, fr)

	cmd := newRefineCmd(a)
	cmd.SetIn(strings.NewReader("cats"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--headings=false"})
	cmd.SetContext(context.Background())

	require.NoError(t, cmd.Execute())
	assert.Equal(t, refiner.Options{AddHeadings: false, SEOFocus: true}, fr.opts)
}
