package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-refine/internal/clipboard"
	"github.com/nguyentantai21042004/script-refine/internal/export"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/pkg/executor"
)

type refineFlags struct {
	headings bool
	seo      bool
	copy     bool
	out      string
}

func newRefineCmd(a *app) *cobra.Command {
	var f refineFlags

	cmd := &cobra.Command{
		Use:   "refine [file|-]",
		Short: "Refine one transcript and print the cleaned script",
		Long: "Refine reads a transcript from a file, or from stdin when the argument is\n" +
			"omitted or \"-\", and prints the cleaned script. --out writes .txt, .md or\n" +
			".docx depending on the file extension.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.defaultOptions()
			if cmd.Flags().Changed("headings") {
				opts.AddHeadings = f.headings
			}
			if cmd.Flags().Changed("seo") {
				opts.SEOFocus = f.seo
			}

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return a.refineOne(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), input, opts, f)
		},
	}
	cmd.Flags().BoolVar(&f.headings, "headings", true, "add section headings (default from config)")
	cmd.Flags().BoolVar(&f.seo, "seo", true, "prioritise search visibility (default from config)")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "copy the cleaned script to the system clipboard")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the result to this file (.txt, .md or .docx)")
	return cmd
}

func (a *app) refineOne(ctx context.Context, stdin io.Reader, stdout io.Writer, input string, opts refiner.Options, f refineFlags) error {
	transcript, err := readTranscript(stdin, input)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return errors.New("transcript is empty")
	}

	result, err := a.refiner.Process(ctx, transcript, opts)
	if err != nil {
		a.log.Error(ctx, "Refine failed: %v", err)
		return errors.New(refiner.GenericErrorMessage)
	}

	if f.out != "" {
		if err := writeResult(f.out, result); err != nil {
			return err
		}
		a.log.Info(ctx, "Wrote %s", f.out)
	} else {
		fmt.Fprintln(stdout, result.CleanedText)
		fmt.Fprintf(stdout, "\nReadability: %s | Words: %d | Keywords: %s\n",
			result.ReadabilityScore, result.WordCount, strings.Join(result.SEOKeywords, ", "))
	}

	if f.copy {
		clip := clipboard.New(executor.New(), a.log)
		if err := clip.Copy(ctx, result.CleanedText); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Copied to clipboard!")
	}
	return nil
}

func readTranscript(stdin io.Reader, input string) (string, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func writeResult(path string, r *refiner.Result) error {
	format, err := export.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if format == export.FormatDocx {
		return export.WriteDocx(path, title, r)
	}
	data, err := export.Render(format, title, r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
