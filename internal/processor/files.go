package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/script-refine/internal/export"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// writeOutputs writes <name>.md and <name>.docx into the output folder
func (p *implProcessor) writeOutputs(ctx context.Context, transcriptPath string, r *refiner.Result) (string, string, error) {
	name := baseName(transcriptPath)
	mdPath := filepath.Join(p.cfg.Paths.Output, name+export.FormatMarkdown.Extension())
	docxPath := filepath.Join(p.cfg.Paths.Output, name+export.FormatDocx.Extension())

	if err := os.WriteFile(mdPath, []byte(export.Markdown(name, r)), 0644); err != nil {
		return "", "", fmt.Errorf("write markdown: %w", err)
	}
	p.logger.Debug(ctx, "Wrote %s", mdPath)

	if err := export.WriteDocx(docxPath, name, r); err != nil {
		return "", "", fmt.Errorf("write docx: %w", err)
	}
	p.logger.Debug(ctx, "Wrote %s", docxPath)

	return mdPath, docxPath, nil
}

// moveToArchived moves the source transcript out of the input folder
func (p *implProcessor) moveToArchived(ctx context.Context, transcriptPath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(transcriptPath))

	p.logger.Info(ctx, "Archiving: %s -> %s", transcriptPath, destPath)

	if err := os.Rename(transcriptPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

// EnsureDirectories creates the input, output and archived folders
func EnsureDirectories(paths []string) error {
	for _, dir := range paths {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
