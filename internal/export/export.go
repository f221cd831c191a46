// Package export renders a refined transcript as plain text, markdown or docx.
package export

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatDocx     Format = "docx"
)

// ParseFormat accepts a format name or file extension, with or without the dot
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

// Render encodes r in format f
func Render(f Format, title string, r *refiner.Result) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(Text(r)), nil
	case FormatMarkdown:
		return []byte(Markdown(title, r)), nil
	case FormatDocx:
		return Docx(title, r)
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// Text returns the cleaned text exactly as the service produced it
func Text(r *refiner.Result) string {
	return r.CleanedText
}

// Markdown renders the cleaned text followed by keyword and stats sections
func Markdown(title string, r *refiner.Result) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("# " + title + "\n\n")
	}
	sb.WriteString(strings.TrimSpace(r.CleanedText))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(fmt.Sprintf("**Readability:** %s  \n", r.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("**Words:** %d\n", r.WordCount))
	if len(r.SEOKeywords) > 0 {
		sb.WriteString("\n## Keywords\n\n")
		for _, k := range r.SEOKeywords {
			sb.WriteString("- " + k + "\n")
		}
	}
	return sb.String()
}
