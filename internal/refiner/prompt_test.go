package refiner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const headingClause = "Add relevant, engaging headings to separate sections."

func TestBuildPromptHeadingsClause(t *testing.T) {
	with := BuildPrompt("hello", Options{AddHeadings: true})
	without := BuildPrompt("hello", Options{AddHeadings: false})

	assert.Contains(t, with, headingClause)
	assert.NotContains(t, without, headingClause)
}

func TestBuildPromptFixedRules(t *testing.T) {
	prompt := BuildPrompt("00:01 so uh today", Options{})

	for _, want := range []string{
		"transcription editor",
		"filler words",
		"timestamps",
		"repeated",
		"grammar",
		"original meaning",
		"paragraphs",
		"SEO-friendly",
		"INPUT TRANSCRIPT:\n00:01 so uh today",
		`"wordCount": 123`,
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPromptSEOFocusClause(t *testing.T) {
	with := BuildPrompt("hello", Options{SEOFocus: true})
	without := BuildPrompt("hello", Options{SEOFocus: false})

	assert.Contains(t, with, "Prioritise search visibility")
	assert.NotContains(t, without, "Prioritise search visibility")
}

func TestBuildPromptNumbering(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantLast string
	}{
		{"no options", Options{}, "8. Make it SEO-friendly."},
		{"headings only", Options{AddHeadings: true}, "9. " + headingClause},
		{"seo only", Options{SEOFocus: true}, "9. Prioritise search visibility"},
		{"both", Options{AddHeadings: true, SEOFocus: true}, "10. Prioritise search visibility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt("x", tt.opts)
			task := prompt[strings.Index(prompt, "TASK:\n")+len("TASK:\n") : strings.Index(prompt, "\n\nINPUT TRANSCRIPT:")]
			lines := strings.Split(task, "\n")
			assert.True(t, strings.HasPrefix(lines[len(lines)-1], tt.wantLast), "last clause = %q", lines[len(lines)-1])
		})
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	opts := Options{AddHeadings: true, SEOFocus: true}
	assert.Equal(t, BuildPrompt("same", opts), BuildPrompt("same", opts))
}

func TestResultSchemaIndependentOfOptions(t *testing.T) {
	schema := ResultSchema()

	assert.Equal(t, []string{"cleanedText", "seoKeywords", "readabilityScore", "wordCount"}, schema.Required)
	assert.Len(t, schema.Properties, 4)
	assert.Equal(t, ResultSchema().JSON(), schema.JSON())
}
