package refiner

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/script-refine/pkg/llm"
)

const rolePrompt = "You are a professional transcription editor and YouTube script writer."

// clause is one numbered instruction. enabled == nil means always on.
type clause struct {
	name    string
	text    string
	enabled func(Options) bool
}

func withHeadings(o Options) bool { return o.AddHeadings }
func withSEOFocus(o Options) bool { return o.SEOFocus }

// clauses are emitted in this order and numbered from 1 after filtering.
var clauses = []clause{
	{name: "clean", text: "Clean the provided YouTube transcript."},
	{name: "fillers", text: "Remove filler words (uh, um, you know, like)."},
	{name: "timestamps", text: "Remove timestamps such as 00:00 or 01:02:03."},
	{name: "repetitions", text: "Remove repeated words and phrases."},
	{name: "grammar", text: "Correct grammar and punctuation."},
	{name: "meaning", text: "Maintain the original meaning exactly."},
	{name: "paragraphs", text: "Format the output into clear, readable paragraphs."},
	{name: "seo", text: "Make it SEO-friendly."},
	{name: "headings", text: "Add relevant, engaging headings to separate sections.", enabled: withHeadings},
	{name: "seo_focus", text: "Prioritise search visibility: work the most important topic keywords naturally into the text and pick seoKeywords a viewer would actually search for.", enabled: withSEOFocus},
}

const outputFormat = `OUTPUT FORMAT:
Provide the response in JSON format with the following structure:
{
  "cleanedText": "The fully processed and formatted text",
  "seoKeywords": ["keyword1", "keyword2", "keyword3"],
  "readabilityScore": "Grade Level or Descriptive score",
  "wordCount": 123
}`

// enabledClauses returns the clause texts that apply to opts, in order
func enabledClauses(opts Options) []string {
	var out []string
	for _, c := range clauses {
		if c.enabled == nil || c.enabled(opts) {
			out = append(out, c.text)
		}
	}
	return out
}

// BuildPrompt renders the full instruction text for transcript
func BuildPrompt(transcript string, opts Options) string {
	var sb strings.Builder
	sb.WriteString(rolePrompt)
	sb.WriteString("\n\nTASK:\n")
	for i, text := range enabledClauses(opts) {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}
	sb.WriteString("\nINPUT TRANSCRIPT:\n")
	sb.WriteString(transcript)
	sb.WriteString("\n\n")
	sb.WriteString(outputFormat)
	return sb.String()
}

// ResultSchema is the structured-output schema for every request. It does not
// depend on Options.
func ResultSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"cleanedText": {Type: llm.TypeString},
			"seoKeywords": {
				Type:  llm.TypeArray,
				Items: &llm.Schema{Type: llm.TypeString},
			},
			"readabilityScore": {Type: llm.TypeString},
			"wordCount":        {Type: llm.TypeNumber},
		},
		PropertyOrder: []string{"cleanedText", "seoKeywords", "readabilityScore", "wordCount"},
		Required:      []string{"cleanedText", "seoKeywords", "readabilityScore", "wordCount"},
	}
}
