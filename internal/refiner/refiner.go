package refiner

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/nguyentantai21042004/script-refine/pkg/llm"
)

// Process sends transcript to the language service exactly once and parses
// the structured reply. Every failure is a coded error carrying
// GenericErrorMessage; there is no partial or default result.
func (r *implRefiner) Process(ctx context.Context, transcript string, opts Options) (*Result, error) {
	provider := r.generator.Provider()

	r.logger.Info(ctx, "Refining transcript (%d chars, headings=%t, seo=%t) via %s",
		len(transcript), opts.AddHeadings, opts.SEOFocus, provider)

	text, err := r.generator.Generate(ctx, llm.Request{
		Prompt: BuildPrompt(transcript, opts),
		Schema: ResultSchema(),
	})
	if err != nil {
		r.logger.Error(ctx, "Language service call failed: %v", err)
		return nil, NewGenerateFailedError(provider, err)
	}

	if strings.TrimSpace(text) == "" {
		r.logger.Error(ctx, "Language service returned an empty payload")
		return nil, NewEmptyResponseError(provider)
	}

	result, err := parseResult(text)
	if err != nil {
		r.logger.Error(ctx, "Failed to parse language service payload: %v", err)
		return nil, NewMalformedPayloadError(provider, err)
	}

	r.logger.Info(ctx, "Transcript refined: %d words, %d keywords", result.WordCount, len(result.SEOKeywords))
	return result, nil
}

// resultFields are the payload keys, matched exactly. encoding/json folds case
// when decoding into a struct, so the payload is split into a map first.
var resultFields = []string{"cleanedText", "seoKeywords", "readabilityScore", "wordCount"}

func parseResult(text string) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &fields); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var missing []string
	for _, name := range resultFields {
		if raw, ok := fields[name]; !ok || string(raw) == "null" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	var (
		r     Result
		count float64
	)
	targets := map[string]interface{}{
		"cleanedText":      &r.CleanedText,
		"seoKeywords":      &r.SEOKeywords,
		"readabilityScore": &r.ReadabilityScore,
		"wordCount":        &count,
	}
	for _, name := range resultFields {
		if err := json.Unmarshal(fields[name], targets[name]); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}

	if count < 0 || count != math.Trunc(count) || count > math.MaxInt32 {
		return nil, fmt.Errorf("wordCount %v is not a non-negative integer", count)
	}
	r.WordCount = int(count)

	return &r, nil
}
