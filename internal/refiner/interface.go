package refiner

import "context"

// Options alters the instruction text sent with a transcript
type Options struct {
	AddHeadings bool `json:"addHeadings"`
	SEOFocus    bool `json:"seoFocus"`
}

// Result is the structured answer from the language service, unmodified
type Result struct {
	CleanedText      string   `json:"cleanedText"`
	SEOKeywords      []string `json:"seoKeywords"`
	ReadabilityScore string   `json:"readabilityScore"`
	WordCount        int      `json:"wordCount"`
}

// Refiner turns a raw transcript into a cleaned, structured Result with one
// call to the language service
type Refiner interface {
	Process(ctx context.Context, transcript string, opts Options) (*Result, error)
}
