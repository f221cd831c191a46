package llm

import "context"

// Request is a single prompt plus the structured-output schema the provider
// should conform its answer to.
type Request struct {
	Prompt string
	Schema *Schema
}

// Generator sends one request to a generative-language service and returns the
// raw text payload. An empty payload is returned as "" with a nil error; callers
// decide whether that is a failure.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Provider() string
}

// Logger is the subset of a leveled logger the provider clients write to.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
}
