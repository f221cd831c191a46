package llm

import (
	stderrors "errors"
	"net/http"

	"github.com/agilira/go-errors"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// Error codes for provider setup and calls (3000-3099)
const (
	ErrCodeMissingAPIKey   = "LLM_3001"
	ErrCodeUnknownProvider = "LLM_3002"
	ErrCodeRateLimited     = "LLM_3003"
)

func NewMissingAPIKeyError(provider string) *errors.Error {
	return errors.New(ErrCodeMissingAPIKey, "Missing API key").
		WithUserMessage("No API key is configured for the language service").
		WithContext("provider", provider).
		WithSeverity("error")
}

func NewUnknownProviderError(provider string) *errors.Error {
	return errors.New(ErrCodeUnknownProvider, "Unknown provider").
		WithUserMessage("The configured language service is not supported").
		WithContext("provider", provider).
		WithSeverity("error")
}

func NewRateLimitedError(provider string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeRateLimited, "Rate limited").
		WithUserMessage("The language service is rate limiting requests").
		WithContext("provider", provider).
		WithSeverity("warning").
		AsRetryable()
}

// statusCode extracts the HTTP status from a provider SDK error, or 0 when
// err carries none (network failure, context cancellation).
func statusCode(err error) int {
	var gerr genai.APIError
	if stderrors.As(err, &gerr) {
		return gerr.Code
	}
	var gperr *genai.APIError
	if stderrors.As(err, &gperr) {
		return gperr.Code
	}
	var oerr *openai.Error
	if stderrors.As(err, &oerr) {
		return oerr.StatusCode
	}
	var aerr *anthropic.Error
	if stderrors.As(err, &aerr) {
		return aerr.StatusCode
	}
	return 0
}

// isRateLimited reports whether the service rejected the call with 429.
func isRateLimited(err error) bool {
	return statusCode(err) == http.StatusTooManyRequests
}

// isTransient reports whether a failed call is worth repeating: 429, 500 or 503.
func isTransient(err error) bool {
	switch statusCode(err) {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}
