package refiner

import (
	"github.com/agilira/go-errors"
)

// GenericErrorMessage is the only failure text ever shown to a user
const GenericErrorMessage = "Failed to process transcript. Please check your API key and try again."

// Error codes for transcript processing (2000-2099)
const (
	ErrCodeGenerateFailed   = "REFINE_2001"
	ErrCodeEmptyResponse    = "REFINE_2002"
	ErrCodeMalformedPayload = "REFINE_2003"
)

func NewGenerateFailedError(provider string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeGenerateFailed, "Language service call failed").
		WithUserMessage(GenericErrorMessage).
		WithContext("provider", provider).
		WithSeverity("error")
}

func NewEmptyResponseError(provider string) *errors.Error {
	return errors.New(ErrCodeEmptyResponse, "Empty response from language service").
		WithUserMessage(GenericErrorMessage).
		WithContext("provider", provider).
		WithSeverity("error")
}

func NewMalformedPayloadError(provider string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeMalformedPayload, "Malformed response payload").
		WithUserMessage(GenericErrorMessage).
		WithContext("provider", provider).
		WithSeverity("error")
}
