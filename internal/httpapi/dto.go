package httpapi

import "github.com/nguyentantai21042004/script-refine/internal/refiner"

type InputRequest struct {
	Transcript string `json:"transcript"`
}

type RefineRequest struct {
	Transcript string           `json:"transcript"`
	Options    *refiner.Options `json:"options"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
