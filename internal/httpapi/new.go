package httpapi

import (
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/internal/session"
)

// Handler serves the page, the session API that drives the page state and a
// stateless refine endpoint
type Handler struct {
	sessions session.Controller
	refiner  refiner.Refiner
	defaults refiner.Options
	provider string
	logger   logger.Logger
}

func NewHandler(sessions session.Controller, r refiner.Refiner, defaults refiner.Options, provider string, log logger.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		refiner:  r,
		defaults: defaults,
		provider: provider,
		logger:   log,
	}
}
