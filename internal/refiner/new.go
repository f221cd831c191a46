package refiner

import (
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/pkg/llm"
)

type implRefiner struct {
	generator llm.Generator
	logger    logger.Logger
}

// New creates a Refiner backed by generator
func New(generator llm.Generator, log logger.Logger) Refiner {
	return &implRefiner{
		generator: generator,
		logger:    log,
	}
}
