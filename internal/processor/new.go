package processor

import (
	"sync"

	"github.com/nguyentantai21042004/script-refine/internal/config"
	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

type implProcessor struct {
	cfg     *config.Config
	refiner refiner.Refiner
	opts    refiner.Options
	sem     *Semaphore
	logger  logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a new Processor instance. Every file is refined with the
// configured default options; sem bounds ProcessBacklog and should be the
// one handed to the watcher.
func New(cfg *config.Config, r refiner.Refiner, sem *Semaphore, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		refiner:  r,
		sem:      sem,
		logger:   log,
		inFlight: make(map[string]struct{}),
		opts: refiner.Options{
			AddHeadings: *cfg.Defaults.AddHeadings,
			SEOFocus:    *cfg.Defaults.SEOFocus,
		},
	}
}
