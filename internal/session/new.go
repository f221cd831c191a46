package session

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/script-refine/internal/logger"
	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/internal/state"
)

type entry struct {
	state    state.State
	lastSeen time.Time
}

type implController struct {
	mu       sync.Mutex
	sessions map[string]*entry

	refiner  refiner.Refiner
	defaults refiner.Options
	idleTTL  time.Duration
	now      func() time.Time
	logger   logger.Logger
}

// New creates a Controller. Sessions idle for longer than idleTTL are evicted by Run.
func New(r refiner.Refiner, defaults refiner.Options, idleTTL time.Duration, log logger.Logger) Controller {
	return &implController{
		sessions: make(map[string]*entry),
		refiner:  r,
		defaults: defaults,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   log,
	}
}
