package session

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/internal/state"
)

// entry returns the session for id, creating it with default options.
// Callers hold c.mu.
func (c *implController) entry(id string) *entry {
	e, ok := c.sessions[id]
	if !ok {
		e = &entry{state: state.Initial(c.defaults)}
		c.sessions[id] = e
	}
	e.lastSeen = c.now()
	return e
}

func (c *implController) Get(id string) state.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return state.Project(c.entry(id).state)
}

func (c *implController) Dispatch(ctx context.Context, id string, event state.Event) state.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(id)
	// Effects are ignored here; only Submit may start a call.
	e.state, _ = state.Reduce(e.state, event)
	return state.Project(e.state)
}

func (c *implController) Submit(ctx context.Context, id string) state.View {
	c.mu.Lock()
	e := c.entry(id)
	next, effect := state.Reduce(e.state, state.Submitted{})
	e.state = next
	c.mu.Unlock()

	if effect != state.EffectProcess {
		return state.Project(next)
	}

	// The lock is not held across the call; the Loading guard in Reduce keeps
	// a second submit for this session from starting another one.
	var outcome state.Event
	result, err := c.refiner.Process(ctx, next.InputTranscript, next.Options)
	switch {
	case err != nil:
		c.logger.Error(ctx, "Session %s: refine failed: %v", shortID(id), err)
		outcome = state.Failed{Message: refiner.GenericErrorMessage}
	case result == nil:
		c.logger.Error(ctx, "Session %s: refine returned no result", shortID(id))
		outcome = state.Failed{Message: refiner.GenericErrorMessage}
	default:
		outcome = state.Succeeded{Result: result}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sessions[id]
	if !ok {
		// Discarded while the call was in flight.
		settled, _ := state.Reduce(next, outcome)
		return state.Project(settled)
	}
	e.state, _ = state.Reduce(e.state, outcome)
	e.lastSeen = c.now()
	return state.Project(e.state)
}

func (c *implController) Result(id string) (*refiner.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sessions[id]
	if !ok || e.state.Result == nil || e.state.Error != "" {
		return nil, false
	}
	return e.state.Result, true
}

func (c *implController) Discard(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
}

// Run sweeps idle sessions every idleTTL/2 until ctx is done
func (c *implController) Run(ctx context.Context) error {
	interval := c.idleTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := c.sweep(); n > 0 {
				c.logger.Debug(ctx, "Evicted %d idle sessions", n)
			}
		}
	}
}

// sweep removes sessions idle longer than idleTTL. Sessions with a call in
// flight are kept.
func (c *implController) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idleTTL <= 0 {
		return 0
	}
	cutoff := c.now().Add(-c.idleTTL)
	evicted := 0
	for id, e := range c.sessions {
		if e.state.IsProcessing || e.lastSeen.After(cutoff) {
			continue
		}
		delete(c.sessions, id)
		evicted++
	}
	return evicted
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
