package session

import (
	"context"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
	"github.com/nguyentantai21042004/script-refine/internal/state"
)

// Controller owns one page State per browser session and drives it with
// state.Reduce. Sessions exist only in memory.
type Controller interface {
	// Get returns the current view, creating the session on first use.
	Get(id string) state.View
	// Dispatch applies a user event that needs no service call.
	Dispatch(ctx context.Context, id string, event state.Event) state.View
	// Submit runs the submit transition and, when allowed, the refiner call.
	// It returns after the call has settled.
	Submit(ctx context.Context, id string) state.View
	// Result returns the result the page is showing, including the previous
	// result while a new call is loading.
	Result(id string) (*refiner.Result, bool)
	// Discard drops the session, e.g. when the page unloads.
	Discard(id string)
	// Run evicts idle sessions until ctx is cancelled.
	Run(ctx context.Context) error
}
