package processor

import "context"

// Semaphore bounds how many transcripts are refined at once. One instance is
// shared by the backlog sweep and the folder watcher so the cap holds across both.
type Semaphore struct {
	ch chan struct{}
}

// NewSemaphore returns a Semaphore with the given capacity; anything below 1 means 1
func NewSemaphore(capacity int) *Semaphore {
	if capacity < 1 {
		capacity = 1
	}
	return &Semaphore{ch: make(chan struct{}, capacity)}
}

// Acquire blocks until a slot is free or ctx is done
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Semaphore) Release() {
	<-s.ch
}

func (s *Semaphore) Cap() int {
	return cap(s.ch)
}
