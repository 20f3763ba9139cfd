package browser

import "context"

// slots is a counting semaphore over open pages.
type slots struct {
	ch chan struct{}
}

func newSlots(size int) *slots {
	if size <= 0 {
		size = 1
	}
	return &slots{ch: make(chan struct{}, size)}
}

func (s *slots) acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *slots) release() {
	select {
	case <-s.ch:
	default:
	}
}

func (s *slots) inUse() int {
	return len(s.ch)
}
