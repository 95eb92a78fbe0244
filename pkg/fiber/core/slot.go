package core

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/fiber/pkg/fiber"
)

// Slot holds the outcome of one fiber. The first Resolve wins; every reader
// sees that same value afterwards.
type Slot[A any] struct {
	outcome atomic.Pointer[fiber.Outcome[A]]
	done    chan struct{}
}

func NewSlot[A any]() *Slot[A] {
	return &Slot[A]{done: make(chan struct{})}
}

// Resolve stores o unless the slot is already resolved. It reports whether
// this call performed the write.
func (s *Slot[A]) Resolve(o fiber.Outcome[A]) bool {
	if !s.outcome.CompareAndSwap(nil, &o) {
		return false
	}
	close(s.done)
	return true
}

func (s *Slot[A]) Poll() (fiber.Outcome[A], bool) {
	if p := s.outcome.Load(); p != nil {
		return *p, true
	}
	return fiber.Outcome[A]{}, false
}

// Wait blocks until the slot is resolved or ctx ends. A resolved slot is
// returned even when ctx is already done.
func (s *Slot[A]) Wait(ctx context.Context) (fiber.Outcome[A], error) {
	if o, ok := s.Poll(); ok {
		return o, nil
	}

	select {
	case <-s.done:
		return *s.outcome.Load(), nil
	case <-ctx.Done():
		if o, ok := s.Poll(); ok {
			return o, nil
		}
		return fiber.Outcome[A]{}, ctx.Err()
	}
}

func (s *Slot[A]) Done() <-chan struct{} {
	return s.done
}
