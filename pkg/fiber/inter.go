// Package fiber defines fiber outcomes and the handle contract used to
// observe, join and interrupt concurrent computations.
package fiber

import "context"

// Observer gives access to a fiber's outcome.
type Observer[A any] interface {
	// Observe waits until the fiber is resolved and returns its outcome.
	// The error is non-nil only when ctx ends first; failures of the fiber
	// itself are carried by the outcome.
	Observe(ctx context.Context) (Outcome[A], error)
	// TryObserve polls without waiting. It reports false while unresolved.
	TryObserve() (Outcome[A], bool)
}

// Interrupter can request early termination of a fiber.
type Interrupter interface {
	// Interrupt0 asks the fiber to stop with the given causes and waits until
	// it is resolved. On an already resolved fiber it returns at once and the
	// outcome is left untouched.
	Interrupt0(ctx context.Context, causes []Cause) error
}

// Awaiter waits for resolution without looking at the payload.
type Awaiter interface {
	Await(ctx context.Context) error
}

// Control is what the ordered aggregates need from a handle of any value
// type.
type Control interface {
	Interrupter
	Awaiter
}

// Handle is the full capability set over one fiber, or over a composition of
// fibers.
type Handle[A any] interface {
	Observer[A]
	Control
}

// Interrupt is Interrupt0 with variadic causes. Without causes the engine
// records ErrInterrupted as the reason.
func Interrupt(ctx context.Context, h Interrupter, causes ...Cause) error {
	return h.Interrupt0(ctx, causes)
}

// Join observes h and translates its outcome: the value on completion, the
// fiber's error on failure, a *TerminatedError on termination.
func Join[A any](ctx context.Context, h Observer[A]) (A, error) {
	o, err := h.Observe(ctx)
	if err != nil {
		var zero A
		return zero, err
	}
	return o.Get()
}
