package compose

import (
	"context"

	"github.com/ib-77/fiber/pkg/fiber"
)

// Point is a handle that is already completed with v.
func Point[A any](v A) fiber.Handle[A] {
	return Resolved(fiber.Complete(v))
}

// Resolved is a handle over a known outcome. Interrupting it does nothing.
func Resolved[A any](o fiber.Outcome[A]) fiber.Handle[A] {
	return &handle[A]{
		observe: func(context.Context) (fiber.Outcome[A], error) {
			return o, nil
		},
		tryObserve: func() (fiber.Outcome[A], bool) {
			return o, true
		},
		interrupt: func(context.Context, []fiber.Cause) error {
			return nil
		},
	}
}

// InterruptAll interrupts the handles strictly in order, waiting for each to
// be resolved before the next one is asked.
func InterruptAll(ctx context.Context, handles []fiber.Control, causes ...fiber.Cause) error {
	for _, h := range handles {
		if err := h.Interrupt0(ctx, causes); err != nil {
			return err
		}
	}
	return nil
}

// JoinAll waits for every handle in order. Outcomes are discarded: a failed
// or terminated fiber does not make JoinAll fail.
func JoinAll(ctx context.Context, handles []fiber.Control) error {
	for _, h := range handles {
		if err := h.Await(ctx); err != nil {
			return err
		}
	}
	return nil
}
