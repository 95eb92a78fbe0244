package compose

import (
	"context"

	"github.com/ib-77/fiber/pkg/fiber"
)

// handle is a fiber.Handle assembled from closures over its components.
type handle[A any] struct {
	observe    func(ctx context.Context) (fiber.Outcome[A], error)
	tryObserve func() (fiber.Outcome[A], bool)
	interrupt  func(ctx context.Context, causes []fiber.Cause) error
}

func (h *handle[A]) Observe(ctx context.Context) (fiber.Outcome[A], error) {
	return h.observe(ctx)
}

func (h *handle[A]) TryObserve() (fiber.Outcome[A], bool) {
	return h.tryObserve()
}

func (h *handle[A]) Interrupt0(ctx context.Context, causes []fiber.Cause) error {
	return h.interrupt(ctx, causes)
}

func (h *handle[A]) Await(ctx context.Context) error {
	_, err := h.observe(ctx)
	return err
}
