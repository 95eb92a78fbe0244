package core

import (
	"context"

	"github.com/ib-77/fiber/pkg/fiber"
)

// ToChan observes h on a goroutine. The returned channel yields the outcome
// once, or is closed empty when ctx ends first.
func ToChan[A any](ctx context.Context, h fiber.Observer[A]) <-chan fiber.Outcome[A] {
	out := make(chan fiber.Outcome[A], 1)

	go func() {
		defer close(out)

		o, err := h.Observe(ctx)
		if err != nil {
			return
		}
		out <- o
	}()

	return out
}

// ToChanMany observes every handle in order and streams the outcomes.
func ToChanMany[A any](ctx context.Context, handles []fiber.Observer[A]) <-chan fiber.Outcome[A] {
	out := make(chan fiber.Outcome[A])

	go func() {
		defer close(out)

		for _, h := range handles {
			o, err := h.Observe(ctx)
			if err != nil {
				return
			}

			select {
			case out <- o:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
