package compose

import (
	"context"

	"github.com/ib-77/fiber/pkg/fiber"
	"github.com/ib-77/fiber/pkg/fiber/solo"
)

type Pair[A, B any] = solo.Pair[A, B]

// Map transforms the completed value of h. f must be pure: it must not block
// or panic.
func Map[In, Out any](h fiber.Handle[In], f func(In) Out) fiber.Handle[Out] {
	return &handle[Out]{
		observe: func(ctx context.Context) (fiber.Outcome[Out], error) {
			o, err := h.Observe(ctx)
			if err != nil {
				return fiber.Outcome[Out]{}, err
			}
			return solo.Map(o, f), nil
		},
		tryObserve: func() (fiber.Outcome[Out], bool) {
			o, ok := h.TryObserve()
			if !ok {
				return fiber.Outcome[Out]{}, false
			}
			return solo.Map(o, f), true
		},
		interrupt: h.Interrupt0,
	}
}

// ZipWith observes left, then right, and merges both outcomes with
// solo.ZipWith. Interrupting the result interrupts left and waits for it
// before right is touched.
func ZipWith[A, B, C any](left fiber.Handle[A], right fiber.Handle[B],
	combine func(A, B) C) fiber.Handle[C] {

	return &handle[C]{
		observe: func(ctx context.Context) (fiber.Outcome[C], error) {
			l, err := left.Observe(ctx)
			if err != nil {
				return fiber.Outcome[C]{}, err
			}
			r, err := right.Observe(ctx)
			if err != nil {
				return fiber.Outcome[C]{}, err
			}
			return solo.ZipWith(l, r, combine), nil
		},
		tryObserve: func() (fiber.Outcome[C], bool) {
			l, ok := left.TryObserve()
			if !ok {
				return fiber.Outcome[C]{}, false
			}
			r, ok := right.TryObserve()
			if !ok {
				return fiber.Outcome[C]{}, false
			}
			return solo.ZipWith(l, r, combine), true
		},
		interrupt: func(ctx context.Context, causes []fiber.Cause) error {
			if err := left.Interrupt0(ctx, causes); err != nil {
				return err
			}
			return right.Interrupt0(ctx, causes)
		},
	}
}

func Zip[A, B any](left fiber.Handle[A], right fiber.Handle[B]) fiber.Handle[Pair[A, B]] {
	return ZipWith(left, right, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// ZipRight keeps the value of right (the *> operator).
func ZipRight[A, B any](left fiber.Handle[A], right fiber.Handle[B]) fiber.Handle[B] {
	return Map(Zip(left, right), func(p Pair[A, B]) B { return p.Second })
}

// ZipLeft keeps the value of left (the <* operator).
func ZipLeft[A, B any](left fiber.Handle[A], right fiber.Handle[B]) fiber.Handle[A] {
	return Map(Zip(left, right), func(p Pair[A, B]) A { return p.First })
}
