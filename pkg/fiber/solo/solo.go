package solo

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fiber/pkg/fiber"
)

// Pair is the value of a zipped outcome.
type Pair[A, B any] struct {
	First  A
	Second B
}

func Map[In, Out any](input fiber.Outcome[In], onCompleted func(In) Out) fiber.Outcome[Out] {
	switch input.Kind() {
	case fiber.KindCompleted:
		return restamp(fiber.Complete(onCompleted(input.Value())), input)
	default:
		return Retype[In, Out](input)
	}
}

// Retype carries a non-completed outcome over to another value type.
// A completed input yields a completed output holding the zero value.
func Retype[In, Out any](input fiber.Outcome[In]) fiber.Outcome[Out] {
	var out fiber.Outcome[Out]
	switch input.Kind() {
	case fiber.KindCompleted:
		var zero Out
		out = fiber.Complete(zero)
	case fiber.KindFailed:
		out = fiber.Fail[Out](input.Err(), input.Suppressed()...)
	case fiber.KindTerminated:
		out = fiber.Terminate[Out](input.Causes()...)
	default:
		return out
	}
	return restamp(out, input)
}

// ZipWith merges two outcomes. Both completed: combine is applied. Any
// terminated: the result is terminated with the causes of both sides, left
// first. Otherwise the left-most failure wins and a failure on the right is
// kept among its suppressed causes.
func ZipWith[A, B, C any](left fiber.Outcome[A], right fiber.Outcome[B],
	combine func(A, B) C) fiber.Outcome[C] {

	var out fiber.Outcome[C]

	switch {
	case left.IsEmpty() || right.IsEmpty():
		return out
	case left.IsTerminated() || right.IsTerminated():
		causes := fiber.AppendCauses(contribution(left), contribution(right)...)
		out = fiber.Terminate[C](causes...)
	case left.IsFailed() && right.IsFailed():
		suppressed := fiber.AppendCauses(left.Suppressed(), contribution(right)...)
		out = fiber.Fail[C](left.Err(), suppressed...)
	case left.IsFailed():
		out = fiber.Fail[C](left.Err(), left.Suppressed()...)
	case right.IsFailed():
		out = fiber.Fail[C](right.Err(), right.Suppressed()...)
	default:
		out = fiber.Complete(combine(left.Value(), right.Value()))
	}

	return out.Stamp(uuid.Nil).At(later(left, right))
}

func Zip[A, B any](left fiber.Outcome[A], right fiber.Outcome[B]) fiber.Outcome[Pair[A, B]] {
	return ZipWith(left, right, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

func Fold[In, Out any](input fiber.Outcome[In],
	onCompleted func(In) Out,
	onFailed func(err error, suppressed []fiber.Cause) Out,
	onTerminated func(causes []fiber.Cause) Out) Out {

	switch input.Kind() {
	case fiber.KindCompleted:
		return onCompleted(input.Value())
	case fiber.KindFailed:
		return onFailed(input.Err(), input.Suppressed())
	case fiber.KindTerminated:
		return onTerminated(input.Causes())
	default:
		return onFailed(fiber.ErrEmptyOutcome, nil)
	}
}

// contribution is what one side adds to a merged cause list.
func contribution[A any](o fiber.Outcome[A]) []fiber.Cause {
	switch o.Kind() {
	case fiber.KindFailed:
		return fiber.AppendCauses([]fiber.Cause{fiber.Failure(o.Err()).From(o.FiberID())}, o.Suppressed()...)
	case fiber.KindTerminated:
		return o.Causes()
	default:
		return nil
	}
}

func restamp[A, B any](out fiber.Outcome[A], from fiber.Outcome[B]) fiber.Outcome[A] {
	return out.Stamp(from.FiberID()).At(from.ResolvedAt())
}

func later[A, B any](left fiber.Outcome[A], right fiber.Outcome[B]) time.Time {
	if left.ResolvedAt().After(right.ResolvedAt()) {
		return left.ResolvedAt()
	}
	return right.ResolvedAt()
}
