package fiber

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindCompleted
	KindFailed
	KindTerminated
)

func (k Kind) String() string {
	switch k {
	case KindCompleted:
		return "completed"
	case KindFailed:
		return "failed"
	case KindTerminated:
		return "terminated"
	default:
		return "empty"
	}
}

// Outcome is the terminal result of a fiber. Exactly one of Completed,
// Failed or Terminated holds; the zero value is empty and never produced by
// a resolved fiber.
type Outcome[A any] struct {
	kind       Kind
	value      A
	err        error
	suppressed []Cause
	causes     []Cause
	fiberID    uuid.UUID
	resolvedAt time.Time
}

func Complete[A any](v A) Outcome[A] {
	return Outcome[A]{
		kind:       KindCompleted,
		value:      v,
		resolvedAt: time.Now().UTC(),
	}
}

// Fail builds a Failed outcome. A nil err is replaced by ErrNilFailure so
// that Get never reports success for a failure.
func Fail[A any](err error, suppressed ...Cause) Outcome[A] {
	if err == nil {
		err = ErrNilFailure
	}
	return Outcome[A]{
		kind:       KindFailed,
		err:        err,
		suppressed: AppendCauses(nil, suppressed...),
		resolvedAt: time.Now().UTC(),
	}
}

// Terminate builds a Terminated outcome. With no causes it records a single
// interruption whose reason is ErrInterrupted.
func Terminate[A any](causes ...Cause) Outcome[A] {
	if len(causes) == 0 {
		causes = []Cause{Interruption(ErrInterrupted)}
	}
	return Outcome[A]{
		kind:       KindTerminated,
		causes:     AppendCauses(nil, causes...),
		resolvedAt: time.Now().UTC(),
	}
}

// Stamp returns a copy of o bound to the fiber that produced it.
func (o Outcome[A]) Stamp(id uuid.UUID) Outcome[A] {
	o.fiberID = id
	return o
}

// At returns a copy of o with the given resolution time.
func (o Outcome[A]) At(t time.Time) Outcome[A] {
	o.resolvedAt = t
	return o
}

func (o Outcome[A]) Kind() Kind {
	return o.kind
}

func (o Outcome[A]) Value() A {
	return o.value
}

func (o Outcome[A]) Err() error {
	return o.err
}

func (o Outcome[A]) Suppressed() []Cause {
	return slices.Clone(o.suppressed)
}

func (o Outcome[A]) Causes() []Cause {
	return slices.Clone(o.causes)
}

func (o Outcome[A]) IsCompleted() bool {
	return o.kind == KindCompleted
}

func (o Outcome[A]) IsFailed() bool {
	return o.kind == KindFailed
}

func (o Outcome[A]) IsTerminated() bool {
	return o.kind == KindTerminated
}

func (o Outcome[A]) IsEmpty() bool {
	return o.kind == KindEmpty
}

func (o Outcome[A]) FiberID() uuid.UUID {
	return o.fiberID
}

func (o Outcome[A]) ResolvedAt() time.Time {
	return o.resolvedAt
}

// Get translates the outcome the way Join does: the value for Completed, the
// fiber's own error for Failed and a *TerminatedError for Terminated.
func (o Outcome[A]) Get() (A, error) {
	var zero A
	switch o.kind {
	case KindCompleted:
		return o.value, nil
	case KindFailed:
		return zero, o.err
	case KindTerminated:
		return zero, &TerminatedError{FiberID: o.fiberID, Causes: o.Causes()}
	default:
		return zero, ErrEmptyOutcome
	}
}
