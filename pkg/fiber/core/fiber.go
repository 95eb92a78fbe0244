package core

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/ib-77/fiber/pkg/fiber"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicError is the defect recorded when a fiber body panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fiber: panic: %v", e.Value)
}

// Unwrap returns the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Fiber is a body running on its own goroutine together with the slot its
// outcome is written to.
type Fiber[A any] struct {
	id     uuid.UUID
	name   string
	slot   *Slot[A]
	cancel context.CancelCauseFunc
	logger *slog.Logger

	mu          sync.Mutex
	interrupted bool
	interrupts  []fiber.Cause
}

type attempt[A any] struct {
	value  A
	err    error
	defect error
}

// Fork starts body concurrently and returns a handle to it. The body context
// is a child of ctx: cancelling ctx interrupts the fiber.
func Fork[A any](ctx context.Context, body func(ctx context.Context) (A, error)) *Fiber[A] {
	id := uuid.New()
	name := GetName(ctx, "fiber")
	logger := GetLogger(ctx).With(slog.String("fiber", name), slog.String("fiber_id", id.String()))

	runCtx, span := GetTracer(ctx).Start(ctx, name,
		trace.WithAttributes(
			attribute.String("fiber.id", id.String()),
			attribute.String("fiber.name", name),
		))
	runCtx, cancel := context.WithCancelCause(runCtx)

	f := &Fiber[A]{
		id:     id,
		name:   name,
		slot:   NewSlot[A](),
		cancel: cancel,
		logger: logger,
	}

	logger.DebugContext(ctx, "fiber forked")

	go func() {
		defer span.End()
		defer cancel(nil)

		o := f.settle(runCtx, invoke(runCtx, body))
		record(span, o)
	}()

	return f
}

func invoke[A any](ctx context.Context, body func(ctx context.Context) (A, error)) (res attempt[A]) {
	defer func() {
		if r := recover(); r != nil {
			res = attempt[A]{defect: &PanicError{Value: r, Stack: debug.Stack()}}
		}
	}()

	value, err := body(ctx)
	return attempt[A]{value: value, err: err}
}

// settle turns the body's result into the fiber's outcome. An interruption
// requested before this point always wins over what the body returned.
func (f *Fiber[A]) settle(ctx context.Context, res attempt[A]) fiber.Outcome[A] {
	f.mu.Lock()
	defer f.mu.Unlock()

	var o fiber.Outcome[A]
	switch {
	case f.interrupted:
		causes := slices.Clone(f.interrupts)
		if res.defect != nil {
			causes = append(causes, fiber.Defect(res.defect).From(f.id))
		} else if res.err != nil && !fiber.IsCancellationError(res.err) {
			causes = append(causes, fiber.Failure(res.err).From(f.id))
		}
		o = fiber.Terminate[A](causes...)
	case res.defect != nil:
		f.logger.ErrorContext(ctx, "fiber panicked", slog.Any("panic", res.defect))
		o = fiber.Terminate[A](fiber.Defect(res.defect).From(f.id))
	case res.err != nil && ctx.Err() != nil && fiber.IsCancellationError(res.err):
		o = fiber.Terminate[A](fiber.Interruption(context.Cause(ctx)).From(f.id))
	case res.err != nil:
		o = fiber.Fail[A](res.err)
	default:
		o = fiber.Complete(res.value)
	}

	o = o.Stamp(f.id)
	f.slot.Resolve(o)
	f.logger.DebugContext(ctx, "fiber resolved", slog.String("outcome", o.Kind().String()))
	return o
}

func record[A any](span trace.Span, o fiber.Outcome[A]) {
	span.SetAttributes(attribute.String("fiber.outcome", o.Kind().String()))
	switch o.Kind() {
	case fiber.KindFailed:
		span.RecordError(o.Err())
		span.SetStatus(codes.Error, o.Err().Error())
	case fiber.KindTerminated:
		for _, c := range o.Causes() {
			span.AddEvent(c.Kind().String(), trace.WithAttributes(attribute.String("fiber.cause", c.String())))
		}
		span.SetStatus(codes.Error, fiber.KindTerminated.String())
	default:
		span.SetStatus(codes.Ok, "")
	}
}

func (f *Fiber[A]) ID() uuid.UUID {
	return f.id
}

func (f *Fiber[A]) Name() string {
	return f.name
}

// Done is closed once the fiber is resolved.
func (f *Fiber[A]) Done() <-chan struct{} {
	return f.slot.Done()
}

func (f *Fiber[A]) Observe(ctx context.Context) (fiber.Outcome[A], error) {
	return f.slot.Wait(ctx)
}

func (f *Fiber[A]) TryObserve() (fiber.Outcome[A], bool) {
	return f.slot.Poll()
}

func (f *Fiber[A]) Await(ctx context.Context) error {
	_, err := f.slot.Wait(ctx)
	return err
}

// Interrupt0 cancels the body and waits for it to return. Only the first
// request on an unresolved fiber decides the causes; later ones just wait.
func (f *Fiber[A]) Interrupt0(ctx context.Context, causes []fiber.Cause) error {
	f.mu.Lock()
	if _, ok := f.slot.Poll(); ok {
		f.mu.Unlock()
		return nil
	}
	if !f.interrupted {
		f.interrupted = true
		if len(causes) == 0 {
			f.interrupts = []fiber.Cause{fiber.Interruption(fiber.ErrInterrupted).From(f.id)}
		} else {
			f.interrupts = slices.Clone(causes)
		}
		f.cancel(fiber.ErrInterrupted)
		f.logger.DebugContext(ctx, "fiber interrupt requested", slog.Int("causes", len(f.interrupts)))
	}
	f.mu.Unlock()

	return f.Await(ctx)
}
