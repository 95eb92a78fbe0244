package fiber

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTerminated   = errors.New("fiber: terminated")
	ErrInterrupted  = errors.New("fiber: interrupted")
	ErrEmptyOutcome = errors.New("fiber: empty outcome")
	ErrNilFailure   = errors.New("fiber: failed with nil error")
)

// TerminatedError is what Join reports for a Terminated outcome. It is not
// meant to be recovered by ordinary application logic.
type TerminatedError struct {
	FiberID uuid.UUID
	Causes  []Cause
}

func (e *TerminatedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrTerminated.Error())
	if e.FiberID != uuid.Nil {
		b.WriteString(" ")
		b.WriteString(e.FiberID.String())
	}
	for i, c := range e.Causes {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Unwrap exposes ErrTerminated followed by the errors of interruption and
// defect causes. Failure causes stay reachable only through Causes so that a
// terminated join never matches an application error.
func (e *TerminatedError) Unwrap() []error {
	errs := []error{ErrTerminated}
	for _, c := range e.Causes {
		if c.err != nil && c.kind != CauseFailure {
			errs = append(errs, c.err)
		}
	}
	return errs
}

// IsTerminated reports whether err came from a Terminated outcome.
func IsTerminated(err error) bool {
	return errors.Is(err, ErrTerminated)
}

// TerminationCauses returns the causes carried by a termination error, or nil.
func TerminationCauses(err error) []Cause {
	var te *TerminatedError
	if errors.As(err, &te) {
		return te.Causes
	}
	return nil
}

// GetErrors flattens one level of a multi-error (Unwrap() []error). A nil
// error yields an empty slice.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err stems from a context being
// cancelled or timing out.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
