package fiber

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxCauses bounds the causes kept by a single outcome. Anything past it is
// counted into one trailing truncation marker.
const MaxCauses = 64

type CauseKind int

const (
	CauseInterruption CauseKind = iota
	CauseDefect
	CauseFailure
	CauseTruncated
)

func (k CauseKind) String() string {
	switch k {
	case CauseInterruption:
		return "interruption"
	case CauseDefect:
		return "defect"
	case CauseFailure:
		return "failure"
	case CauseTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("cause(%d)", int(k))
	}
}

// Cause describes why a fiber terminated, or a secondary failure kept next to
// a primary one.
type Cause struct {
	kind    CauseKind
	err     error
	fiberID uuid.UUID
	dropped int
}

// Interruption records an interruption request. A nil reason means the
// reason is unspecified.
func Interruption(reason error) Cause {
	return Cause{kind: CauseInterruption, err: reason}
}

func Defect(err error) Cause {
	return Cause{kind: CauseDefect, err: err}
}

// Failure folds a recoverable error into a cause list.
func Failure(err error) Cause {
	return Cause{kind: CauseFailure, err: err}
}

func truncated(dropped int) Cause {
	return Cause{kind: CauseTruncated, dropped: dropped}
}

// From returns a copy of c attributed to the given fiber.
func (c Cause) From(id uuid.UUID) Cause {
	c.fiberID = id
	return c
}

func (c Cause) Kind() CauseKind {
	return c.kind
}

func (c Cause) Err() error {
	return c.err
}

func (c Cause) FiberID() uuid.UUID {
	return c.fiberID
}

// Dropped is the number of causes a truncation marker stands for.
func (c Cause) Dropped() int {
	return c.dropped
}

func (c Cause) String() string {
	switch {
	case c.kind == CauseTruncated:
		return fmt.Sprintf("truncated: %d more causes", c.dropped)
	case c.err == nil:
		return c.kind.String()
	default:
		return fmt.Sprintf("%s: %v", c.kind, c.err)
	}
}

// AppendCauses merges src after dst into a fresh slice, keeping at most
// MaxCauses causes plus a single truncation marker carrying the count of
// everything dropped, markers already present in dst or src included.
func AppendCauses(dst []Cause, src ...Cause) []Cause {
	if len(dst)+len(src) == 0 {
		return nil
	}

	out := make([]Cause, 0, min(len(dst)+len(src), MaxCauses+1))
	dropped := 0
	add := func(c Cause) {
		if c.kind == CauseTruncated {
			dropped += c.dropped
			return
		}
		if len(out) >= MaxCauses {
			dropped++
			return
		}
		out = append(out, c)
	}

	for _, c := range dst {
		add(c)
	}
	for _, c := range src {
		add(c)
	}

	if dropped > 0 {
		out = append(out, truncated(dropped))
	}
	return out
}
