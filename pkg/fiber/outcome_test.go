package fiber

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Get(t *testing.T) {
	t.Parallel()

	o := Complete(5)

	assert.True(t, o.IsCompleted())
	assert.Equal(t, KindCompleted, o.Kind())
	assert.False(t, o.ResolvedAt().IsZero())

	v, err := o.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

type codeError struct{ code int }

func (e *codeError) Error() string { return "code error" }

func TestFail_GetReturnsSameError(t *testing.T) {
	t.Parallel()

	expected := &codeError{code: 7}
	o := Fail[int](expected, Defect(errors.New("finalizer")))

	assert.True(t, o.IsFailed())
	require.Len(t, o.Suppressed(), 1)
	assert.Equal(t, CauseDefect, o.Suppressed()[0].Kind())

	_, err := o.Get()
	assert.Same(t, expected, err)

	var ce *codeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 7, ce.code)
}

func TestTerminate_DefaultCause(t *testing.T) {
	t.Parallel()

	o := Terminate[string]()

	require.Len(t, o.Causes(), 1)
	assert.Equal(t, CauseInterruption, o.Causes()[0].Kind())
	assert.ErrorIs(t, o.Causes()[0].Err(), ErrInterrupted)
}

func TestTerminate_GetReturnsTerminatedError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	id := uuid.New()
	o := Terminate[int](Defect(boom), Interruption(nil)).Stamp(id)

	_, err := o.Get()
	require.Error(t, err)
	assert.True(t, IsTerminated(err))
	assert.ErrorIs(t, err, boom)

	causes := TerminationCauses(err)
	require.Len(t, causes, 2)
	assert.Equal(t, CauseDefect, causes[0].Kind())
	assert.Equal(t, CauseInterruption, causes[1].Kind())
	assert.Contains(t, err.Error(), id.String())
	assert.Contains(t, err.Error(), "defect: boom")
}

func TestEmpty_Get(t *testing.T) {
	t.Parallel()

	var o Outcome[int]
	assert.True(t, o.IsEmpty())

	_, err := o.Get()
	assert.ErrorIs(t, err, ErrEmptyOutcome)
}

func TestOutcome_SlicesAreCopies(t *testing.T) {
	t.Parallel()

	o := Terminate[int](Defect(errors.New("a")))
	causes := o.Causes()
	causes[0] = Interruption(nil)

	assert.Equal(t, CauseDefect, o.Causes()[0].Kind())
}

func TestStamp_KeepsOriginal(t *testing.T) {
	t.Parallel()

	o := Complete("x")
	id := uuid.New()
	stamped := o.Stamp(id)

	assert.Equal(t, uuid.Nil, o.FiberID())
	assert.Equal(t, id, stamped.FiberID())
	assert.Equal(t, o.ResolvedAt(), stamped.ResolvedAt())
}
