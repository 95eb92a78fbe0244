package fiber

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminatedError_HidesFailureCauses(t *testing.T) {
	t.Parallel()

	appErr := errors.New("not found")
	defect := errors.New("defect")
	o := Terminate[int](Failure(appErr), Defect(defect), Interruption(ErrInterrupted))

	_, err := o.Get()
	require.True(t, IsTerminated(err))
	assert.False(t, errors.Is(err, appErr))
	assert.ErrorIs(t, err, defect)
	assert.ErrorIs(t, err, ErrInterrupted)

	causes := TerminationCauses(err)
	require.Len(t, causes, 3)
	assert.Equal(t, CauseFailure, causes[0].Kind())
	assert.Equal(t, appErr, causes[0].Err())
}

func TestFail_NilErrorIsNormalised(t *testing.T) {
	t.Parallel()

	o := Fail[int](nil)

	require.True(t, o.IsFailed())
	assert.ErrorIs(t, o.Err(), ErrNilFailure)

	_, err := o.Get()
	assert.ErrorIs(t, err, ErrNilFailure)
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))

	_, err := Terminate[int](Defect(a)).Get()
	assert.Equal(t, []error{ErrTerminated, a}, GetErrors(err))
}
