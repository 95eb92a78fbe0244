package core

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/fiber/pkg/fiber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_SingleWriter(t *testing.T) {
	t.Parallel()

	slot := NewSlot[int]()
	var wins atomic.Int32
	wg := &sync.WaitGroup{}

	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if slot.Resolve(fiber.Complete(i)) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	first, ok := slot.Poll()
	require.True(t, ok)
	second, err := slot.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlot_PollPending(t *testing.T) {
	t.Parallel()

	slot := NewSlot[int]()
	_, ok := slot.Poll()
	assert.False(t, ok)
}

func TestSlot_WaitHonoursContext(t *testing.T) {
	t.Parallel()

	slot := NewSlot[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := slot.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSlot_WaitResolvedWithDoneContext(t *testing.T) {
	t.Parallel()

	slot := NewSlot[int]()
	slot.Resolve(fiber.Complete(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o, err := slot.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Value())
}
