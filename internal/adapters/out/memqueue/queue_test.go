package memqueue_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/adapters/out/memqueue"
	"kirana/internal/core/ports"
)

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := memqueue.New(2)

	first := ports.Notification{ID: uuid.New()}
	second := ports.Notification{ID: uuid.New()}

	require.NoError(t, q.Enqueue(first))
	require.NoError(t, q.Enqueue(second))

	got := <-q.Dequeue()
	assert.Equal(t, first.ID, got.ID)
	got = <-q.Dequeue()
	assert.Equal(t, second.ID, got.ID)
}

func TestQueue_EnqueueNeverBlocks(t *testing.T) {
	q := memqueue.New(1)

	require.NoError(t, q.Enqueue(ports.Notification{ID: uuid.New()}))

	err := q.Enqueue(ports.Notification{ID: uuid.New()})
	require.ErrorIs(t, err, memqueue.ErrQueueFull)
}

func TestQueue_Close(t *testing.T) {
	q := memqueue.New(2)
	pending := ports.Notification{ID: uuid.New()}
	require.NoError(t, q.Enqueue(pending))

	q.Close()

	t.Run("enqueue after close fails", func(t *testing.T) {
		require.ErrorIs(t, q.Enqueue(ports.Notification{ID: uuid.New()}), memqueue.ErrQueueClosed)
	})

	t.Run("pending notifications stay readable", func(t *testing.T) {
		got, ok := <-q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, pending.ID, got.ID)

		_, ok = <-q.Dequeue()
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		q.Close()
	})
}
