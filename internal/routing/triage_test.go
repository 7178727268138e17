package routing_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTriage(t *testing.T) (*routing.RedisTriageQueue, func()) {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	queue := routing.NewRedisTriageQueue(client, zap.NewNop())

	cleanup := func() {
		mr.Close()
		client.Close()
	}

	return queue, cleanup
}

func TestTriageQueueRoundTrip(t *testing.T) {
	t.Parallel()

	queue, cleanup := setupTriage(t)
	defer cleanup()

	ctx := t.Context()

	first := &routing.TriageItem{
		SignalID:     "signal-1",
		Jurisdiction: "US-CA",
		Capabilities: []string{"self_harm_response"},
		Reason:       "no matching partner",
		QueuedAt:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
	second := &routing.TriageItem{
		SignalID:     "signal-2",
		Jurisdiction: "GB",
		Reason:       "all matching partners failed",
		QueuedAt:     time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC),
	}

	require.NoError(t, queue.Enqueue(ctx, first))
	require.NoError(t, queue.Enqueue(ctx, second))

	length, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)

	// FIFO order: the oldest item comes out first.
	item, err := queue.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, first, item)

	item, err = queue.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, second.SignalID, item.SignalID)

	item, err = queue.Dequeue(ctx)
	require.NoError(t, err)
	assert.Nil(t, item)
}
