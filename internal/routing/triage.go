package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// TriageQueueKey is the Redis list holding signals awaiting manual operator
// routing.
const TriageQueueKey = "triage:signals"

// TriageItem is one signal parked for manual routing because no partner
// could take it automatically.
type TriageItem struct {
	SignalID     string    `json:"signalId"`
	Jurisdiction string    `json:"jurisdiction"`
	Capabilities []string  `json:"capabilities"`
	Reason       string    `json:"reason"`
	QueuedAt     time.Time `json:"queuedAt"`
}

// TriageQueue accepts signals that automatic routing could not place.
type TriageQueue interface {
	Enqueue(ctx context.Context, item *TriageItem) error
}

// RedisTriageQueue is a Redis-backed FIFO triage queue.
type RedisTriageQueue struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewRedisTriageQueue creates a triage queue on the given Redis client.
func NewRedisTriageQueue(client rueidis.Client, logger *zap.Logger) *RedisTriageQueue {
	return &RedisTriageQueue{
		client: client,
		logger: logger.Named("triage_queue"),
	}
}

// Enqueue appends the item to the triage queue.
func (q *RedisTriageQueue) Enqueue(ctx context.Context, item *TriageItem) error {
	data, err := sonic.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode triage item: %w", err)
	}

	cmd := q.client.B().Lpush().Key(TriageQueueKey).Element(string(data)).Build()
	if err := q.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to enqueue triage item: %w", err)
	}

	q.logger.Info("Queued signal for manual triage",
		zap.String("signalID", item.SignalID),
		zap.String("jurisdiction", item.Jurisdiction))

	return nil
}

// Dequeue pops the oldest triage item, returning nil when the queue is empty.
func (q *RedisTriageQueue) Dequeue(ctx context.Context) (*TriageItem, error) {
	cmd := q.client.B().Rpop().Key(TriageQueueKey).Build()

	data, err := q.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to dequeue triage item: %w", err)
	}

	var item TriageItem
	if err := sonic.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode triage item: %w", err)
	}

	return &item, nil
}

// Len reports the number of items awaiting triage.
func (q *RedisTriageQueue) Len(ctx context.Context) (int64, error) {
	cmd := q.client.B().Llen().Key(TriageQueueKey).Build()

	length, err := q.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to read triage queue length: %w", err)
	}

	return length, nil
}
