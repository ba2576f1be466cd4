package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"commonhub/internal/logger"
	"commonhub/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "booking_events"
	failedQueueKey = "booking_events:failed"
	maxAttempts    = 3
)

type job struct {
	Event   Event     `json:"event"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Queue is a redis-list outbox in front of the publisher. Enqueue never
// talks to Kafka, so a broker outage does not fail a booking request.
type Queue struct {
	redis        *redis.Client
	publisher    Publisher
	retryDelay   time.Duration
	errorBackoff time.Duration
	wait         func(ctx context.Context, d time.Duration) bool
}

func NewQueue(rdb *redis.Client, publisher Publisher) *Queue {
	return &Queue{
		redis:        rdb,
		publisher:    publisher,
		retryDelay:   5 * time.Second,
		errorBackoff: 5 * time.Second,
		wait:         sleep,
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (q *Queue) Enqueue(ctx context.Context, e Event) error {
	data, err := json.Marshal(job{Event: e, Created: time.Now()})
	if err != nil {
		logger.Errorf("Failed to marshal booking event: %v", err)
		return err
	}

	if err := q.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Error("Failed to queue booking event", "type", e.Type, "booking_id", e.BookingID, "error", err)
		return err
	}

	logger.Debug("Booking event queued", "type", e.Type, "booking_id", e.BookingID)
	return nil
}

// Start drains the queue until ctx is cancelled. Redis errors pause the
// worker for errorBackoff before the next poll.
func (q *Queue) Start(ctx context.Context) {
	logger.Info("Booking event worker started")

	for ctx.Err() == nil {
		if err := q.processNext(ctx); err != nil {
			logger.Warn("Booking event queue unavailable", "error", err, "retry_in", q.errorBackoff)
			if !q.wait(ctx, q.errorBackoff) {
				break
			}
		}
	}

	logger.Info("Booking event worker stopped")
}

// processNext handles at most one job. It returns an error only when the
// queue itself could not be read; an empty poll is not an error.
func (q *Queue) processNext(ctx context.Context) error {
	result, err := q.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || ctx.Err() != nil {
			return nil
		}
		return err
	}

	var j job
	if err := json.Unmarshal([]byte(result[1]), &j); err != nil {
		logger.Errorf("Bad booking event data: %v", err)
		return nil
	}

	// Requeue and failure bookkeeping must survive worker shutdown.
	bg := context.WithoutCancel(ctx)

	j.Tries++
	if err := q.publisher.Publish(ctx, j.Event); err != nil {
		logger.Error("Failed to publish booking event",
			"event_id", j.Event.ID, "type", j.Event.Type, "attempt", j.Tries, "error", err)

		if j.Tries < maxAttempts {
			q.wait(ctx, q.retryDelay)
			q.push(bg, queueKey, j.Event, j)
			return nil
		}

		metrics.RecordEventPublished(string(j.Event.Type), false)
		q.saveFailed(bg, j, err)
		return nil
	}

	metrics.RecordEventPublished(string(j.Event.Type), true)
	logger.Debug("Booking event published", "event_id", j.Event.ID, "type", j.Event.Type)
	return nil
}

func (q *Queue) saveFailed(ctx context.Context, j job, err error) {
	failed := map[string]interface{}{
		"job":   j,
		"error": err.Error(),
		"time":  time.Now(),
	}
	if q.push(ctx, failedQueueKey, j.Event, failed) {
		logger.Error("Booking event moved to failed queue", "event_id", j.Event.ID, "attempts", j.Tries)
	}
}

// push writes v to key. An event that cannot be written back is logged in
// full and counted as lost.
func (q *Queue) push(ctx context.Context, key string, e Event, v interface{}) bool {
	data, err := json.Marshal(v)
	if err == nil {
		err = q.redis.LPush(ctx, key, data).Err()
	}
	if err != nil {
		metrics.RecordEventLost(string(e.Type))
		logger.Error("Booking event lost",
			"queue", key, "event_id", e.ID, "type", e.Type, "booking_id", e.BookingID, "error", err)
		return false
	}
	return true
}

func (q *Queue) QueueLength(ctx context.Context) int64 {
	length, _ := q.redis.LLen(ctx, queueKey).Result()
	return length
}

func (q *Queue) Close() error {
	return q.publisher.Close()
}
