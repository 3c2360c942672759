package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "caresync:queue:"
	// Idempotency keys are scoped to a calendar day at most, so remembering
	// them for two days is enough to collapse duplicates while keeping the
	// dedupe set bounded.
	defaultDedupeTTL = 48 * time.Hour
)

// envelope is the wire record a consumer pops off a queue list.
type envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	Opts       Options         `json:"opts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// RedisClient enqueues jobs onto Redis lists, one list per logical queue.
// Duplicate submissions collapse via SET NX on the job's idempotency key:
// the first submission wins the key and pushes the envelope, later ones
// see the key taken and return without pushing.
type RedisClient struct {
	rdb       redis.UniversalClient
	prefix    string
	dedupeTTL time.Duration
}

// NewRedisClient creates a queue client on an already-connected Redis client.
func NewRedisClient(rdb redis.UniversalClient) *RedisClient {
	return &RedisClient{
		rdb:       rdb,
		prefix:    defaultKeyPrefix,
		dedupeTTL: defaultDedupeTTL,
	}
}

// WithPrefix overrides the Redis key prefix (mainly for shared instances).
func (c *RedisClient) WithPrefix(prefix string) *RedisClient {
	c.prefix = prefix
	return c
}

// Enqueue submits a job to its domain's queue. Returns nil when the job is
// recognized as a duplicate of an earlier submission.
func (c *RedisClient) Enqueue(ctx context.Context, job Job) error {
	if job.Opts.IdempotencyKey == "" {
		return fmt.Errorf("enqueue %s: empty idempotency key", job.Domain.QueueName())
	}

	dedupeKey := c.prefix + "dedupe:" + job.Opts.IdempotencyKey
	fresh, err := c.rdb.SetNX(ctx, dedupeKey, 1, c.dedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("dedupe check for %s: %w", job.Opts.IdempotencyKey, err)
	}
	if !fresh {
		// Already enqueued for this occurrence, possibly by another replica.
		return nil
	}

	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", job.Opts.IdempotencyKey, err)
	}

	data, err := json.Marshal(envelope{
		ID:         uuid.NewString(),
		Type:       job.Type,
		Payload:    payload,
		Opts:       job.Opts,
		EnqueuedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal envelope for %s: %w", job.Opts.IdempotencyKey, err)
	}

	if err := c.rdb.LPush(ctx, c.prefix+job.Domain.QueueName(), data).Err(); err != nil {
		// Release the dedupe key so the next sweep can retry inside the
		// due window instead of losing the occurrence outright.
		c.rdb.Del(context.WithoutCancel(ctx), dedupeKey)
		return fmt.Errorf("push to %s: %w", job.Domain.QueueName(), err)
	}
	return nil
}
