package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	keyPrefix             = "idem:appointment:"

	// pendingValue marks a key whose create is still running. It expires
	// after pendingTTL so a crashed request does not pin the key.
	pendingValue = "pending"
	pendingTTL   = time.Minute
)

// IdempotencyStore maps client-supplied Idempotency-Key values to the id of
// the appointment they created.
// Key format: idem:appointment:<key>, value "pending" or the appointment id.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A ttl <= 0 falls back to 24h.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve claims key with SETNX. When the key is taken it reads the stored
// value: an id means the create already completed.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (int64, bool, error) {
	k := keyPrefix + key

	// A second attempt covers a pending reservation expiring between SETNX
	// and GET.
	for range 2 {
		claimed, err := s.client.SetNX(ctx, k, pendingValue, pendingTTL).Result()
		if err != nil {
			return 0, false, fmt.Errorf("idempotency reserve: %w", err)
		}
		if claimed {
			return 0, false, nil
		}

		v, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("idempotency reserve: %w", err)
		}
		if v == pendingValue {
			return 0, false, domain.ErrIdempotencyInProgress
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("idempotency reserve: corrupt value %q", v)
		}
		return id, true, nil
	}
	return 0, false, domain.ErrIdempotencyInProgress
}

// Complete replaces the reservation with id for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, id int64) error {
	if err := s.client.Set(ctx, keyPrefix+key, strconv.FormatInt(id, 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release deletes the reservation so the client can retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
