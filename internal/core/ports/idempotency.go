package ports

import "context"

// IdempotencyStore tracks which appointment a client-supplied Idempotency-Key
// produced. A create reserves the key, inserts, then completes the key with
// the new id, so two concurrent requests with one key cannot both insert.
type IdempotencyStore interface {
	// Reserve claims key. It returns done=true with the stored id when an
	// earlier create already completed, done=false when the caller now owns
	// the key, and domain.ErrIdempotencyInProgress while another create holds it.
	Reserve(ctx context.Context, key string) (id int64, done bool, err error)
	// Complete records id for a key the caller reserved.
	Complete(ctx context.Context, key string, id int64) error
	// Release drops a reservation whose create failed.
	Release(ctx context.Context, key string) error
}
