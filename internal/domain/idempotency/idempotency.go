// Package idempotency stores request keys so that replayed mutating requests
// are rejected instead of applied twice.
package idempotency

import (
	"context"
	"errors"
)

var ErrDuplicateKey = errors.New("idempotency key already used")

type Repository interface {
	// Register records (companyID, key). A second call with the same pair
	// returns ErrDuplicateKey.
	Register(ctx context.Context, companyID, key string) error

	// Release frees a registered pair so the request can be retried after
	// the guarded operation failed.
	Release(ctx context.Context, companyID, key string) error
}
