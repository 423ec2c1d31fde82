// Package kv implements the durable key/value layer backing local state:
// the journal snapshot and the credential keys both live here.
package kv

import (
	"context"
)

// Repository describes the operations the durable key/value layer supports.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
