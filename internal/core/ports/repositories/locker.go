package repositories

import "context"

// AccountLocker serialises writers on one trust account across service instances.
// It complements, never replaces, the database row lock.
type AccountLocker interface {
	// Lock blocks until the key is held or ctx is done. The returned function releases it.
	Lock(ctx context.Context, key string) (release func(context.Context), err error)
}
