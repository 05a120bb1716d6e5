// Package lock provides per-key mutual exclusion for the admission path.
// Two implementations exist: an in-process keyed mutex for single-instance
// deployments, and a Redis-backed lock for multi-replica deployments.
package lock

import "context"

// Locker serializes critical sections per key. Sections for different keys
// proceed independently.
type Locker interface {
	// Acquire blocks until the key's lock is held or ctx is done. The
	// returned release function must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
