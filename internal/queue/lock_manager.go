package queue

import "context"

// LockManager serializes timeline generation per user. The engine itself is
// idempotent but not atomic against races, so the host takes a short lock
// around each generation call.
type LockManager interface {
	// AcquireUserLock returns true when the lock was taken, false when
	// another generation holds it.
	AcquireUserLock(ctx context.Context, userID string) (bool, error)

	ReleaseUserLock(ctx context.Context, userID string) error
}
