package queue

import (
	"context"
	"testing"
)

func TestMemoryLockManager_SerializesPerUser(t *testing.T) {
	locks := NewMemoryLockManager()
	ctx := context.Background()

	acquired, err := locks.AcquireUserLock(ctx, "user-1")
	if err != nil || !acquired {
		t.Fatalf("expected first acquire to succeed, acquired=%v err=%v", acquired, err)
	}

	acquired, err = locks.AcquireUserLock(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acquired {
		t.Fatal("expected second acquire on the same user to fail")
	}

	// A different user is independent.
	acquired, err = locks.AcquireUserLock(ctx, "user-2")
	if err != nil || !acquired {
		t.Fatalf("expected another user's acquire to succeed, acquired=%v err=%v", acquired, err)
	}

	if err := locks.ReleaseUserLock(ctx, "user-1"); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	acquired, err = locks.AcquireUserLock(ctx, "user-1")
	if err != nil || !acquired {
		t.Fatalf("expected acquire after release to succeed, acquired=%v err=%v", acquired, err)
	}
}
