package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuardQueryReturnsResult(t *testing.T) {
	got := GuardQuery(context.Background(), time.Second, "fallback", func(ctx context.Context) (string, error) {
		return "value", nil
	})

	assert.Equal(t, "value", got)
}

func TestGuardQueryFallbackOnTimeout(t *testing.T) {
	started := time.Now()
	got := GuardQuery(context.Background(), 20*time.Millisecond, 42, func(ctx context.Context) (int, error) {
		time.Sleep(500 * time.Millisecond)
		return 7, nil
	})

	assert.Equal(t, 42, got)
	assert.Less(t, time.Since(started), 300*time.Millisecond, "guard must not wait for the slow operation")
}

func TestGuardQueryFallbackOnError(t *testing.T) {
	got := GuardQuery(context.Background(), time.Second, "fallback", func(ctx context.Context) (string, error) {
		return "partial", errors.New("connection refused")
	})

	assert.Equal(t, "fallback", got)
}

func TestGuardQueryAbandonsWithoutCancelling(t *testing.T) {
	done := make(chan struct{})
	GuardQuery(context.Background(), 10*time.Millisecond, 0, func(ctx context.Context) (int, error) {
		go func() {
			time.Sleep(50 * time.Millisecond)
			close(done)
		}()
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})

	// The in-flight work keeps running after the fallback was returned.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("abandoned operation should still complete")
	}
}
