package utils

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// GuardQuery races op against the deadline and returns fallback if the
// deadline wins or op fails. The losing op is abandoned, not cancelled, so a
// slow datastore call may still complete after the fallback was returned.
// Callers must treat guarded results as best-effort snapshots and must not
// guard writes whose completion is required for correctness.
func GuardQuery[T any](ctx context.Context, timeout time.Duration, fallback T, op func(ctx context.Context) (T, error)) T {
	type outcome struct {
		value T
		err   error
	}

	ch := make(chan outcome, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)

	go func() {
		defer cancel()
		v, err := op(opCtx)
		ch <- outcome{value: v, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			log.Warn().Err(out.err).Msg("guarded query failed, using fallback")
			return fallback
		}
		return out.value
	case <-time.After(timeout):
		log.Warn().Dur("timeout", timeout).Msg("guarded query timed out, using fallback")
		return fallback
	}
}
