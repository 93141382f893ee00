package paysdk

import (
	"context"
	"time"
)

// PollCondition decides whether a fetched snapshot satisfies a poll.
type PollCondition func(*PayRequest) bool

// fetchFunc retrieves the current pay request snapshot.
type fetchFunc func(ctx context.Context) (*PayRequest, error)

// pollSpec fixes the cadence and attempt budget of one poll.
type pollSpec struct {
	interval    time.Duration
	maxAttempts int
}

// pollForResult repeatedly fetches until cond matches, sleeping interval
// between attempts and giving up after spec.maxAttempts.
//
// The two non-matching outcomes are distinct and both load-bearing:
//
//   - a non-nil error means the state could not be observed at all (the
//     fetch failed or the pay secret was rejected) and is a hard stop,
//     never retried;
//   - a nil error with a snapshot whose condition never matched means the
//     attempt budget ran out; the caller inspects the final status to
//     decide whether that is a timeout.
func pollForResult(ctx context.Context, fetch fetchFunc, cond PollCondition, spec pollSpec) (*PayRequest, error) {
	var last *PayRequest
	for attempt := 0; attempt < spec.maxAttempts; attempt++ {
		snapshot, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if cond(snapshot) {
			return snapshot, nil
		}
		last = snapshot
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(spec.interval):
		}
	}
	return last, nil
}
