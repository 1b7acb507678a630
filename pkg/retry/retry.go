// Package retry runs actions repeatedly according to a set of strategies.
package retry

import (
	"context"
)

// Action is a function to be performed in a retriable manner.
type Action func() error

// Retrier retries the provided action.
type Retrier interface {
	Retry(ctx context.Context, action Action) (uint, error)
}

type retrier struct {
	strategies []Strategy
}

// NewRetrier returns a Retrier that will retry actions based off of the
// provided strategies. If no strategies are provided, the retrier acts
// as a tight-loop, retrying until no error is returned from the action
// or the context is done.
func NewRetrier(strategies ...Strategy) Retrier {
	return &retrier{
		strategies: strategies,
	}
}

// Retry executes the action, potentially multiple times based off of the
// retrier's strategies. Retry blocks until the action is successful, one of
// the strategies indicates no further retries should be performed, or ctx is
// done. In the last case the last action error is returned if there was one,
// otherwise the context error.
//
// The strategies are executed in the provided order, so any strategies that
// induce delays should be specified last.
func (r *retrier) Retry(ctx context.Context, action Action) (uint, error) {
	var lastErr error
	for i := uint(1); ; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return i - 1, lastErr
			}
			return i - 1, err
		}

		lastErr = action()
		if lastErr == nil {
			return i, nil
		}

		for _, s := range r.strategies {
			if shouldRetry := s(i, lastErr); !shouldRetry {
				return i, lastErr
			}
		}
	}
}
