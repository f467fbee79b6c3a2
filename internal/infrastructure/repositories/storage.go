package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/marketsvc/domain"
)

// defaultTimeout bounds every storage call so a stalled database surfaces as
// a retryable error instead of a hung request.
const defaultTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}

// translateStorageErr maps context deadline and cancellation failures onto
// domain.ErrStorageUnavailable, keeping the transient class distinct from
// domain errors. Everything else passes through untouched.
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return err
}
