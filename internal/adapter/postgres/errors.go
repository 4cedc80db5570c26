package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cpc-billing/internal/core/port"
)

// SQLSTATE codes that a retry of the whole click can resolve.
var transientCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
	"57014": {}, // query_canceled (statement or lock timeout)
}

// classify marks contention and timeout failures with port.ErrTransientStore.
// Any other error, including the engine's own rejections, is returned as is.
func classify(err error) error {
	if err == nil || errors.Is(err, port.ErrTransientStore) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if _, ok := transientCodes[pgErr.Code]; ok {
			return fmt.Errorf("%w: %w", port.ErrTransientStore, err)
		}
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", port.ErrTransientStore, err)
	}
	return err
}
