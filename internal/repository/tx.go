package repository

import (
	"context"
	"errors"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// Tx defines the interface for the upgrade transaction.
// State read through GetUpgradeStateForUpdate stays locked for this Tx until
// Commit or Rollback.
type Tx interface {
	GetUpgradeStateForUpdate(ctx context.Context, playerID string) (*domain.UpgradeState, error)
	SaveUpgradeState(ctx context.Context, state domain.UpgradeState) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is meant to be deferred right after BeginTx. Once the Tx has
// committed the rollback reports domain.ErrTxClosed, which is expected and
// not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback upgrade transaction", "error", err)
}
