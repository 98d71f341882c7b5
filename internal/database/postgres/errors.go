package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/SigilForge_Go/internal/logger"
)

// rollbackCreate undoes a registration transaction. After Commit pgx answers
// ErrTxClosed, which is expected.
func rollbackCreate(ctx context.Context, tx pgx.Tx, playerID string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback registration", "player_id", playerID, "error", err)
	}
}

// isUniqueViolation reports a duplicate key, i.e. the player id is taken
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}
