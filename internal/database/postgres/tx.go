package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// upgradeTx holds row locks on one player's weapon and inventory until it ends.
// FOR UPDATE cannot be applied to the nullable side of an outer join, so the
// two rows are locked by separate statements.
type upgradeTx struct {
	tx pgx.Tx
}

func (t *upgradeTx) GetUpgradeStateForUpdate(ctx context.Context, playerID string) (*domain.UpgradeState, error) {
	state := domain.UpgradeState{PlayerID: playerID}

	err := t.tx.QueryRow(ctx, queryLockWeapon, playerID).Scan(
		&state.Weapon.Name, &state.Weapon.UpgradeLevel, &state.Weapon.Glow, &state.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, t.missingWeapon(ctx, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockWeapon, mapTxErr(err))
	}

	err = t.tx.QueryRow(ctx, queryLockInventory, playerID).Scan(&state.Inventory.SigilProtection)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventory, mapTxErr(err))
	}

	return &state, nil
}

// missingWeapon tells an unknown player apart from a player without a weapon row
func (t *upgradeTx) missingWeapon(ctx context.Context, playerID string) error {
	var exists bool
	if err := t.tx.QueryRow(ctx, queryPlayerExists, playerID).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, mapTxErr(err))
	}
	if !exists {
		return domain.ErrPlayerNotFound
	}
	return domain.ErrWeaponNotFound
}

// SaveUpgradeState writes both rows. The weapon update is guarded by the
// version read earlier; a miss means another writer got there first.
func (t *upgradeTx) SaveUpgradeState(ctx context.Context, state domain.UpgradeState) error {
	tag, err := t.tx.Exec(ctx, queryUpdateWeapon,
		state.PlayerID, state.Weapon.UpgradeLevel, state.Weapon.Glow, state.Version)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateWeapon, mapTxErr(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: player %s no longer at version %d",
			domain.ErrConcurrentWriteConflict, state.PlayerID, state.Version)
	}

	if _, err := t.tx.Exec(ctx, queryUpdateInventory, state.PlayerID, state.Inventory.SigilProtection); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInv, mapTxErr(err))
	}
	return nil
}

func (t *upgradeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapTxErr(err)
	}
	return nil
}

func (t *upgradeTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

// mapTxErr normalizes pgx's closed-tx error to domain.ErrTxClosed
func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}
