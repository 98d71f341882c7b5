package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/repository"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts the player row with their weapon and inventory in one transaction
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer rollbackCreate(ctx, tx, player.PlayerID)

	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}

	if _, err := tx.Exec(ctx, queryInsertPlayer,
		player.PlayerID, player.Username, player.Platform, player.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerAlreadyExists, player.PlayerID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}

	w := player.Weapon
	if _, err := tx.Exec(ctx, queryInsertWeapon, player.PlayerID, w.Name, w.UpgradeLevel, w.Glow); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertWeapon, err)
	}

	if _, err := tx.Exec(ctx, queryInsertInventory, player.PlayerID, player.Inventory.SigilProtection); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertInv, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// GetPlayer returns the player with weapon and inventory
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx, queryGetPlayer, playerID).Scan(
		&p.PlayerID, &p.Username, &p.Platform, &p.CreatedAt,
		&p.Weapon.Name, &p.Weapon.UpgradeLevel, &p.Weapon.Glow,
		&p.Inventory.SigilProtection,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return &p, nil
}

// BeginTx starts an upgrade transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &upgradeTx{tx: tx}, nil
}
