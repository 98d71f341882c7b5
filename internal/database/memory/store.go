// Package memory is an in-process player store. Writes are optimistic: each
// save carries the version it read and loses to any commit that landed since.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/repository"
)

type record struct {
	player    domain.Player
	hasWeapon bool
	hasInv    bool
	version   int64
}

// Store implements repository.Player in memory
type Store struct {
	mu      sync.RWMutex
	players map[string]*record
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{players: make(map[string]*record)}
}

// CreatePlayer stores the player with its weapon and inventory
func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[player.PlayerID]; exists {
		return domain.ErrPlayerAlreadyExists
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	s.players[player.PlayerID] = &record{player: *player, hasWeapon: true, hasInv: true, version: 1}
	return nil
}

// GetPlayer returns a copy of the stored player
func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	if !rec.hasWeapon {
		return nil, domain.ErrWeaponNotFound
	}
	if !rec.hasInv {
		return nil, domain.ErrInventoryNotFound
	}
	p := rec.player
	return &p, nil
}

// DropWeapon removes a player's weapon record, leaving a half-provisioned player
func (s *Store) DropWeapon(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.players[playerID]; ok {
		rec.hasWeapon = false
	}
}

// BeginTx starts an optimistic transaction
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	return &tx{store: s}, nil
}

type tx struct {
	store   *Store
	pending *domain.UpgradeState
	closed  bool
}

func (t *tx) GetUpgradeStateForUpdate(ctx context.Context, playerID string) (*domain.UpgradeState, error) {
	if t.closed {
		return nil, domain.ErrTxClosed
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	rec, ok := t.store.players[playerID]
	switch {
	case !ok:
		return nil, domain.ErrPlayerNotFound
	case !rec.hasWeapon:
		return nil, domain.ErrWeaponNotFound
	case !rec.hasInv:
		return nil, domain.ErrInventoryNotFound
	}
	return &domain.UpgradeState{
		PlayerID:  playerID,
		Weapon:    rec.player.Weapon,
		Inventory: rec.player.Inventory,
		Version:   rec.version,
	}, nil
}

func (t *tx) SaveUpgradeState(ctx context.Context, state domain.UpgradeState) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	if err := t.store.checkVersion(state); err != nil {
		return err
	}
	t.pending = &state
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	if t.pending == nil {
		return nil
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[t.pending.PlayerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	if rec.version != t.pending.Version {
		return fmt.Errorf("%w: player %s at version %d, tx read %d",
			domain.ErrConcurrentWriteConflict, t.pending.PlayerID, rec.version, t.pending.Version)
	}
	rec.player.Weapon = t.pending.Weapon
	rec.player.Inventory = t.pending.Inventory
	rec.version++
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.pending = nil
	return nil
}

func (s *Store) checkVersion(state domain.UpgradeState) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[state.PlayerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	if rec.version != state.Version {
		return fmt.Errorf("%w: player %s at version %d, tx read %d",
			domain.ErrConcurrentWriteConflict, state.PlayerID, rec.version, state.Version)
	}
	return nil
}
