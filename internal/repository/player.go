package repository

import (
	"context"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// CreatePlayer stores a player together with their weapon and inventory.
	// Returns domain.ErrPlayerAlreadyExists when the id is taken.
	CreatePlayer(ctx context.Context, player *domain.Player) error
	// GetPlayer returns domain.ErrPlayerNotFound for an unknown id
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	Forge
}
