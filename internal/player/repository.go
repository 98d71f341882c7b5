package player

import (
	"github.com/osse101/SigilForge_Go/internal/repository"
)

// Repository is a local interface for player repository operations
type Repository interface {
	repository.Player
}
