package forge

import (
	"github.com/osse101/SigilForge_Go/internal/repository"
)

// Repository is a local interface for forge repository operations.
// It embeds repository.Forge to enable mock generation in this package.
// Generated mock will be in internal/forge/mocks/mock_repository.go
type Repository interface {
	repository.Forge
}
