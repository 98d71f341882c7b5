package repository

import "context"

// Forge is the storage surface the upgrade transaction needs
type Forge interface {
	BeginTx(ctx context.Context) (Tx, error)
}
