package domain

import "time"

// Player owns exactly one Weapon and one Inventory, keyed by PlayerID
type Player struct {
	PlayerID  string    `json:"player_id"`
	Username  string    `json:"username"`
	Platform  string    `json:"platform"`
	Weapon    Weapon    `json:"weapon"`
	Inventory Inventory `json:"inventory"`
	CreatedAt time.Time `json:"created_at"`
}

// UpgradeState is the mutable snapshot read and written by one upgrade transaction.
// Version increases on every save and is used to detect concurrent writers.
type UpgradeState struct {
	PlayerID  string
	Weapon    Weapon
	Inventory Inventory
	Version   int64
}
