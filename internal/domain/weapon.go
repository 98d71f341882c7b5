package domain

// Weapon is the single upgradable item a player owns.
// Glow is derived from UpgradeLevel; change the level through SetLevel so the
// two never drift apart.
type Weapon struct {
	Name         string `json:"name"`
	UpgradeLevel int    `json:"upgrade_level"`
	Glow         bool   `json:"glow"`
}

// NewWeapon creates a weapon at the given level with glow already computed
func NewWeapon(name string, level, glowLevel int) Weapon {
	w := Weapon{Name: name}
	w.SetLevel(level, glowLevel)
	return w
}

// SetLevel updates the upgrade level and recomputes glow
func (w *Weapon) SetLevel(level, glowLevel int) {
	w.UpgradeLevel = level
	w.Glow = level >= glowLevel
}
