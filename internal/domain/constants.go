package domain

// Item types accepted by the upgrade endpoint
const (
	ItemTypeWeapon = "weapon"
)

// Upgrade rule defaults. The service reads its live values from config.UpgradeRules;
// these are the fallbacks used when no rules file is present.
const (
	DefaultMaxUpgradeLevel   = 15
	DefaultGlowLevel         = 11
	DefaultStartingLevel     = 10
	DefaultStartingSigils    = 1
	DefaultStarterWeaponName = "Brandish"

	// MinUpgradeLevel is the lowest level a weapon can hold
	MinUpgradeLevel = 0
)

// Platform names a player can register from
const (
	PlatformAPI     = "api"
	PlatformDiscord = "discord"
)
