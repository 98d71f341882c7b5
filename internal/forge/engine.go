package forge

import (
	"fmt"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// Rules are the tunable limits of the upgrade state machine
type Rules struct {
	// MaxLevel is the terminal cap; attempts at or above it are rejected
	MaxLevel int
	// GlowLevel is the level from which a weapon glows. Failures at or above
	// it are punished (sigil or downgrade); failures below it are free.
	GlowLevel int
}

// DefaultRules returns the stock limits
func DefaultRules() Rules {
	return Rules{
		MaxLevel:  domain.DefaultMaxUpgradeLevel,
		GlowLevel: domain.DefaultGlowLevel,
	}
}

// Engine resolves a single upgrade attempt. It holds no per-player state and
// is safe for concurrent use as long as its RandomSource is.
type Engine struct {
	rules  Rules
	chance ChanceFunc
	rnd    RandomSource
}

// NewEngine creates an engine. A nil chance func uses SuccessChance and a nil
// source uses DefaultSource.
func NewEngine(rules Rules, chance ChanceFunc, rnd RandomSource) *Engine {
	if chance == nil {
		chance = SuccessChance
	}
	if rnd == nil {
		rnd = DefaultSource()
	}
	return &Engine{rules: rules, chance: chance, rnd: rnd}
}

// Rules returns the engine's limits
func (e *Engine) Rules() Rules {
	return e.rules
}

// Attempt applies one upgrade attempt to the given weapon and inventory and
// returns the resulting pair plus an outcome report. At most one of
// {upgrade level, sigil count} changes per call.
func (e *Engine) Attempt(weapon domain.Weapon, inventory domain.Inventory, req domain.UpgradeRequest) (domain.Weapon, domain.Inventory, domain.UpgradeOutcome) {
	current := weapon.UpgradeLevel

	if current >= e.rules.MaxLevel {
		return weapon, inventory, domain.UpgradeOutcome{
			Success: false,
			Glow:    weapon.Glow,
			Message: domain.MsgMaxLevelReached,
			Result:  domain.OutcomeMaxLevel,
		}
	}

	target := current + 1
	if e.rnd.Float64() < e.chance(target) {
		weapon.SetLevel(target, e.rules.GlowLevel)
		return weapon, inventory, domain.UpgradeOutcome{
			Success:         true,
			NewUpgradeLevel: intPtr(target),
			Glow:            weapon.Glow,
			Message:         fmt.Sprintf(domain.MsgUpgradeSuccess, weapon.Name, target),
			Result:          domain.OutcomeSuccess,
		}
	}

	// Failures below the glow tier cost nothing
	if current < e.rules.GlowLevel {
		return weapon, inventory, domain.UpgradeOutcome{
			Success: false,
			Glow:    weapon.Glow,
			Message: fmt.Sprintf(domain.MsgUpgradeFailed, weapon.Name, current),
			Result:  domain.OutcomeFailed,
		}
	}

	if req.UseSigil && inventory.ConsumeSigil() {
		return weapon, inventory, domain.UpgradeOutcome{
			Success: false,
			Glow:    weapon.Glow,
			Message: fmt.Sprintf(domain.MsgProtectedBySigil, weapon.Name, inventory.SigilProtection),
			Result:  domain.OutcomeProtected,
		}
	}

	lowered := current - 1
	weapon.SetLevel(lowered, e.rules.GlowLevel)
	return weapon, inventory, domain.UpgradeOutcome{
		Success:         false,
		NewUpgradeLevel: intPtr(lowered),
		Glow:            weapon.Glow,
		Message:         fmt.Sprintf(domain.MsgUpgradeDowngraded, weapon.Name, lowered),
		Result:          domain.OutcomeDowngraded,
	}
}

func intPtr(v int) *int {
	return &v
}

// Odds lists the success chance of every reachable target level
func (e *Engine) Odds() []ChanceEntry {
	entries := make([]ChanceEntry, 0, e.rules.MaxLevel)
	for lvl := 1; lvl <= e.rules.MaxLevel; lvl++ {
		entries = append(entries, ChanceEntry{TargetLevel: lvl, Chance: e.chance(lvl)})
	}
	return entries
}
