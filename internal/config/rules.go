package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/validation"
)

var rulesValidator = validation.NewSchemaValidator()

// StarterKit is what a newly registered player receives
type StarterKit struct {
	WeaponName    string `yaml:"weapon_name"`
	StartingLevel int    `yaml:"starting_level"`
	Sigils        int    `yaml:"sigils"`
}

// UpgradeRules are the tunable constants of the upgrade game
type UpgradeRules struct {
	MaxLevel  int        `yaml:"max_level"`
	GlowLevel int        `yaml:"glow_level"`
	Starter   StarterKit `yaml:"starter"`
	// ChanceOverrides replaces the stock success chance for specific target levels
	ChanceOverrides map[int]float64 `yaml:"chance_overrides,omitempty"`
}

// DefaultUpgradeRules returns the observed production constants
func DefaultUpgradeRules() UpgradeRules {
	return UpgradeRules{
		MaxLevel:  domain.DefaultMaxUpgradeLevel,
		GlowLevel: domain.DefaultGlowLevel,
		Starter: StarterKit{
			WeaponName:    domain.DefaultStarterWeaponName,
			StartingLevel: domain.DefaultStartingLevel,
			Sigils:        domain.DefaultStartingSigils,
		},
	}
}

// LoadUpgradeRules reads the rules file at path. Fields the file omits keep
// their defaults, and a missing file yields the defaults unchanged. The file
// is checked against the bundled schema first, so misspelled keys fail loudly
// instead of silently keeping a default.
func LoadUpgradeRules(path string) (UpgradeRules, error) {
	rules := DefaultUpgradeRules()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return rules, nil
	}
	if err != nil {
		return UpgradeRules{}, fmt.Errorf("read upgrade rules %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return UpgradeRules{}, fmt.Errorf("parse upgrade rules %s: %w", path, err)
	}
	if err := rulesValidator.ValidateYAML(data, validation.UpgradeRulesSchema); err != nil {
		return UpgradeRules{}, fmt.Errorf("invalid upgrade rules %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return UpgradeRules{}, fmt.Errorf("invalid upgrade rules %s: %w", path, err)
	}
	return rules, nil
}

// Validate checks every level against the hard cap and rejects negative sigils
func (r UpgradeRules) Validate() error {
	var errs []error

	if r.MaxLevel < 1 || r.MaxLevel > domain.DefaultMaxUpgradeLevel {
		errs = append(errs, fmt.Errorf("max_level must be in 1..%d, got %d", domain.DefaultMaxUpgradeLevel, r.MaxLevel))
	}
	if r.GlowLevel < 1 || r.GlowLevel > r.MaxLevel {
		errs = append(errs, fmt.Errorf("glow_level must be in 1..max_level, got %d", r.GlowLevel))
	}
	if r.Starter.StartingLevel < domain.MinUpgradeLevel || r.Starter.StartingLevel > r.MaxLevel {
		errs = append(errs, fmt.Errorf("starter.starting_level must be in %d..max_level, got %d", domain.MinUpgradeLevel, r.Starter.StartingLevel))
	}
	if r.Starter.Sigils < 0 {
		errs = append(errs, fmt.Errorf("starter.sigils must not be negative, got %d", r.Starter.Sigils))
	}
	if r.Starter.WeaponName == "" {
		errs = append(errs, errors.New("starter.weapon_name must not be empty"))
	}
	for lvl, p := range r.ChanceOverrides {
		if lvl < 1 || lvl > r.MaxLevel {
			errs = append(errs, fmt.Errorf("chance_overrides: level %d outside 1..max_level", lvl))
		}
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("chance_overrides: level %d has chance %v outside [0,1]", lvl, p))
		}
	}

	return errors.Join(errs...)
}
