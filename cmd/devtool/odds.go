package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/forge"
)

type OddsCommand struct{}

func (c *OddsCommand) Name() string {
	return "odds"
}

func (c *OddsCommand) Description() string {
	return "Print the success chance per level for a rules file (default RULES_PATH)"
}

func (c *OddsCommand) Run(ctx context.Context, args []string) error {
	path := getEnv("RULES_PATH", config.ConfigPathUpgradeRules)
	if len(args) > 0 {
		path = args[0]
	}

	engine, err := engineFromRules(path, nil)
	if err != nil {
		return err
	}

	PrintHeader("Upgrade odds: " + path)
	fmt.Print(formatOdds(engine))
	return nil
}

func engineFromRules(path string, rnd forge.RandomSource) (*forge.Engine, error) {
	rules, err := config.LoadUpgradeRules(path)
	if err != nil {
		return nil, err
	}
	return forge.NewEngine(
		forge.Rules{MaxLevel: rules.MaxLevel, GlowLevel: rules.GlowLevel},
		forge.WithOverrides(forge.SuccessChance, rules.ChanceOverrides),
		rnd,
	), nil
}

func formatOdds(engine *forge.Engine) string {
	var sb strings.Builder
	glow := engine.Rules().GlowLevel
	for _, e := range engine.Odds() {
		bar := strings.Repeat("█", int(e.Chance*20+0.5))
		marker := ""
		if e.TargetLevel >= glow {
			marker = " glow"
		}
		fmt.Fprintf(&sb, "  +%-2d %6.1f%%  %-20s%s\n", e.TargetLevel, e.Chance*100, bar, marker)
	}
	return sb.String()
}
