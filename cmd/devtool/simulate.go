package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/forge"
)

// pcgSource is a seeded, reproducible forge.RandomSource
type pcgSource struct {
	r *rand.Rand
}

func newPCGSource(seed uint64) *pcgSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// simParams describes one batch of simulated climbs
type simParams struct {
	From        int
	To          int
	Sigils      int
	UseSigil    bool
	Runs        int
	MaxAttempts int
}

// simResult aggregates a batch
type simResult struct {
	Reached     int
	Attempts    int
	SigilsSpent int
	Downgrades  int
}

// simulate climbs from p.From toward p.To p.Runs times
func simulate(engine *forge.Engine, p simParams) simResult {
	var res simResult
	glow := engine.Rules().GlowLevel

	for run := 0; run < p.Runs; run++ {
		var weapon domain.Weapon
		weapon.SetLevel(p.From, glow)
		inv := domain.Inventory{SigilProtection: p.Sigils}
		req := domain.UpgradeRequest{ItemType: domain.ItemTypeWeapon, UseSigil: p.UseSigil}

	climb:
		for i := 0; i < p.MaxAttempts && weapon.UpgradeLevel < p.To; i++ {
			var outcome domain.UpgradeOutcome
			weapon, inv, outcome = engine.Attempt(weapon, inv, req)
			res.Attempts++
			switch outcome.Result {
			case domain.OutcomeProtected:
				res.SigilsSpent++
			case domain.OutcomeDowngraded:
				res.Downgrades++
			case domain.OutcomeMaxLevel:
				break climb
			}
		}
		if weapon.UpgradeLevel >= p.To {
			res.Reached++
		}
	}
	return res
}

type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Monte Carlo the cost of climbing between two levels"
}

func (c *SimulateCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	rulesPath := fs.String("rules", getEnv("RULES_PATH", config.ConfigPathUpgradeRules), "rules file")
	p := simParams{}
	fs.IntVar(&p.From, "from", domain.DefaultStartingLevel, "starting level")
	fs.IntVar(&p.To, "to", domain.DefaultMaxUpgradeLevel, "target level")
	fs.IntVar(&p.Sigils, "sigils", domain.DefaultStartingSigils, "sigils held at the start of each run")
	fs.BoolVar(&p.UseSigil, "use-sigil", true, "spend sigils on failures")
	fs.IntVar(&p.Runs, "runs", 10000, "number of simulated climbs")
	fs.IntVar(&p.MaxAttempts, "max-attempts", 10000, "give up a climb after this many attempts")
	seed := fs.Uint64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if p.Runs <= 0 || p.From < domain.MinUpgradeLevel || p.To <= p.From {
		return fmt.Errorf("need runs > 0 and %d <= from < to", domain.MinUpgradeLevel)
	}

	engine, err := engineFromRules(*rulesPath, newPCGSource(*seed))
	if err != nil {
		return err
	}

	res := simulate(engine, p)

	PrintHeader(fmt.Sprintf("Simulated +%d → +%d over %d runs", p.From, p.To, p.Runs))
	fmt.Printf("  reached target:   %.1f%%\n", 100*float64(res.Reached)/float64(p.Runs))
	fmt.Printf("  attempts per run: %.1f\n", float64(res.Attempts)/float64(p.Runs))
	fmt.Printf("  sigils per run:   %.2f\n", float64(res.SigilsSpent)/float64(p.Runs))
	fmt.Printf("  downgrades/run:   %.2f\n", float64(res.Downgrades)/float64(p.Runs))
	return nil
}
