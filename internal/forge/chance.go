package forge

// SuccessChance returns the probability that an upgrade to targetLevel succeeds.
// targetLevel is the level being attempted (current level + 1). The table is
// total: anything at or below GuaranteedUpTo always succeeds and anything past
// ChanceTableMaxLevel never does.
func SuccessChance(targetLevel int) float64 {
	switch {
	case targetLevel <= GuaranteedUpTo:
		return 1.0
	case targetLevel <= MidTierUpTo:
		return midTierChances[targetLevel-MidTierStart]
	case targetLevel <= ChanceTableMaxLevel:
		return highTierChances[targetLevel-MidTierUpTo-1]
	default:
		return 0.0
	}
}

// ChanceFunc maps a target level to a success probability
type ChanceFunc func(targetLevel int) float64

// ChanceEntry is one row of the published odds table
type ChanceEntry struct {
	TargetLevel int     `json:"target_level"`
	Chance      float64 `json:"chance"`
}

// ChanceTable lists the success chance for every target level in [from, to]
func ChanceTable(from, to int) []ChanceEntry {
	if to < from {
		return []ChanceEntry{}
	}
	entries := make([]ChanceEntry, 0, to-from+1)
	for lvl := from; lvl <= to; lvl++ {
		entries = append(entries, ChanceEntry{TargetLevel: lvl, Chance: SuccessChance(lvl)})
	}
	return entries
}

// WithOverrides returns base with the given target levels replaced.
// An empty map returns base unchanged.
func WithOverrides(base ChanceFunc, overrides map[int]float64) ChanceFunc {
	if len(overrides) == 0 {
		return base
	}
	table := make(map[int]float64, len(overrides))
	for lvl, p := range overrides {
		table[lvl] = p
	}
	return func(targetLevel int) float64 {
		if p, ok := table[targetLevel]; ok {
			return p
		}
		return base(targetLevel)
	}
}
