package domain

// UpgradeRequest is a single upgrade attempt
type UpgradeRequest struct {
	PlayerID string `json:"player_id"`
	ItemType string `json:"item_type"`
	UseSigil bool   `json:"use_sigil"`
}

// OutcomeResult classifies what an upgrade attempt did to the player's state
type OutcomeResult string

const (
	OutcomeSuccess    OutcomeResult = "success"
	OutcomeMaxLevel   OutcomeResult = "max_level"
	OutcomeProtected  OutcomeResult = "protected"
	OutcomeDowngraded OutcomeResult = "downgraded"
	OutcomeFailed     OutcomeResult = "failed"
)

// UpgradeOutcome is returned to the requester.
// NewUpgradeLevel is set only when the weapon level changed.
type UpgradeOutcome struct {
	Success         bool          `json:"success"`
	NewUpgradeLevel *int          `json:"new_upgrade_level,omitempty"`
	Glow            bool          `json:"glow"`
	Message         string        `json:"message"`
	Result          OutcomeResult `json:"-"`
}

// Outcome messages
const (
	MsgUpgradeSuccess    = "Upgrade success! %s is now +%d"
	MsgMaxLevelReached   = "Max level reached"
	MsgProtectedBySigil  = "Upgrade failed, but %s was protected by Sigil (%d left)"
	MsgUpgradeDowngraded = "Upgrade failed! %s dropped to +%d"
	MsgUpgradeFailed     = "Upgrade failed. %s stays at +%d"
)
