package domain

// Inventory holds a player's consumable charges
type Inventory struct {
	SigilProtection int `json:"sigil_protection"`
}

// HasSigil reports whether at least one protection charge is available
func (i Inventory) HasSigil() bool {
	return i.SigilProtection > 0
}

// ConsumeSigil removes one protection charge. Returns false, leaving the
// inventory untouched, when no charge is left.
func (i *Inventory) ConsumeSigil() bool {
	if i.SigilProtection <= 0 {
		return false
	}
	i.SigilProtection--
	return true
}
