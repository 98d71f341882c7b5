package handler

import (
	"net/http"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/forge"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// UpgradeRequest is the body of POST /upgrade
type UpgradeRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	ItemType string `json:"item_type" validate:"required,max=32"`
	UseSigil bool   `json:"use_sigil"`
}

// ChancesResponse lists the success chance per target level
type ChancesResponse struct {
	MaxLevel  int                 `json:"max_level"`
	GlowLevel int                 `json:"glow_level"`
	Chances   []forge.ChanceEntry `json:"chances"`
}

// HandleUpgrade performs one upgrade attempt on the player's weapon
// @Summary Upgrade weapon
// @Description Roll one upgrade attempt. Failing at glow tier costs a sigil when use_sigil is set and one is left, otherwise one level.
// @Tags forge
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Upgrade details"
// @Success 200 {object} domain.UpgradeOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player, weapon or inventory missing"
// @Failure 503 {object} ErrorResponse "Contention budget exhausted"
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/upgrade [post]
func HandleUpgrade(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade"); err != nil {
			return
		}

		outcome, err := svc.UpgradeWeapon(r.Context(), domain.UpgradeRequest{
			PlayerID: req.PlayerID,
			ItemType: req.ItemType,
			UseSigil: req.UseSigil,
		})
		if err != nil {
			respondServiceError(w, r, "upgrade", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgUpgradeHandled,
			"player_id", req.PlayerID,
			"result", outcome.Result)

		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleGetChances returns the odds table
// @Summary Upgrade odds
// @Description Success chance of reaching each target level
// @Tags forge
// @Produce json
// @Success 200 {object} ChancesResponse
// @Security ApiKeyAuth
// @Router /api/v1/upgrade/chances [get]
func HandleGetChances(svc forge.Service, rules forge.Rules) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ChancesResponse{
			MaxLevel:  rules.MaxLevel,
			GlowLevel: rules.GlowLevel,
			Chances:   svc.GetOdds(),
		})
	}
}
