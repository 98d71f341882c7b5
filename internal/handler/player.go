package handler

import (
	"net/http"

	"github.com/osse101/SigilForge_Go/internal/logger"
	"github.com/osse101/SigilForge_Go/internal/player"
)

// RegisterPlayerRequest is the body of POST /players/register
type RegisterPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"max=64"`
	Username string `json:"username" validate:"required,max=50"`
	Platform string `json:"platform" validate:"platform"`
}

// HandleRegisterPlayer creates a player with the starter weapon and sigils
// @Summary Register player
// @Description Create a player with the starter weapon and inventory. An empty player_id is assigned one.
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Player details"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse "Invalid input or already registered"
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/players/register [post]
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, err := svc.RegisterPlayer(r.Context(), player.RegisterRequest{
			PlayerID: req.PlayerID,
			Username: req.Username,
			Platform: req.Platform,
		})
		if err != nil {
			respondServiceError(w, r, "register player", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgPlayerCreated, "player_id", p.PlayerID, "platform", p.Platform)
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleGetPlayer returns the player's weapon and inventory
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/players/{playerID} [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}

		p, err := svc.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "get player", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}
