package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/forge"
)

func TestPlayerIDFor(t *testing.T) {
	assert.Equal(t, "discord-42", PlayerIDFor("42"))
}

func TestAPIClient_RegisterPlayer(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("POST /api/v1/players/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "discord-123", body["player_id"])
		assert.Equal(t, "Tester", body["username"])
		assert.Equal(t, domain.PlatformDiscord, body["platform"])

		WriteJSON(w, http.StatusCreated, domain.Player{
			PlayerID:  body["player_id"],
			Username:  body["username"],
			Weapon:    domain.Weapon{Name: "brandish", UpgradeLevel: 10},
			Inventory: domain.Inventory{SigilProtection: 1},
		})
	})

	p, err := tc.APIClient.RegisterPlayer(context.Background(), "123", "Tester")
	require.NoError(t, err)
	assert.Equal(t, "discord-123", p.PlayerID)
	assert.Equal(t, 10, p.Weapon.UpgradeLevel)
	assert.Equal(t, 1, p.Inventory.SigilProtection)
}

func TestAPIClient_RegisterPlayer_Duplicate(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("POST /api/v1/players/register", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Player already registered"})
	})

	_, err := tc.APIClient.RegisterPlayer(context.Background(), "123", "Tester")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadRequest))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Player already registered", apiErr.Message)
}

func TestAPIClient_Upgrade(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("POST /api/v1/upgrade", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "discord-123", body["player_id"])
		assert.Equal(t, domain.ItemTypeWeapon, body["item_type"])
		assert.Equal(t, true, body["use_sigil"])

		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success":           true,
			"new_upgrade_level": 11,
			"glow":              true,
			"message":           "Upgrade success! Brandish is now +11",
		})
	})

	outcome, err := tc.APIClient.Upgrade(context.Background(), "123", true)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	require.NotNil(t, outcome.NewUpgradeLevel)
	assert.Equal(t, 11, *outcome.NewUpgradeLevel)
	assert.True(t, outcome.Glow)
}

func TestAPIClient_Upgrade_RetriesBusy(t *testing.T) {
	tc := SetupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/upgrade", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "The forge is busy. Please try again."})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"success": false, "glow": false, "message": "Upgrade failed. Brandish stays at +3"})
	})

	outcome, err := tc.APIClient.Upgrade(context.Background(), "123", false)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_Upgrade_DoesNotRetryServerError(t *testing.T) {
	tc := SetupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/upgrade", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	})

	_, err := tc.APIClient.Upgrade(context.Background(), "123", false)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIClient_GetRetriesUntilExhausted(t *testing.T) {
	tc := SetupTestContext(t)

	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/upgrade/chances", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := tc.APIClient.GetChances(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Equal(t, int32(DefaultMaxRetries+1), calls.Load())
}

func TestAPIClient_GetPlayer(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("GET /api/v1/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "discord-123" {
			WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
			return
		}
		WriteJSON(w, http.StatusOK, domain.Player{
			PlayerID:  "discord-123",
			Username:  "Tester",
			Weapon:    domain.Weapon{Name: "brandish", UpgradeLevel: 12, Glow: true},
			Inventory: domain.Inventory{SigilProtection: 2},
		})
	})

	p, err := tc.APIClient.GetPlayer(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, 12, p.Weapon.UpgradeLevel)
	assert.True(t, p.Weapon.Glow)

	_, err = tc.APIClient.GetPlayer(context.Background(), "999")
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestAPIClient_GetChances(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("GET /api/v1/upgrade/chances", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, ChancesResponse{
			MaxLevel:  15,
			GlowLevel: 11,
			Chances:   []forge.ChanceEntry{{TargetLevel: 1, Chance: 1}, {TargetLevel: 15, Chance: 0.05}},
		})
	})

	c, err := tc.APIClient.GetChances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, c.MaxLevel)
	assert.Len(t, c.Chances, 2)
}

func TestAPIClient_ContextCancelledDuringBackoff(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.RetryDelay = DefaultRetryDelay

	ctx, cancel := context.WithCancel(context.Background())
	tc.Mux.HandleFunc("GET /api/v1/upgrade/chances", func(w http.ResponseWriter, r *http.Request) {
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := tc.APIClient.GetChances(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIClient_Ping(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	assert.NoError(t, tc.APIClient.Ping(context.Background()))

	down := NewAPIClient(tc.Server.URL+"/missing", "")
	assert.Error(t, down.Ping(context.Background()))
}
