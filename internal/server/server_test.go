package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/database/memory"
	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/forge"
	"github.com/osse101/SigilForge_Go/internal/player"
)

const testAPIKey = "test-key"

// newTestRouter wires the real services over the memory store with an engine
// that always succeeds
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	bus := event.NewMemoryBus()

	engine := forge.NewEngine(forge.DefaultRules(), nil, forge.FixedSource(0))
	forgeSvc := forge.NewService(store, nil, engine, bus, forge.DefaultConfig())
	playerSvc := player.NewService(store, bus, config.DefaultUpgradeRules(), player.CacheConfig{})
	playerSvc.Register(bus)

	return NewRouter(
		Options{APIKey: testAPIKey, Version: "test"},
		Services{Forge: forgeSvc, Players: playerSvc, Rules: engine.Rules()},
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RegisterUpgradeView(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/players/register", `{"player_id":"p1","username":"hero"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/players/register", `{"player_id":"p1","username":"hero"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Player already registered")

	// Warm the view cache so the upgrade event has something to evict
	rec = do(t, h, http.MethodGet, "/api/v1/players/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/upgrade", `{"player_id":"p1","item_type":"weapon"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var outcome map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, true, outcome["success"])
	assert.Equal(t, float64(domain.DefaultStartingLevel+1), outcome["new_upgrade_level"])
	assert.Equal(t, true, outcome["glow"])

	rec = do(t, h, http.MethodGet, "/api/v1/players/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Player
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, domain.DefaultStartingLevel+1, p.Weapon.UpgradeLevel)
	assert.True(t, p.Weapon.Glow)
}

func TestRouter_ErrorStatuses(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, "/api/v1/players/register", `{"player_id":"p1","username":"hero"}`).Code)

	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodPost, "/api/v1/upgrade", `{"player_id":"ghost","item_type":"weapon"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, "/api/v1/upgrade", `{"player_id":"p1","item_type":"armor"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodGet, "/api/v1/players/ghost", "").Code)
}

func TestRouter_AuthAndPublicRoutes(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/upgrade/chances", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_Chances(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/upgrade/chances", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		MaxLevel int                 `json:"max_level"`
		Chances  []forge.ChanceEntry `json:"chances"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.DefaultMaxUpgradeLevel, body.MaxLevel)
	require.Len(t, body.Chances, domain.DefaultMaxUpgradeLevel)
	assert.Equal(t, 1, body.Chances[0].TargetLevel)
}
