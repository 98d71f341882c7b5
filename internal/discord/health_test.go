package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandStats(t *testing.T) {
	stats := NewCommandStats()
	assert.True(t, stats.LastCommand().IsZero())

	stats.Record()
	stats.Record()
	stats.Record()

	assert.Equal(t, int64(3), stats.Count())
	assert.WithinDuration(t, time.Now(), stats.LastCommand(), time.Second)
}

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	bot := &Bot{Session: tc.Session, Client: tc.APIClient, Stats: NewCommandStats()}
	bot.Stats.Record()
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var health HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, StatusDegraded, health.Status)
	assert.False(t, health.Connected)
	assert.True(t, health.APIReachable)
	assert.Equal(t, int64(1), health.CommandsReceived)
}

func TestHandleHealth_Healthy(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	tc.Session.DataReady = true

	srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var health HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, StatusHealthy, health.Status)
}
