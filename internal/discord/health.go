package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// Health statuses
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

const apiPingTimeout = 2 * time.Second

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

// CommandStats counts handled commands
type CommandStats struct {
	started  time.Time
	count    atomic.Int64
	lastUnix atomic.Int64
}

// NewCommandStats starts the uptime clock
func NewCommandStats() *CommandStats {
	return &CommandStats{started: time.Now()}
}

// Record counts one command
func (c *CommandStats) Record() {
	c.count.Add(1)
	c.lastUnix.Store(time.Now().UnixNano())
}

// Count returns the number of commands handled
func (c *CommandStats) Count() int64 {
	return c.count.Load()
}

// LastCommand returns when the latest command arrived, or zero
func (c *CommandStats) LastCommand() time.Time {
	n := c.lastUnix.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// Uptime returns how long the stats have been collected
func (c *CommandStats) Uptime() time.Duration {
	return time.Since(c.started)
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), apiPingTimeout)
		apiReachable = h.bot.Client.Ping(ctx) == nil
		cancel()
	}

	health := HealthStatus{
		Status:       StatusHealthy,
		Connected:    connected,
		APIReachable: apiReachable,
	}
	if h.bot.Stats != nil {
		health.Uptime = h.bot.Stats.Uptime().Round(time.Second).String()
		health.CommandsReceived = h.bot.Stats.Count()
		health.LastCommandTime = h.bot.Stats.LastCommand()
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = StatusDegraded
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	// Headers are already sent; nothing useful to do on encode failure
	_ = json.NewEncoder(w).Encode(health)
}
