package player

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// Validation limits
const (
	MaxPlayerIDLength = 64
	MaxUsernameLength = 50
)

// Log messages
const (
	LogMsgRegisterPlayerCalled   = "RegisterPlayer called"
	LogMsgPlayerRegistered       = "Player registered"
	LogMsgPlayerCacheHit         = "Player cache hit"
	LogMsgPlayerCacheEvicted     = "Player cache entry invalidated"
	LogMsgPlayerCacheFillSkipped = "Player changed during read, not caching"
)
