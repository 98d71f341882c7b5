package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// RegisterRequest creates a player. An empty PlayerID is assigned a UUID.
type RegisterRequest struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Platform string `json:"platform"`
}

// Service defines the interface for player operations
type Service interface {
	RegisterPlayer(ctx context.Context, req RegisterRequest) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	// Register subscribes cache invalidation to upgrade events
	Register(bus event.Bus)
}

// CacheConfig sizes the player view cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	repo     Repository
	eventBus event.Bus
	rules    config.UpgradeRules
	cache    *playerCache
}

// NewService creates a new player service
func NewService(repo Repository, eventBus event.Bus, rules config.UpgradeRules, cacheCfg CacheConfig) Service {
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = DefaultCacheSize
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		eventBus: eventBus,
		rules:    rules,
		cache:    newPlayerCache(cacheCfg.Size, cacheCfg.TTL),
	}
}

// RegisterPlayer creates the player with the configured starter weapon and sigils
func (s *service) RegisterPlayer(ctx context.Context, req RegisterRequest) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterPlayerCalled, "player_id", req.PlayerID, "username", req.Username)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		playerID = uuid.NewString()
	}
	if len(playerID) > MaxPlayerIDLength || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: player_id or username too long", domain.ErrInvalidInput)
	}
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if platform == "" {
		platform = domain.PlatformAPI
	}

	starter := s.rules.Starter
	player := &domain.Player{
		PlayerID:  playerID,
		Username:  username,
		Platform:  platform,
		Weapon:    domain.NewWeapon(starter.WeaponName, starter.StartingLevel, s.rules.GlowLevel),
		Inventory: domain.Inventory{SigilProtection: starter.Sigils},
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		log.Warn("Failed to create player", "player_id", playerID, "error", err)
		return nil, err
	}
	s.cache.Set(player)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewPlayerRegisteredEvent(*player)); err != nil {
			log.Warn("Failed to publish player registered event", "player_id", playerID, "error", err)
		}
	}

	log.Info(LogMsgPlayerRegistered, "player_id", playerID, "weapon_level", player.Weapon.UpgradeLevel)
	return player, nil
}

// GetPlayer returns the player's weapon and inventory, served from cache when fresh
func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if p, ok := s.cache.Get(playerID); ok {
		log.Debug(LogMsgPlayerCacheHit, "player_id", playerID)
		return p, nil
	}

	gen := s.cache.Generation(playerID)
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !s.cache.SetIfCurrent(p, gen) {
		log.Debug(LogMsgPlayerCacheFillSkipped, "player_id", playerID)
	}
	return p, nil
}

func (s *service) Register(bus event.Bus) {
	bus.Subscribe(event.UpgradeAttempted, s.handleUpgradeAttempted)
}

func (s *service) handleUpgradeAttempted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.UpgradeAttemptedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode upgrade payload: %w", err)
	}
	s.cache.Invalidate(payload.PlayerID)
	logger.FromContext(ctx).Debug(LogMsgPlayerCacheEvicted, "player_id", payload.PlayerID)
	return nil
}
