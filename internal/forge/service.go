package forge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/SigilForge_Go/internal/concurrency"
	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/logger"
	"github.com/osse101/SigilForge_Go/internal/repository"
)

// Service defines the interface for weapon upgrade operations
type Service interface {
	UpgradeWeapon(ctx context.Context, req domain.UpgradeRequest) (*domain.UpgradeOutcome, error)
	GetOdds() []ChanceEntry
	Shutdown(ctx context.Context) error
}

// Config tunes the service's concurrency guards
type Config struct {
	// MaxRetries is how many times a conflicting write is re-run before giving up
	MaxRetries   int
	RetryBackoff time.Duration
	// LockWait bounds how long a request queues behind the same player. Zero waits for ctx.
	LockWait time.Duration
}

// DefaultConfig returns the stock retry policy
func DefaultConfig() Config {
	return Config{
		MaxRetries:   DefaultMaxRetries,
		RetryBackoff: DefaultRetryBackoff,
		LockWait:     DefaultLockWait,
	}
}

type service struct {
	repo     Repository
	locker   concurrency.Locker
	engine   *Engine
	eventBus event.Bus
	cfg      Config

	wg           sync.WaitGroup
	shuttingDown atomic.Bool
}

// attemptResult is what one committed transaction produced
type attemptResult struct {
	before  domain.UpgradeState
	after   domain.UpgradeState
	outcome domain.UpgradeOutcome
}

// NewService creates a new forge service. A nil locker falls back to an
// in-process LockManager and a nil bus disables events.
func NewService(repo Repository, locker concurrency.Locker, engine *Engine, eventBus event.Bus, cfg Config) Service {
	if locker == nil {
		locker = concurrency.NewLockManager()
	}
	if engine == nil {
		engine = NewEngine(DefaultRules(), nil, nil)
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &service{
		repo:     repo,
		locker:   locker,
		engine:   engine,
		eventBus: eventBus,
		cfg:      cfg,
	}
}

// UpgradeWeapon runs one upgrade attempt for the player as a single
// read-compute-write transaction, serialized per player.
func (s *service) UpgradeWeapon(ctx context.Context, req domain.UpgradeRequest) (*domain.UpgradeOutcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeCalled, "player_id", req.PlayerID, "item_type", req.ItemType, "use_sigil", req.UseSigil)

	if s.shuttingDown.Load() {
		return nil, domain.ErrServiceShuttingDown
	}
	s.wg.Add(1)
	defer s.wg.Done()

	if req.PlayerID == "" {
		return nil, fmt.Errorf("%w: player_id is required", domain.ErrInvalidInput)
	}
	if req.ItemType != domain.ItemTypeWeapon {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedItemType, req.ItemType)
	}

	unlock, err := s.acquire(ctx, req.PlayerID)
	if err != nil {
		log.Warn("Failed to acquire player lock", "player_id", req.PlayerID, "error", err)
		return nil, err
	}
	defer unlock()

	conflicts := 0
	for attempt := 0; ; attempt++ {
		res, err := s.attemptOnce(ctx, req)
		if err == nil {
			s.logOutcome(ctx, req, res)
			s.publish(ctx, req, res, conflicts)
			return &res.outcome, nil
		}
		if !errors.Is(err, domain.ErrConcurrentWriteConflict) {
			return nil, err
		}

		conflicts++
		if attempt >= s.cfg.MaxRetries {
			log.Warn(LogMsgRetriesExhausted, "player_id", req.PlayerID, "conflicts", conflicts)
			return nil, fmt.Errorf("%w after %d attempts: %w", domain.ErrUpgradeBusy, conflicts, err)
		}

		log.Warn(LogMsgWriteConflictRetry, "player_id", req.PlayerID, "attempt", attempt+1)
		select {
		case <-time.After(s.cfg.RetryBackoff * time.Duration(attempt+1)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *service) acquire(ctx context.Context, playerID string) (func(), error) {
	lockCtx := ctx
	if s.cfg.LockWait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.cfg.LockWait)
		defer cancel()
	}

	unlock, err := s.locker.Lock(lockCtx, playerID)
	if err == nil {
		return unlock, nil
	}
	// Our own wait budget ran out, not the caller's
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrLockTimeout, playerID)
	}
	return nil, fmt.Errorf(ErrMsgAcquireLockFailed, err)
}

// attemptOnce calls SaveUpgradeState exactly once per engine invocation
func (s *service) attemptOnce(ctx context.Context, req domain.UpgradeRequest) (*attemptResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.GetUpgradeStateForUpdate(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStateFailed, err)
	}

	weapon, inventory, outcome := s.engine.Attempt(state.Weapon, state.Inventory, req)

	next := *state
	next.Weapon = weapon
	next.Inventory = inventory
	if err := tx.SaveUpgradeState(ctx, next); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	return &attemptResult{before: *state, after: next, outcome: outcome}, nil
}

func (s *service) logOutcome(ctx context.Context, req domain.UpgradeRequest, res *attemptResult) {
	log := logger.FromContext(ctx)
	if res.outcome.Result == domain.OutcomeProtected {
		log.Info(LogMsgSigilConsumed, "player_id", req.PlayerID, "sigils_left", res.after.Inventory.SigilProtection)
	}
	log.Info(LogMsgUpgradeResolved,
		"player_id", req.PlayerID,
		"result", res.outcome.Result,
		"from_level", res.before.Weapon.UpgradeLevel,
		"to_level", res.after.Weapon.UpgradeLevel,
		"glow", res.after.Weapon.Glow)
}

func (s *service) publish(ctx context.Context, req domain.UpgradeRequest, res *attemptResult, conflicts int) {
	if s.eventBus == nil {
		return
	}
	evt := event.NewUpgradeAttemptedEvent(event.UpgradeAttemptedPayloadV1{
		PlayerID:       req.PlayerID,
		WeaponName:     res.after.Weapon.Name,
		PreviousLevel:  res.before.Weapon.UpgradeLevel,
		NewLevel:       res.after.Weapon.UpgradeLevel,
		Result:         res.outcome.Result,
		UseSigil:       req.UseSigil,
		SigilsLeft:     res.after.Inventory.SigilProtection,
		Glow:           res.after.Weapon.Glow,
		WriteConflicts: conflicts,
	})
	// The attempt is already committed; a failing subscriber must not undo the response
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish upgrade event", "player_id", req.PlayerID, "error", err)
	}
}

// GetOdds returns the chance table up to the configured cap
func (s *service) GetOdds() []ChanceEntry {
	return s.engine.Odds()
}

// Shutdown stops accepting upgrades and waits for in-flight ones to finish
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)
	s.shuttingDown.Store(true)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownForced)
		return ctx.Err()
	}
}
