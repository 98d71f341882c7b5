package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/forge"
	"github.com/osse101/SigilForge_Go/internal/player"
)

// MockForgeService mocks forge.Service
type MockForgeService struct {
	mock.Mock
}

func (m *MockForgeService) UpgradeWeapon(ctx context.Context, req domain.UpgradeRequest) (*domain.UpgradeOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeOutcome), args.Error(1)
}

func (m *MockForgeService) GetOdds() []forge.ChanceEntry {
	args := m.Called()
	return args.Get(0).([]forge.ChanceEntry)
}

func (m *MockForgeService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) RegisterPlayer(ctx context.Context, req player.RegisterRequest) (*domain.Player, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Register(bus event.Bus) {
	m.Called(bus)
}

// MockPinger mocks a readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
