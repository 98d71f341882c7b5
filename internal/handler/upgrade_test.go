package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/forge"
)

func levelPtr(v int) *int { return &v }

func TestHandleUpgrade(t *testing.T) {
	InitValidator()

	weaponReq := domain.UpgradeRequest{PlayerID: "p1", ItemType: domain.ItemTypeWeapon, UseSigil: true}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockForgeService)
		expectedStatus int
		expectedBody   string
		notInBody      string
	}{
		{
			name: "Success",
			body: `{"player_id":"p1","item_type":"weapon","use_sigil":true}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, weaponReq).Return(&domain.UpgradeOutcome{
					Success:         true,
					NewUpgradeLevel: levelPtr(12),
					Glow:            true,
					Message:         "Upgrade success! Brandish is now +12",
					Result:          domain.OutcomeSuccess,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"new_upgrade_level":12`,
		},
		{
			name: "Max level omits new level",
			body: `{"player_id":"p1","item_type":"weapon","use_sigil":true}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, weaponReq).Return(&domain.UpgradeOutcome{
					Glow:    true,
					Message: domain.MsgMaxLevelReached,
					Result:  domain.OutcomeMaxLevel,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":false`,
			notInBody:      "new_upgrade_level",
		},
		{
			name:           "Malformed JSON",
			body:           `{"player_id":`,
			setupMock:      func(m *MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing player id",
			body:           `{"item_type":"weapon"}`,
			setupMock:      func(m *MockForgeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"playerid":"This field is required"`,
		},
		{
			name: "Unsupported item type",
			body: `{"player_id":"p1","item_type":"shield"}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: shield", domain.ErrUnsupportedItemType))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnsupportedItemError,
		},
		{
			name: "Player not found",
			body: `{"player_id":"ghost","item_type":"weapon"}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("failed to load upgrade state: %w", domain.ErrPlayerNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFoundError,
		},
		{
			name: "Busy",
			body: `{"player_id":"p1","item_type":"weapon"}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w after 4 attempts: %w", domain.ErrUpgradeBusy, domain.ErrConcurrentWriteConflict))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUpgradeBusyError,
		},
		{
			name: "Storage failure stays opaque",
			body: `{"player_id":"p1","item_type":"weapon"}`,
			setupMock: func(m *MockForgeService) {
				m.On("UpgradeWeapon", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("failed to commit transaction: %w", assert.AnError))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
			notInBody:      "commit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockForgeService{}
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/upgrade", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			HandleUpgrade(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.notInBody != "" {
				assert.NotContains(t, w.Body.String(), tt.notInBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleUpgrade_ResponseShape(t *testing.T) {
	svc := &MockForgeService{}
	svc.On("UpgradeWeapon", mock.Anything, mock.Anything).Return(&domain.UpgradeOutcome{
		NewUpgradeLevel: levelPtr(10),
		Message:         "Upgrade failed! Brandish dropped to +10",
		Result:          domain.OutcomeDowngraded,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upgrade",
		bytes.NewBufferString(`{"player_id":"p1","item_type":"weapon"}`))
	w := httptest.NewRecorder()
	HandleUpgrade(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{"success", "new_upgrade_level", "glow", "message"}, keys(body))
	assert.Equal(t, float64(10), body["new_upgrade_level"])
}

func TestHandleGetChances(t *testing.T) {
	svc := &MockForgeService{}
	svc.On("GetOdds").Return([]forge.ChanceEntry{{TargetLevel: 1, Chance: 1}, {TargetLevel: 2, Chance: 0.9}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/upgrade/chances", nil)
	w := httptest.NewRecorder()
	HandleGetChances(svc, forge.DefaultRules()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChancesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.DefaultMaxUpgradeLevel, resp.MaxLevel)
	assert.Equal(t, domain.DefaultGlowLevel, resp.GlowLevel)
	assert.Len(t, resp.Chances, 2)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
