package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

func (m *MockLeaderboardService) OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

type MockKeyResolver struct {
	mock.Mock
}

func (m *MockKeyResolver) ResolveFactionKey(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		svc.On("OverallLeaderboard", mock.Anything).Return(&domain.Leaderboard{
			MostRespectGained: &domain.LeaderRow{AttackerID: 2, Value: 5},
			TotalMugged:       1500,
			BackfillComplete:  true,
		}, nil)

		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data domain.Leaderboard `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Data.MostRespectGained)
		assert.Equal(t, int64(2), body.Data.MostRespectGained.AttackerID)
		assert.InDelta(t, 1500, body.Data.TotalMugged, 0.001)
		assert.True(t, body.Data.BackfillComplete)
	})

	t.Run("Store Error", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		svc.On("OverallLeaderboard", mock.Anything).
			Return(nil, domain.NewStoreError("top_by", errors.New("disk I/O error")))

		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/leaderboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgStoreFailed)
		assert.NotContains(t, w.Body.String(), "disk I/O")
	})
}

func TestHandleSync(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		keys := &MockKeyResolver{}
		keys.On("ResolveFactionKey", mock.Anything, "").Return("faction-key", nil)
		svc.On("Sync", mock.Anything, "faction-key").Return(&domain.SyncResult{Added: 7}, nil)

		w := httptest.NewRecorder()
		HandleSync(svc, keys).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sync", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"added":7`)
		svc.AssertExpectations(t)
	})

	t.Run("No Credential", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		keys := &MockKeyResolver{}
		keys.On("ResolveFactionKey", mock.Anything, "").Return("", domain.ErrNoCredential)

		w := httptest.NewRecorder()
		HandleSync(svc, keys).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sync", nil))

		assert.Equal(t, http.StatusPreconditionFailed, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoCredential)
		svc.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
	})

	t.Run("Upstream Error Passes Code Through", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		keys := &MockKeyResolver{}
		keys.On("ResolveFactionKey", mock.Anything, "").Return("k", nil)
		svc.On("Sync", mock.Anything, "k").
			Return(nil, &torn.UpstreamError{Code: torn.CodeIncorrectKey, Message: "Incorrect key"})

		w := httptest.NewRecorder()
		HandleSync(svc, keys).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sync", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"code":2`)
	})

	t.Run("Partial Result Is Returned", func(t *testing.T) {
		svc := &MockLeaderboardService{}
		keys := &MockKeyResolver{}
		keys.On("ResolveFactionKey", mock.Anything, "").Return("k", nil)
		svc.On("Sync", mock.Anything, "k").
			Return(&domain.SyncResult{Added: 3}, &torn.UpstreamError{Message: "HTTP 503"})

		w := httptest.NewRecorder()
		HandleSync(svc, keys).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sync", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"added":3`)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.2.3").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
}
