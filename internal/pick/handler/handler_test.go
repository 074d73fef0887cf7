package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/service"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, caller service.Caller, req *model.SubmitPickRequest) (*model.SubmitPickResponse, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubmitPickResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, caller service.Caller, pickID uint) error {
	args := m.Called(ctx, caller, pickID)
	return args.Error(0)
}

func (m *mockService) List(ctx context.Context, caller service.Caller, filter model.ListFilter) ([]model.Pick, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pick), args.Error(1)
}

func (m *mockService) UsedTeams(ctx context.Context, caller service.Caller, poolID, seasonID uint, currentWeek int) ([]uint, error) {
	args := m.Called(ctx, caller, poolID, seasonID, currentWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

// asUser simulates the Auth middleware for a fixed caller.
func asUser(userID uint, isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextIsAdmin, isAdmin)
		c.Next()
	}
}

func setupRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(userID, false))
	return r
}

func TestHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.POST("/picks", handler.Submit)

		reqBody := model.SubmitPickRequest{PoolID: 1, GameID: 2, TeamID: 3}
		jsonBody, _ := json.Marshal(reqBody)

		resp := &model.SubmitPickResponse{
			Pick:    &model.Pick{ID: 10, UserID: 7, PoolID: 1, GameID: 2, TeamID: 3},
			Created: true,
		}
		mockSvc.On("Submit", mock.Anything, service.Caller{UserID: 7}, &reqBody).Return(resp, nil)

		req := httptest.NewRequest(http.MethodPost, "/picks", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("updated returns 200", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.POST("/picks", handler.Submit)

		resp := &model.SubmitPickResponse{
			Pick:    &model.Pick{ID: 10, UserID: 7, PoolID: 1, GameID: 2, TeamID: 4},
			Created: false,
		}
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(resp, nil)

		req := httptest.NewRequest(http.MethodPost, "/picks", bytes.NewBufferString(`{"pool_id":1,"game_id":2,"team_id":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("domain errors map to codes", func(t *testing.T) {
		cases := []struct {
			err        error
			wantStatus int
			wantCode   string
		}{
			{model.ErrGameAlreadyStarted, http.StatusBadRequest, "GAME_ALREADY_STARTED"},
			{model.ErrTeamNotInGame, http.StatusBadRequest, "TEAM_NOT_IN_GAME"},
			{model.ErrDuplicateSurvivorTeam, http.StatusBadRequest, "DUPLICATE_SURVIVOR_TEAM"},
			{poolModel.ErrNotParticipant, http.StatusForbidden, "FORBIDDEN"},
			{poolModel.ErrPoolNotFound, http.StatusNotFound, "NOT_FOUND"},
		}

		for _, tc := range cases {
			mockSvc := new(mockService)
			handler := New(mockSvc, zap.NewNop().Sugar())
			router := setupRouter(7)
			router.POST("/picks", handler.Submit)

			mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/picks", bytes.NewBufferString(`{"pool_id":1,"game_id":2,"team_id":3}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code, tc.wantCode)
			var resp httpapi.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.POST("/picks", handler.Submit)

		req := httptest.NewRequest(http.MethodPost, "/picks", bytes.NewBufferString(`{"pool_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Submit")
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.DELETE("/picks/:id", handler.Delete)

		mockSvc.On("Delete", mock.Anything, service.Caller{UserID: 7}, uint(10)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/picks/10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.DELETE("/picks/:id", handler.Delete)

		mockSvc.On("Delete", mock.Anything, mock.Anything, uint(99)).Return(model.ErrPickNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/picks/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	t.Run("filters parsed from query", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.GET("/pools/:id/picks", handler.List)

		seasonID := uint(2)
		week := 5
		expected := model.ListFilter{PoolID: 1, SeasonID: &seasonID, Week: &week}
		mockSvc.On("List", mock.Anything, service.Caller{UserID: 7}, expected).Return([]model.Pick{{ID: 10}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/pools/1/picks?season_id=2&week=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad week", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.GET("/pools/:id/picks", handler.List)

		req := httptest.NewRequest(http.MethodGet, "/pools/1/picks?week=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "List")
	})
}

func TestHandler_UsedTeams(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.GET("/pools/:id/used-teams", handler.UsedTeams)

		mockSvc.On("UsedTeams", mock.Anything, service.Caller{UserID: 7}, uint(1), uint(2), 5).Return([]uint{3, 9}, nil)

		req := httptest.NewRequest(http.MethodGet, "/pools/1/used-teams?season_id=2&week=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"team_ids":[3,9]}`, w.Body.String())
	})

	t.Run("missing season_id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(7)
		router.GET("/pools/:id/used-teams", handler.UsedTeams)

		req := httptest.NewRequest(http.MethodGet, "/pools/1/used-teams?week=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "UsedTeams")
	})
}
