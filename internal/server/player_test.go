package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/tycoon/internal/config"
	"github.com/smallbiznis/tycoon/internal/playerctx"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/stretchr/testify/assert"
)

type fakePlayerService struct {
	createErr error
	getErr    error
	updateErr error

	lastUpdateCtx context.Context
	player        playerdomain.Player
}

func (f *fakePlayerService) Create(ctx context.Context, req playerdomain.CreatePlayerRequest) (playerdomain.Player, error) {
	if f.createErr != nil {
		return playerdomain.Player{}, f.createErr
	}
	f.player.Username = req.Username
	f.player.Email = req.Email
	return f.player, nil
}

func (f *fakePlayerService) GetByID(ctx context.Context, req playerdomain.GetPlayerRequest) (playerdomain.Player, error) {
	if f.getErr != nil {
		return playerdomain.Player{}, f.getErr
	}
	return f.player, nil
}

func (f *fakePlayerService) Update(ctx context.Context, req playerdomain.UpdatePlayerRequest) (playerdomain.Player, error) {
	f.lastUpdateCtx = ctx
	if f.updateErr != nil {
		return playerdomain.Player{}, f.updateErr
	}
	return f.player, nil
}

func newTestServer(t *testing.T, playerSvc playerdomain.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	s := &Server{
		engine:    engine,
		cfg:       config.Config{},
		playerSvc: playerSvc,
	}
	s.RegisterRoutes()
	return engine
}

func TestCreatePlayerHandler(t *testing.T) {
	fake := &fakePlayerService{player: playerdomain.Player{ID: snowflake.ID(100)}}
	engine := newTestServer(t, fake)

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data playerdomain.Player `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Data.Username)
}

func TestCreatePlayerHandlerValidationPayload(t *testing.T) {
	fake := &fakePlayerService{createErr: playerdomain.ErrInvalidUsername}
	engine := newTestServer(t, fake)

	body, _ := json.Marshal(map[string]string{"username": "x", "email": "x@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	if assert.Len(t, resp.Error.Errors, 1) {
		assert.Equal(t, "invalid_username", resp.Error.Errors[0].Code)
		assert.Equal(t, "username", resp.Error.Errors[0].Field)
	}
}

func TestCreatePlayerHandlerConflict(t *testing.T) {
	fake := &fakePlayerService{createErr: playerdomain.ErrPlayerExists}
	engine := newTestServer(t, fake)

	body, _ := json.Marshal(map[string]string{"username": "alice", "email": "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetPlayerHandlerNotFound(t *testing.T) {
	fake := &fakePlayerService{getErr: playerdomain.ErrNotFound}
	engine := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/123456789", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePlayerHandlerCallerMismatch(t *testing.T) {
	fake := &fakePlayerService{updateErr: playerctx.ErrCallerMismatch}
	engine := newTestServer(t, fake)

	body, _ := json.Marshal(map[string]float64{"total_wealth": 500})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/players/123456789", bytes.NewReader(body))
	req.Header.Set("X-Player-ID", "424242")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPlayerIdentityHeaderPropagated(t *testing.T) {
	fake := &fakePlayerService{player: playerdomain.Player{ID: snowflake.ID(123456789)}}
	engine := newTestServer(t, fake)

	body, _ := json.Marshal(map[string]float64{"total_wealth": 500})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/players/123456789", bytes.NewReader(body))
	req.Header.Set("X-Player-ID", "123456789")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	caller, ok := playerctx.PlayerIDFromContext(fake.lastUpdateCtx)
	assert.True(t, ok)
	assert.Equal(t, snowflake.ID(123456789), caller)
}

func TestPlayerIdentityHeaderInvalid(t *testing.T) {
	fake := &fakePlayerService{}
	engine := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/123456789", nil)
	req.Header.Set("X-Player-ID", "not-a-snowflake")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
