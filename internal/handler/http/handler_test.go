package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/coladapo/puo-memo-platform/internal/config"
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, models.APIKeyCreated, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	userByIDFn    func(ctx context.Context, id string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.APIKeyCreated, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UserByID(ctx context.Context, id string) (models.User, error) {
	return m.userByIDFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock service.APIKeyService
// ─────────────────────────────────────────────

type mockAPIKeyService struct {
	createFn   func(ctx context.Context, userID string, req models.CreateAPIKeyRequest) (models.APIKeyCreated, error)
	validateFn func(ctx context.Context, key string) (models.KeyAuth, error)
	listFn     func(ctx context.Context, userID string) ([]models.APIKey, error)
}

func (m *mockAPIKeyService) Create(ctx context.Context, userID string, req models.CreateAPIKeyRequest) (models.APIKeyCreated, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockAPIKeyService) Validate(ctx context.Context, key string) (models.KeyAuth, error) {
	return m.validateFn(ctx, key)
}

func (m *mockAPIKeyService) List(ctx context.Context, userID string) ([]models.APIKey, error) {
	return m.listFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock service.MemoryService
// ─────────────────────────────────────────────

type mockMemoryService struct {
	createFn func(ctx context.Context, user models.User, req models.CreateMemoryRequest) (models.Memory, error)
	searchFn func(ctx context.Context, userID, query string, limit int) ([]models.Memory, error)
}

func (m *mockMemoryService) Create(ctx context.Context, user models.User, req models.CreateMemoryRequest) (models.Memory, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockMemoryService) Search(ctx context.Context, userID, query string, limit int) ([]models.Memory, error) {
	return m.searchFn(ctx, userID, query, limit)
}

// ─────────────────────────────────────────────
// Mock store.UsageLogRepository
// ─────────────────────────────────────────────

type mockUsageLogRepository struct {
	insertFn func(ctx context.Context, entry models.UsageLog) error
}

func (m *mockUsageLogRepository) InsertUsageLog(ctx context.Context, entry models.UsageLog) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, entry)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks; nil mocks are
// allowed for services the test never reaches.
func newTestHandler(t *testing.T, auth *mockAuthService, keys *mockAPIKeyService, memories *mockMemoryService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		APIKeyService: keys,
		MemoryService: memories,
	}
	return NewHandler(svcs, &mockUsageLogRepository{}, config.App{Version: "test"}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	ID:               "user-1",
	Email:            "alice@example.com",
	IsActive:         true,
	SubscriptionTier: "free",
}
