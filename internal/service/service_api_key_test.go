package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/mock"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/internal/validators"
	"github.com/coladapo/puo-memo-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func days(n int) *int {
	return &n
}

func newTestAPIKeySvc(t *testing.T, ctrl *gomock.Controller) (APIKeyService, *mock.MockAPIKeyRepository, *mock.MockUserRepository) {
	t.Helper()
	mockKeys := mock.NewMockAPIKeyRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAPIKeyService(mockKeys, mockUsers, validators.NewRequestValidator(), testAuthConfig, logger.NewLogger("test"))
	return svc, mockKeys, mockUsers
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestAPIKeyService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	var storedHash string
	mockKeys.EXPECT().CreateKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.APIKey) (models.APIKey, error) {
			assert.Equal(t, DefaultKeyName, key.Name)
			assert.Equal(t, DefaultRateLimitPerMinute, key.RateLimitPerMinute)
			assert.Equal(t, DefaultRateLimitPerHour, key.RateLimitPerHour)
			assert.True(t, key.ExpiresAt.IsZero(), "no expiry requested → no expiry stored")
			storedHash = key.KeyHash
			key.ID = "key-1"
			key.IsActive = true
			return key, nil
		},
	)

	created, err := svc.Create(ctx, "user-1", models.CreateAPIKeyRequest{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.Key, "puo_memo_key_"))
	assert.Len(t, created.Key, len("puo_memo_key_")+64)
	assert.Equal(t, utils.HashAPIKey(created.Key), storedHash,
		"stored digest must match the returned plaintext key")
	assert.Equal(t, created.Key[len(created.Key)-4:], created.KeySuffix)
	assert.NotContains(t, created.KeyHash, created.Key)
}

func TestAPIKeyService_Create_WithExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().CreateKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.APIKey) (models.APIKey, error) {
			assert.Equal(t, "CI key", key.Name)
			expectedExpiry := time.Now().UTC().Add(30 * 24 * time.Hour)
			assert.WithinDuration(t, expectedExpiry, key.ExpiresAt, time.Minute)
			return key, nil
		},
	)

	_, err := svc.Create(ctx, "user-1", models.CreateAPIKeyRequest{Name: "CI key", ExpiresInDays: days(30)})
	require.NoError(t, err)
}

// An explicit expires_in_days of 0 is not "never expires": it stamps
// expires_at with the creation time, so the key can never validate.
func TestAPIKeyService_Create_ZeroExpiryKeyNeverValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	var stored models.APIKey
	mockKeys.EXPECT().CreateKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.APIKey) (models.APIKey, error) {
			assert.False(t, key.ExpiresAt.IsZero(), "explicit 0 must set an expiry")
			assert.WithinDuration(t, time.Now().UTC(), key.ExpiresAt, time.Minute)
			key.ID = "key-1"
			key.IsActive = true
			stored = key
			return key, nil
		},
	)

	created, err := svc.Create(ctx, "user-1", models.CreateAPIKeyRequest{ExpiresInDays: days(0)})
	require.NoError(t, err)

	mockKeys.EXPECT().FindKeyByHash(ctx, utils.HashAPIKey(created.Key)).Return(stored, nil)

	_, err = svc.Validate(ctx, created.Key)
	assert.ErrorIs(t, err, ErrAPIKeyInvalid)
}

func TestAPIKeyService_Create_NegativeExpiryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAPIKeySvc(t, ctrl)

	_, err := svc.Create(context.Background(), "user-1", models.CreateAPIKeyRequest{ExpiresInDays: days(-1)})
	assert.ErrorIs(t, err, validators.ErrNegativeKeyExpiry)
}

// ── Validate ─────────────────────────────────────────────────────────────────

func activeKeyFixture(key string) models.APIKey {
	return models.APIKey{
		ID:                 "key-1",
		UserID:             "user-1",
		KeyHash:            utils.HashAPIKey(key),
		KeySuffix:          key[len(key)-4:],
		Name:               DefaultKeyName,
		RateLimitPerMinute: 60,
		RateLimitPerHour:   1000,
		IsActive:           true,
	}
}

func TestAPIKeyService_Validate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockUsers := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	key := "puo_memo_key_deadbeef1234"
	record := activeKeyFixture(key)
	owner := models.User{ID: "user-1", Email: "john@example.com", IsActive: true, SubscriptionTier: "pro"}

	gomock.InOrder(
		mockKeys.EXPECT().FindKeyByHash(ctx, utils.HashAPIKey(key)).Return(record, nil),
		mockUsers.EXPECT().FindUserByID(ctx, "user-1").Return(owner, nil),
		mockKeys.EXPECT().TouchLastUsed(ctx, "key-1").Return(nil),
	)

	auth, err := svc.Validate(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "user-1", auth.UserID)
	assert.Equal(t, "key-1", auth.APIKeyID)
	assert.Equal(t, "pro", auth.User.SubscriptionTier)
	assert.Equal(t, 60, auth.RateLimitPerMinute)
	assert.Equal(t, 1000, auth.RateLimitPerHour)
}

func TestAPIKeyService_Validate_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().FindKeyByHash(ctx, gomock.Any()).Return(models.APIKey{}, store.ErrAPIKeyNotFound)

	_, err := svc.Validate(ctx, "puo_memo_key_unknown")
	assert.ErrorIs(t, err, ErrAPIKeyInvalid)
}

func TestAPIKeyService_Validate_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAPIKeySvc(t, ctrl)

	_, err := svc.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrAPIKeyInvalid)
}

func TestAPIKeyService_Validate_DeactivatedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	key := "puo_memo_key_deadbeef1234"
	record := activeKeyFixture(key)
	record.IsActive = false

	mockKeys.EXPECT().FindKeyByHash(ctx, gomock.Any()).Return(record, nil)

	_, err := svc.Validate(ctx, key)
	assert.ErrorIs(t, err, ErrAPIKeyInvalid,
		"a disabled key must be indistinguishable from an unknown one")
}

func TestAPIKeyService_Validate_ExpiredKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	key := "puo_memo_key_deadbeef1234"
	record := activeKeyFixture(key)
	record.ExpiresAt = time.Now().UTC().Add(-time.Hour)

	mockKeys.EXPECT().FindKeyByHash(ctx, gomock.Any()).Return(record, nil)

	_, err := svc.Validate(ctx, key)
	assert.ErrorIs(t, err, ErrAPIKeyInvalid)
}

func TestAPIKeyService_Validate_DeactivatedOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockUsers := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	key := "puo_memo_key_deadbeef1234"
	record := activeKeyFixture(key)

	mockKeys.EXPECT().FindKeyByHash(ctx, gomock.Any()).Return(record, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "user-1").Return(models.User{ID: "user-1", IsActive: false}, nil)

	_, err := svc.Validate(ctx, key)
	assert.ErrorIs(t, err, ErrAPIKeyInvalid)
}

func TestAPIKeyService_Validate_TouchFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockUsers := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	key := "puo_memo_key_deadbeef1234"
	record := activeKeyFixture(key)
	owner := models.User{ID: "user-1", IsActive: true}

	mockKeys.EXPECT().FindKeyByHash(ctx, gomock.Any()).Return(record, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "user-1").Return(owner, nil)
	mockKeys.EXPECT().TouchLastUsed(ctx, "key-1").Return(errors.New("db is down"))

	_, err := svc.Validate(ctx, key)
	require.NoError(t, err, "a failed last-used stamp must not fail validation")
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAPIKeyService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, _ := newTestAPIKeySvc(t, ctrl)
	ctx := context.Background()

	stored := []models.APIKey{{ID: "key-2"}, {ID: "key-1"}}
	mockKeys.EXPECT().ListKeysByUser(ctx, "user-1").Return(stored, nil)

	keys, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, keys)
}
