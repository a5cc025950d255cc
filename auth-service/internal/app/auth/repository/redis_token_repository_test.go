package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenRepository(t *testing.T) (TokenRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisTokenRepository(client), mr
}

func TestSaveAndGetRefreshToken(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	userID := uuid.New()
	token := "refresh-token-abc"
	expiresAt := time.Now().Add(time.Hour)

	err := repo.SaveRefreshToken(ctx, userID, token, expiresAt)
	require.NoError(t, err)

	stored, err := repo.GetRefreshToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, token, stored.Token)
}

func TestSaveRefreshToken_AlreadyExpired(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	err := repo.SaveRefreshToken(ctx, uuid.New(), "expired-token", time.Now().Add(-time.Minute))

	assert.Error(t, err)
}

func TestGetRefreshToken_NotFound(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	stored, err := repo.GetRefreshToken(ctx, "unknown-token")

	assert.Nil(t, stored)
	assert.Error(t, err)
}

func TestGetRefreshToken_ExpiredByTTL(t *testing.T) {
	repo, mr := newTestTokenRepository(t)
	ctx := context.Background()

	token := "short-lived-token"
	err := repo.SaveRefreshToken(ctx, uuid.New(), token, time.Now().Add(time.Minute))
	require.NoError(t, err)

	// Перематываем время в miniredis за горизонт TTL
	mr.FastForward(2 * time.Minute)

	stored, err := repo.GetRefreshToken(ctx, token)
	assert.Nil(t, stored)
	assert.Error(t, err)
}

func TestDeleteRefreshToken(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	token := "to-delete-token"
	require.NoError(t, repo.SaveRefreshToken(ctx, uuid.New(), token, time.Now().Add(time.Hour)))

	err := repo.DeleteRefreshToken(ctx, token)
	require.NoError(t, err)

	stored, err := repo.GetRefreshToken(ctx, token)
	assert.Nil(t, stored)
	assert.Error(t, err)
}

func TestDeleteUserRefreshTokens_RemovesAllSessions(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	require.NoError(t, repo.SaveRefreshToken(ctx, userID, "session-1", expiresAt))
	require.NoError(t, repo.SaveRefreshToken(ctx, userID, "session-2", expiresAt))

	// Токен другого пользователя не должен пострадать
	otherID := uuid.New()
	require.NoError(t, repo.SaveRefreshToken(ctx, otherID, "other-session", expiresAt))

	err := repo.DeleteUserRefreshTokens(ctx, userID)
	require.NoError(t, err)

	_, err = repo.GetRefreshToken(ctx, "session-1")
	assert.Error(t, err)
	_, err = repo.GetRefreshToken(ctx, "session-2")
	assert.Error(t, err)

	stored, err := repo.GetRefreshToken(ctx, "other-session")
	require.NoError(t, err)
	assert.Equal(t, otherID, stored.UserID)
}

func TestBlacklist(t *testing.T) {
	repo, mr := newTestTokenRepository(t)
	ctx := context.Background()

	token := "access-token-to-revoke"

	blacklisted, err := repo.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.AddToBlacklist(ctx, token, time.Now().Add(time.Minute)))

	blacklisted, err = repo.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// После истечения access токена запись черного списка уходит сама
	mr.FastForward(2 * time.Minute)

	blacklisted, err = repo.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestAddToBlacklist_ExpiredTokenSkipped(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	token := "already-expired-access"

	err := repo.AddToBlacklist(ctx, token, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	blacklisted, err := repo.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
