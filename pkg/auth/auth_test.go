package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/pkg/cache"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", testSecret, 168)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", testSecret, 168)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "different-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func setupBlacklist(t *testing.T) (*TokenBlacklist, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	return NewTokenBlacklist(client), mr
}

func TestTokenBlacklist(t *testing.T) {
	blacklist, _ := setupBlacklist(t)
	ctx := context.Background()

	token, err := GenerateJWT(7, "revoked@example.com", testSecret, 168)
	require.NoError(t, err)

	revoked, err := blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	revoked, err = blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestValidateJWTWithBlacklist_RejectsRevokedToken(t *testing.T) {
	blacklist, _ := setupBlacklist(t)
	ctx := context.Background()

	token, err := GenerateJWT(7, "revoked@example.com", testSecret, 168)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.AccountID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestResetTokens(t *testing.T) {
	token1, err := GenerateResetToken()
	require.NoError(t, err)
	token2, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, token1, 64)
	assert.NotEqual(t, token1, token2)

	// Hashing is deterministic and never echoes the token
	assert.Equal(t, HashResetToken(token1), HashResetToken(token1))
	assert.NotEqual(t, token1, HashResetToken(token1))
	assert.NotEqual(t, HashResetToken(token1), HashResetToken(token2))
}
