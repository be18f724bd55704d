package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicollab-io/unicollab/internal/config"
)

func newTestTokenRepo(t *testing.T, ttlSec int) (TokenRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{}
	cfg.Auth.TokenPrefix = "uc_"
	cfg.Auth.TokenTTLSec = ttlSec
	return NewTokenRepo(rdb, cfg), mr
}

func TestTokenIssueResolve(t *testing.T) {
	repo, _ := newTestTokenRepo(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	token, err := repo.Issue(ctx, userID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "uc_"))

	got, err := repo.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenIssueIsIdempotent(t *testing.T) {
	repo, _ := newTestTokenRepo(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.Issue(ctx, userID)
	require.NoError(t, err)
	second, err := repo.Issue(ctx, userID)
	require.NoError(t, err)

	// One live token per user: a second login hands back the same credential.
	assert.Equal(t, first, second)
}

func TestTokensAreDistinctPerUser(t *testing.T) {
	repo, _ := newTestTokenRepo(t, 0)
	ctx := context.Background()

	a, err := repo.Issue(ctx, uuid.New())
	require.NoError(t, err)
	b, err := repo.Issue(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenRevoke(t *testing.T) {
	repo, _ := newTestTokenRepo(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	token, err := repo.Issue(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, repo.Revoke(ctx, userID))

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// A second revoke finds nothing.
	assert.ErrorIs(t, repo.Revoke(ctx, userID), ErrTokenNotFound)
}

func TestTokenResolveUnknown(t *testing.T) {
	repo, _ := newTestTokenRepo(t, 0)

	_, err := repo.Resolve(context.Background(), "uc_deadbeef")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenExpiry(t *testing.T) {
	repo, mr := newTestTokenRepo(t, 60)
	ctx := context.Background()
	userID := uuid.New()

	token, err := repo.Issue(ctx, userID)
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Once expired, a fresh login mints a new token.
	again, err := repo.Issue(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
}
