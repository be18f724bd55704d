package repo

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/unicollab-io/unicollab/internal/config"
)

// ErrTokenNotFound is returned when a bearer token cannot be resolved or a
// user has no active token to revoke.
var ErrTokenNotFound = errors.New("token not found")

const (
	tokenKeyPrefix     = "tok:"
	userTokenKeyPrefix = "usertok:"
)

// TokenRepo stores opaque bearer credentials. Exactly one token is active
// per user: Issue returns the existing token when one is live.
type TokenRepo interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}

type tokenRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenRepo struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewTokenRepo(rdb *redis.Client, cfg *config.Config) TokenRepo {
	return &tokenRepo{
		rdb:    rdb,
		prefix: cfg.Auth.TokenPrefix,
		ttl:    time.Duration(cfg.Auth.TokenTTLSec) * time.Second,
	}
}

func (r *tokenRepo) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	userKey := userTokenKeyPrefix + userID.String()

	// Reuse the live token if the user already holds one.
	existing, err := r.rdb.Get(ctx, userKey).Result()
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := r.prefix + hex.EncodeToString(buf)

	record, err := sonic.Marshal(tokenRecord{
		UserID:    userID.String(),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+token, record, r.ttl)
	pipe.Set(ctx, userKey, token, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (r *tokenRepo) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := r.rdb.Get(ctx, tokenKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	var record tokenRecord
	if err := sonic.Unmarshal(raw, &record); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(record.UserID)
}

func (r *tokenRepo) Revoke(ctx context.Context, userID uuid.UUID) error {
	userKey := userTokenKeyPrefix + userID.String()

	token, err := r.rdb.Get(ctx, userKey).Result()
	if errors.Is(err, redis.Nil) {
		return ErrTokenNotFound
	}
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, tokenKeyPrefix+token)
	pipe.Del(ctx, userKey)
	_, err = pipe.Exec(ctx)
	return err
}
