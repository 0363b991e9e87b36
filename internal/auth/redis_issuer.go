package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vital/internal/cryptox"
	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix   = "vital:otp:"
	DefaultCodeTTL = 10 * time.Minute
)

// RedisIssuer stores keyed digests of codes in Redis, where they expire on
// their own. With a fixed hasher key they also survive client restarts.
type RedisIssuer struct {
	rdb      redis.Cmdable
	ttl      time.Duration
	hasher   *cryptox.CodeHasher
	gen      Generator
	notifier Notifier
}

func NewRedisIssuer(rdb redis.Cmdable, ttl time.Duration, hasher *cryptox.CodeHasher, gen Generator, notifier Notifier) *RedisIssuer {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}
	return &RedisIssuer{rdb: rdb, ttl: ttl, hasher: hasher, gen: gen, notifier: notifier}
}

func otpKey(destination string) string {
	return otpKeyPrefix + destination
}

func (r *RedisIssuer) Issue(ctx context.Context, destination string) error {
	code, err := r.gen.Generate()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	if err := r.rdb.Set(ctx, otpKey(destination), r.hasher.Digest(destination, code), r.ttl).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	r.notifier.Notify(ctx, destination, code)
	return nil
}

func (r *RedisIssuer) Verify(ctx context.Context, destination, candidate string) (bool, error) {
	digest, err := r.rdb.Get(ctx, otpKey(destination)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load code: %w", err)
	}
	return r.hasher.Match(digest, destination, candidate), nil
}

func (r *RedisIssuer) Revoke(ctx context.Context, destination string) error {
	if err := r.rdb.Del(ctx, otpKey(destination)).Err(); err != nil {
		return fmt.Errorf("revoke code: %w", err)
	}
	return nil
}
