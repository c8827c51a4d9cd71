package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rnqayush/storefront-platform/pkg/logger"
	"github.com/rnqayush/storefront-platform/pkg/redis"
)

// LoginLimiter throttles failed login attempts per account.
type LoginLimiter interface {
	// TooMany reports whether the account has exhausted its attempts
	TooMany(ctx context.Context, email string) bool
	// RecordFailure counts a failed attempt
	RecordFailure(ctx context.Context, email string)
	// Reset clears the attempt counter after a successful login
	Reset(ctx context.Context, email string)
}

// redisLoginLimiter counts failed attempts in a fixed redis window. Redis
// errors fail open: an unreachable counter never locks accounts out.
type redisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginLimiter creates a redis-backed LoginLimiter. Returns nil when
// the client is absent or the limit is disabled.
func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) LoginLimiter {
	if client == nil || maxAttempts <= 0 {
		return nil
	}
	return &redisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// TooMany reports whether the account has exhausted its attempts
func (l *redisLoginLimiter) TooMany(ctx context.Context, email string) bool {
	count, err := l.client.Get(ctx, loginAttemptsKey(email)).Int()
	if err != nil {
		if !redis.IsNil(err) {
			logger.WarnCtx(ctx, "login attempt counter read failed", zap.Error(err))
		}
		return false
	}
	return count >= l.maxAttempts
}

// RecordFailure counts a failed attempt. The window starts with the first
// failure and is not extended by later ones.
func (l *redisLoginLimiter) RecordFailure(ctx context.Context, email string) {
	key := loginAttemptsKey(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		logger.WarnCtx(ctx, "login attempt counter update failed", zap.Error(err))
		return
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			logger.WarnCtx(ctx, "login attempt counter expiry failed", zap.Error(err))
		}
	}
}

// Reset clears the attempt counter after a successful login
func (l *redisLoginLimiter) Reset(ctx context.Context, email string) {
	if err := l.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		logger.WarnCtx(ctx, "login attempt counter reset failed", zap.Error(err))
	}
}
