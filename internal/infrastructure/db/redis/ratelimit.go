package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures   = 10
	defaultFailureWindow = 15 * time.Minute
)

// LoginLimiter counts failed login attempts per email in Redis.
// Key format: login_failures:<email>, expiring after the failure window.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive maxFailures/window fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultFailureWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window}
}

// TooManyFailures reports whether the email has reached the failure cap.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_failures:" + email
}
