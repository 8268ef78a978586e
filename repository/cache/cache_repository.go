package cache

import (
	"context"
	"time"

	redisclient "github.com/globalremedies/backend/cmd/redis"
	"github.com/redis/go-redis/v9"
)

// Repository holds the short-lived auth state: OTP challenges keyed by email
// and JWT sessions keyed by jti. TTLs enforce the expiry windows so stale
// codes and sessions disappear without any sweeper.
type Repository interface {
	SetOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type cacheRepo struct{}

// NewRepository returns a Redis-backed Repository implementation
func NewRepository() Repository {
	return &cacheRepo{}
}

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = redis.Nil

const (
	otpPrefix     = "otp:"
	sessionPrefix = "session:"
)

// SetOTP stores a pending verification code for the email.
func (r *cacheRepo) SetOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, otpPrefix+email, code, ttl).Err()
}

// GetOTP retrieves the pending code; ErrMiss when expired or never issued.
func (r *cacheRepo) GetOTP(ctx context.Context, email string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", ErrMiss
	}
	return client.Get(ctx, otpPrefix+email).Result()
}

// DeleteOTP consumes the code so it cannot be replayed.
func (r *cacheRepo) DeleteOTP(ctx context.Context, email string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, otpPrefix+email).Err()
}

// SetSession stores a session with userID and TTL
func (r *cacheRepo) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *cacheRepo) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrMiss
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session
func (r *cacheRepo) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
