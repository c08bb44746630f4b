package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickcart_back_end/internal/database"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// --- Pending registrations (email OTP) ---
//
// A registration lives in Redis until the OTP is verified or the record
// expires. The password is already bcrypt-hashed when it gets here.

const PendingRegistrationTTL = 10 * time.Minute

type PendingRegistration struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	OTP          string `json:"otp"`
}

func pendingKey(email string) string {
	return "pending_register:" + email
}

// StorePendingRegistration persists a registration awaiting OTP verification.
func StorePendingRegistration(reg PendingRegistration) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, pendingKey(reg.Email), data, PendingRegistrationTTL).Err()
}

// GetPendingRegistration returns the pending registration for an email, or
// nil when none exists (expired records are gone by TTL).
func GetPendingRegistration(email string) (*PendingRegistration, error) {
	data, err := database.Redis.Get(ctx, pendingKey(email)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var reg PendingRegistration
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func DeletePendingRegistration(email string) error {
	return database.Redis.Del(ctx, pendingKey(email)).Err()
}

// --- Generic cache ---

func SetCache(key string, value interface{}, duration time.Duration) error {
	return database.Redis.Set(ctx, key, value, duration).Err()
}

func GetCache(key string) (string, error) {
	return database.Redis.Get(ctx, key).Result()
}

func DeleteCache(key string) error {
	return database.Redis.Del(ctx, key).Err()
}

// --- Rate limiting ---

// IncrementRateLimit bumps the counter behind key and refreshes its window.
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	pipe := database.Redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func rateLimitKey(scope, subject string) string {
	return fmt.Sprintf("%s_attempts:%s", scope, subject)
}

// RateLimitExceeded counts one attempt for subject within scope and reports
// whether the limit is now exceeded.
func RateLimitExceeded(scope, subject string, max int64, window time.Duration) bool {
	attempts, err := IncrementRateLimit(rateLimitKey(scope, subject), window)
	if err != nil {
		// Redis trouble must not lock everyone out.
		return false
	}
	return attempts > max
}
