package auth

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/models"
)

// RateLimiter throttles login attempts per client address
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	now      func() time.Time
	// Configuration
	maxAttempts int
	window      time.Duration
	blockTime   time.Duration
}

type attemptInfo struct {
	count     int
	firstTry  time.Time
	blockedAt time.Time
}

// NewRateLimiter creates a new rate limiter
// maxAttempts: max login attempts within the window, <= 0 disables limiting
// window: time window for counting attempts
// blockTime: how long to block after exceeding max attempts
func NewRateLimiter(maxAttempts int, window, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts:    make(map[string]*attemptInfo),
		now:         time.Now,
		maxAttempts: maxAttempts,
		window:      window,
		blockTime:   blockTime,
	}
}

// Enabled reports whether the limiter rejects anything at all
func (rl *RateLimiter) Enabled() bool {
	return rl.maxAttempts > 0
}

// Allow checks if the given key (IP address) may attempt a login
func (rl *RateLimiter) Allow(key string) bool {
	if !rl.Enabled() {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	info, exists := rl.attempts[key]

	if !exists {
		rl.attempts[key] = &attemptInfo{count: 1, firstTry: now}
		return true
	}

	if !info.blockedAt.IsZero() {
		if now.Sub(info.blockedAt) < rl.blockTime {
			return false
		}
		// Block expired, reset
		info.count = 1
		info.firstTry = now
		info.blockedAt = time.Time{}
		return true
	}

	if now.Sub(info.firstTry) > rl.window {
		info.count = 1
		info.firstTry = now
		return true
	}

	info.count++
	if info.count > rl.maxAttempts {
		info.blockedAt = now
		return false
	}

	return true
}

// RecordSuccess resets the attempt count after a successful login
func (rl *RateLimiter) RecordSuccess(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.attempts, key)
}

// BlockedUntil returns when the block on key expires, or zero time if not blocked
func (rl *RateLimiter) BlockedUntil(key string) time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	info, exists := rl.attempts[key]
	if !exists || info.blockedAt.IsZero() {
		return time.Time{}
	}

	until := info.blockedAt.Add(rl.blockTime)
	if rl.now().After(until) {
		return time.Time{}
	}
	return until
}

// Prune removes entries whose window and block have both expired
func (rl *RateLimiter) Prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, info := range rl.attempts {
		windowExpired := now.Sub(info.firstTry) > rl.window
		blockExpired := info.blockedAt.IsZero() || now.Sub(info.blockedAt) > rl.blockTime
		if windowExpired && blockExpired {
			delete(rl.attempts, key)
		}
	}
}

// Run prunes stale entries every interval until ctx is done
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Prune()
		}
	}
}

// Middleware returns an Echo middleware that rate limits requests
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			if !rl.Allow(key) {
				retryAfter := int(rl.BlockedUntil(key).Sub(rl.now()).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error: "Too many login attempts",
				})
			}

			return next(c)
		}
	}
}
