// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/artstone/artstone-backend/internal/config"
	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	// Clean up old visitors every minute
	go rl.cleanupVisitors()

	return rl
}

// FromConfig builds the edge limiter from RATE_LIMIT_WINDOW_MS and
// RATE_LIMIT_MAX_REQUESTS: a burst of max requests refilling over the window.
func FromConfig(cfg config.RateLimitConfig) *RateLimiter {
	window := time.Duration(cfg.WindowMs) * time.Millisecond
	if window <= 0 {
		window = 15 * time.Minute
	}
	max := cfg.MaxRequests
	if max <= 0 {
		max = 100
	}
	return NewRateLimiter(rate.Every(window/time.Duration(max)), max)
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 30*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getVisitor(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, utils.APIResponse{
				Success: false,
				Message: i18n.T(utils.GetLangFromContext(c), i18n.KeyRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Auth endpoints get a tighter bucket than the general edge limit.
func AuthRateLimit() gin.HandlerFunc {
	return NewRateLimiter(rate.Every(time.Minute/5), 5).Middleware()
}

// Upload endpoints are limited separately from the general edge limit.
func UploadRateLimit() gin.HandlerFunc {
	return NewRateLimiter(rate.Every(time.Minute/10), 10).Middleware()
}
