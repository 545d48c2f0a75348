package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/database"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Key         string        // Redis key prefix
	Limit       int           // requests allowed per period
	Period      time.Duration // fixed window length
}

// RateLimiterMiddleware is a fixed-window limiter keyed by route and
// authenticated user (client IP when anonymous). Redis failures let the
// request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := UserID(c)
			if identifier == "" {
				identifier = c.RealIP()
			}
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			hits, err := config.RedisClient.Client.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.Err(err))
				return next(c)
			}
			if hits == 1 {
				config.RedisClient.Client.Expire(ctx, key, config.Period)
			}

			count := int(hits)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				ttl := config.RedisClient.Client.TTL(ctx, key).Val()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				return utils.TooManyRequestsResponse(c)
			}

			return next(c)
		}
	}
}

// UserRateLimiter creates a user-based rate limiter
func UserRateLimiter(limit int, period time.Duration, redisClient *database.RedisClient) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:user",
		Limit:       limit,
		Period:      period,
	})
}
