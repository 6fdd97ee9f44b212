package httpadapter

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"golang.org/x/time/rate"
)

// ProfileLimiter hands out one token bucket per profile so a single client
// cannot flood catch-up replays.
type ProfileLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func NewProfileLimiter(perSecond float64, burst int) *ProfileLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ProfileLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: map[string]*rate.Limiter{},
	}
}

func (l *ProfileLimiter) Allow(key string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func rateLimitMiddleware(l *ProfileLimiter) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		key := ctx.Param("profile")
		if key == "" {
			key = ctx.ClientIP()
		}
		if !l.Allow(key) {
			writeErrorBody(ctx, consts.StatusTooManyRequests, "rate_limited", "too many requests")
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}
