package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiter keeps a token bucket per client IP so one chat bot or
// dashboard cannot hammer the upstream site through us.
type rateLimiter struct {
	visitors   map[string]*visitor
	visitorsMu sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter() *rateLimiter {
	limiter := &rateLimiter{
		visitors:   map[string]*visitor{},
		visitorsMu: sync.Mutex{},
	}

	go limiter.cleanupVisitors()

	return limiter
}

func (r *rateLimiter) getVisitor(ip string) *rate.Limiter {
	r.visitorsMu.Lock()
	defer r.visitorsMu.Unlock()

	existing, found := r.visitors[ip]
	if !found {
		limiter := rate.NewLimiter(2, 32)
		r.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}

		return limiter
	}

	existing.lastSeen = time.Now()

	return existing.limiter
}

func (r *rateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)

	for range ticker.C {
		r.visitorsMu.Lock()

		for ip, seen := range r.visitors {
			if time.Since(seen.lastSeen) > 3*time.Minute {
				delete(r.visitors, ip)
			}
		}

		r.visitorsMu.Unlock()
	}
}

func (r *rateLimiter) middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !r.getVisitor(ctx.ClientIP()).Allow() {
			ctx.AbortWithStatus(http.StatusTooManyRequests)

			return
		}

		ctx.Next()
	}
}
