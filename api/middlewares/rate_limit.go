package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorSet is a per-IP limiter table.
type visitorSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    time.Duration
	burst    int
}

func newVisitorSet(every time.Duration, burst int) *visitorSet {
	return &visitorSet{visitors: make(map[string]*visitor), every: every, burst: burst}
}

var (
	// Every API call.
	apiVisitors = newVisitorSet(100*time.Millisecond, 20)

	// Whole-dataset operations (snapshot import and backup).
	bulkVisitors = newVisitorSet(10*time.Second, 3)
)

const visitorTTL = 10 * time.Minute

func (s *visitorSet) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	v, exists := s.visitors[ip]
	if !exists {
		s.prune(now)
		limiter := rate.NewLimiter(rate.Every(s.every), s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: now}
		return limiter
	}

	v.lastSeen = now
	return v.limiter
}

// prune drops visitors idle for longer than visitorTTL. Callers hold mu.
func (s *visitorSet) prune(now time.Time) {
	for ip, v := range s.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(s.visitors, ip)
		}
	}
}

func (s *visitorSet) reset() {
	s.mu.Lock()
	s.visitors = make(map[string]*visitor)
	s.mu.Unlock()
}

func limit(s *visitorSet, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware applies a per-IP rate limit for all routes.
func RateLimitMiddleware() gin.HandlerFunc {
	return limit(apiVisitors, "Too many requests. Please slow down.")
}

// BulkRateLimitMiddleware applies a stricter per-IP limit for routes that
// read or replace the whole dataset.
func BulkRateLimitMiddleware() gin.HandlerFunc {
	return limit(bulkVisitors, "Too many snapshot requests. Please wait and try again.")
}
