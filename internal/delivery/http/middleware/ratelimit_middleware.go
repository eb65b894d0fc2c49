package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"encontrapsi/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware limits requests per client IP. Used on the public
// checkout endpoint so the payment provider is not hammered by retries.
type RateLimitMiddleware struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	clients map[string]*clientLimiter
	stopCh  chan struct{}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

const limiterCleanupInterval = 5 * time.Minute

func NewRateLimitMiddleware(perMinute int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

// Stop ends the background cleanup goroutine.
func (m *RateLimitMiddleware) Stop() {
	close(m.stopCh)
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.getOrCreate(clientIP(r))

		if !limiter.Allow() {
			retryAfter := int(math.Ceil(1.0 / float64(m.limit)))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getOrCreate(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cl, ok := m.clients[ip]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(m.limit, m.burst)
	m.clients[ip] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}
	return limiter
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

func (m *RateLimitMiddleware) cleanup() {
	ttl := limiterCleanupInterval * 2
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for ip, cl := range m.clients {
		if now.Sub(cl.lastAccess) > ttl {
			delete(m.clients, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
