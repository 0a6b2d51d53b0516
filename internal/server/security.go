package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/osse101/TornBot_Go/internal/logger"
)

// AuthMiddleware validates the X-API-Key header on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, detector *FailedAuthDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.Record(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// FailedAuthDetector counts failed authentications per IP and alerts past a threshold
type FailedAuthDetector struct {
	mu          sync.Mutex
	failedByIP  map[string]int
	windowStart time.Time
	now         func() time.Time
}

// NewFailedAuthDetector creates a detector with a fresh window
func NewFailedAuthDetector() *FailedAuthDetector {
	return &FailedAuthDetector{
		failedByIP:  make(map[string]int),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Record notes one failed attempt and returns the count in the current window
func (d *FailedAuthDetector) Record(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.now().Sub(d.windowStart) > FailedAuthWindow {
		d.failedByIP = make(map[string]int)
		d.windowStart = d.now()
	}
	d.failedByIP[ip]++

	n := d.failedByIP[ip]
	if n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rps      rate.Limit
	burst    int
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with the given burst
func NewIPRateLimiter(rps rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*ipLimiter),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether a request from ip may proceed now
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	il, ok := l.limiters[ip]
	if !ok {
		il = &ipLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[ip] = il
	}
	il.lastSeen = time.Now()
	l.mu.Unlock()

	return il.limiter.Allow()
}

// Prune drops limiters not used since cutoff
func (l *IPRateLimiter) Prune(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, il := range l.limiters {
		if il.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// RateLimitMiddleware rejects clients that exhaust their token bucket
func RateLimitMiddleware(trustedProxies []string, limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "ip", ip)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only trusted when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// rightmost entry is the hop our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
