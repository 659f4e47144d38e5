package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/karrieremum/adminsvc/pkg/slogx"
)

// RateLimitConfig describes one rate limit profile.
type RateLimitConfig struct {
	// RequestsPerWindow allowed within Window
	RequestsPerWindow int
	Window            time.Duration
	// Burst allows short spikes above the sustained rate
	Burst int
}

// Profiles for the admin surface. Each can be overridden through
// RATELIMIT_{NAME}_{REQUESTS,WINDOW_SEC,BURST}; the e2e suite raises them
// so rapid test traffic doesn't trip the production defaults.
var (
	// ModerateLimit guards mutating admin operations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit guards read-only endpoints and health probes.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
)

func init() {
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
}

// ParseRateLimitFromEnv overlays a profile with RATELIMIT_{prefix}_REQUESTS,
// RATELIMIT_{prefix}_WINDOW_SEC and RATELIMIT_{prefix}_BURST when set.
// Unparsable or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def

	if n, ok := envPositiveInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := envPositiveInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := envPositiveInt("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}

	return cfg
}

func envPositiveInt(name string) (int, bool) {
	val := os.Getenv(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor derives the grouping key a request is limited under
// (client IP, user id, a combination).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client IP, preferring proxy headers
// (X-Forwarded-For first hop, then X-Real-IP) over the socket address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserIDKeyExtractor returns the authenticated user's id, or "" before
// AuthnMiddleware has run.
func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromCtx(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of several extractors.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// keyedLimiter holds one token bucket per key and periodically drops
// buckets that have gone idle so the map stays bounded.
type keyedLimiter struct {
	rate  rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	sweepAt time.Time
}

const sweepInterval = 5 * time.Minute

func newKeyedLimiter(cfg RateLimitConfig) *keyedLimiter {
	perSecond := float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()
	return &keyedLimiter{
		rate:    rate.Limit(perSecond),
		burst:   cfg.Burst,
		buckets: make(map[string]*rate.Limiter),
		sweepAt: time.Now().Add(sweepInterval),
	}
}

func (kl *keyedLimiter) get(key string) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if now := time.Now(); now.After(kl.sweepAt) {
		kl.sweepAt = now.Add(sweepInterval)
		for k, b := range kl.buckets {
			// A full bucket means the key has been idle long enough
			// to refill completely.
			if b.Tokens() >= float64(kl.burst) {
				delete(kl.buckets, k)
			}
		}
	}

	b, ok := kl.buckets[key]
	if !ok {
		b = rate.NewLimiter(kl.rate, kl.burst)
		kl.buckets[key] = b
	}
	return b
}

// RateLimitMiddleware enforces cfg per key. Over-budget requests get a 429
// with Retry-After and the service's JSON error shape.
func RateLimitMiddleware(cfg RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				// No usable key; let the request through but note it
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			bucket := kl.get(key)
			if bucket.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			// Peek at when the next token arrives without consuming it.
			res := bucket.Reserve()
			delay := res.Delay()
			res.Cancel()

			retryAfter := max(int(delay.Seconds()), 1)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			log.Warn("rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"message": "Too many requests. Please try again later.",
			})
		})
	}
}

// RateLimitByIP limits by client IP only. Used on unauthenticated endpoints.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user id, with the client IP mixed
// in so an unauthenticated caller still gets a usable key.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}
