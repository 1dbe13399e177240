package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/biyonik/product-catalog-api/internal/http/response"
)

// -----------------------------------------------------------------------------
// Rate Limiting Middleware
// -----------------------------------------------------------------------------
// İstemci başına token bucket rate limiting. Bucket implementasyonu
// golang.org/x/time/rate'e delegate edilir; bu dosya sadece istemci bazlı
// limiter registry'sini ve lifecycle yönetimini içerir.
//
// Key seçimi: doğrulanmış istemcilerde client ID, anonim isteklerde
// RemoteAddr kullanılır. Böylece NAT arkasındaki farklı servisler birbirinin
// kotasını tüketmez.
// -----------------------------------------------------------------------------

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu              sync.Mutex
	clients         map[string]*clientLimiter
	maxRequests     int
	windowInSeconds int
	ctx             context.Context
	cancel          context.CancelFunc
	wg              sync.WaitGroup
}

// Global limiter registry - graceful shutdown için
var (
	limiterRegistry   = make(map[*RateLimiter]bool)
	limiterRegistryMu sync.Mutex
)

// NewRateLimiter, yeni bir RateLimiter oluşturur.
func NewRateLimiter(maxRequests int, windowInSeconds int) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())

	limiter := &RateLimiter{
		clients:         make(map[string]*clientLimiter),
		maxRequests:     maxRequests,
		windowInSeconds: windowInSeconds,
		ctx:             ctx,
		cancel:          cancel,
	}

	// Registry'e ekle
	limiterRegistryMu.Lock()
	limiterRegistry[limiter] = true
	limiterRegistryMu.Unlock()

	// Cleanup goroutine'ini başlat
	limiter.startCleanup()

	return limiter
}

// startCleanup, cleanup goroutine'ini başlatır.
func (rl *RateLimiter) startCleanup() {
	rl.wg.Add(1)
	go rl.cleanupLoop()
}

// cleanupLoop, periyodik olarak uzun süredir görülmeyen istemcileri temizler.
func (rl *RateLimiter) cleanupLoop() {
	defer rl.wg.Done()

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.ctx.Done():
			// Graceful shutdown
			return
		}
	}
}

// cleanup, pencere süresinin iki katından uzun süredir istek göndermeyen
// istemcilerin limiter'larını siler.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	expiry := time.Duration(rl.windowInSeconds) * time.Second * 2

	for key, client := range rl.clients {
		if now.Sub(client.lastSeen) > expiry {
			delete(rl.clients, key)
		}
	}
}

// Stop, rate limiter'ı gracefully durdurur.
func (rl *RateLimiter) Stop() {
	// Registry'den çıkar
	limiterRegistryMu.Lock()
	delete(limiterRegistry, rl)
	limiterRegistryMu.Unlock()

	// Goroutine'i durdur
	rl.cancel()
	rl.wg.Wait()
}

// StopAllLimiters, tüm aktif rate limiter'ları durdurur.
// Bu fonksiyon main.go'daki shutdown hook'undan çağrılmalı.
func StopAllLimiters() {
	limiterRegistryMu.Lock()
	limiters := make([]*RateLimiter, 0, len(limiterRegistry))
	for limiter := range limiterRegistry {
		limiters = append(limiters, limiter)
	}
	limiterRegistryMu.Unlock()

	// Tüm limiter'ları durdur
	for _, limiter := range limiters {
		limiter.Stop()
	}
}

// Allow, belirtilen key için bir isteğin izin verilip verilmeyeceğini ve
// kalan token sayısını döndürür.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[key]
	if !exists {
		refillRate := rate.Limit(float64(rl.maxRequests) / float64(rl.windowInSeconds))
		client = &clientLimiter{
			limiter: rate.NewLimiter(refillRate, rl.maxRequests),
		}
		rl.clients[key] = client
	}
	client.lastSeen = time.Now()

	allowed := client.limiter.Allow()
	return allowed, int(client.limiter.Tokens())
}

// RateLimit, rate limiting middleware'ini döndürür.
func RateLimit(maxRequests int, windowInSeconds int) Middleware {
	limiter := NewRateLimiter(maxRequests, windowInSeconds)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Rate limiting key'ini belirle: doğrulanmış istemci varsa
			// client ID, yoksa IP adresi
			key := r.RemoteAddr
			if clientID := GetClientID(r.Context()); clientID != "" {
				key = "client:" + clientID
			}

			// İsteğe izin ver
			allowed, remaining := limiter.Allow(key)

			// Rate limit header'larını ekle
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Duration(windowInSeconds)*time.Second).Unix()))

			if !allowed {
				// Limit aşıldı
				w.Header().Set("Retry-After", fmt.Sprintf("%d", windowInSeconds))
				response.TooManyRequests(w, "")
				return
			}

			// İzin verildi
			next.ServeHTTP(w, r)
		})
	}
}
