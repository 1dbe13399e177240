// -----------------------------------------------------------------------------
// Memory Cache Driver
// -----------------------------------------------------------------------------
// In-memory cache implementation (non-persistent).
//
// Testing ve geçici cache için idealdir.
// Request-level cache, unit test, development ortamlarında kullanılır.
//
// Özellikler:
// - Ultra-fast (direct memory access)
// - Thread-safe (sync.RWMutex)
// - TTL support (automatic cleanup)
// - No serialization overhead
// - No external dependencies
//
// Sınırlamalar:
// - Non-persistent (restart'ta kaybolur)
// - Single-server only (distributed değil)
// -----------------------------------------------------------------------------

package cache

import (
	"log"
	"sync"
	"time"
)

// MemoryCacheEntry, memory'de saklanan veri yapısı.
type MemoryCacheEntry struct {
	Value     interface{} // Gerçek değer (pointer)
	ExpiresAt time.Time   // Expire zamanı (zero value = süresiz)
}

// IsExpired, entry'nin expire olup olmadığını kontrol eder.
func (e *MemoryCacheEntry) IsExpired() bool {
	if e.ExpiresAt.IsZero() {
		return false // Süresiz
	}
	return time.Now().After(e.ExpiresAt)
}

// MemoryCache, in-memory cache implementation.
type MemoryCache struct {
	store  map[string]*MemoryCacheEntry
	mu     sync.RWMutex
	logger *log.Logger
}

// NewMemoryCache, yeni bir Memory cache instance oluşturur.
//
// Örnek:
//
//	cache := NewMemoryCache(logger)
//	cache.Set("db:credentials", creds, 15*time.Minute)
func NewMemoryCache(logger *log.Logger) *MemoryCache {
	mc := &MemoryCache{
		store:  make(map[string]*MemoryCacheEntry),
		logger: logger,
	}

	// Garbage collection başlat
	go mc.startGarbageCollection()

	logger.Println("✅ Memory cache başlatıldı")

	return mc
}

// Get, cache'den veri okur.
func (m *MemoryCache) Get(key string) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.store[key]
	if !exists {
		return nil, nil // Cache miss
	}

	// TTL kontrolü
	if entry.IsExpired() {
		// Expired - silinecek (GC tarafından)
		return nil, nil
	}

	return entry.Value, nil
}

// Set, cache'e veri yazar.
func (m *MemoryCache) Set(key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Expire zamanını hesapla
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.store[key] = &MemoryCacheEntry{
		Value:     value,
		ExpiresAt: expiresAt,
	}

	return nil
}

// Delete, cache'den veri siler.
func (m *MemoryCache) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.store, key)
	return nil
}

// Has, key'in varlığını kontrol eder.
func (m *MemoryCache) Has(key string) (bool, error) {
	val, err := m.Get(key)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}

// Remember, cache'den okur veya callback'i çalıştırıp cache'ler.
func (m *MemoryCache) Remember(key string, ttl time.Duration, callback func() (interface{}, error)) (interface{}, error) {
	// Önce cache'i kontrol et
	val, err := m.Get(key)
	if err != nil {
		return nil, err
	}

	// Cache hit
	if val != nil {
		return val, nil
	}

	// Cache miss - callback çalıştır
	result, err := callback()
	if err != nil {
		return nil, err
	}

	// Cache'e yaz
	if err := m.Set(key, result, ttl); err != nil {
		m.logger.Printf("⚠️  Remember cache yazma hatası [%s]: %v", key, err)
	}

	return result, nil
}

// Flush, tüm cache'i temizler.
func (m *MemoryCache) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]*MemoryCacheEntry)
	m.logger.Println("⚠️  Memory cache tamamen temizlendi")

	return nil
}

// startGarbageCollection, expired entry'leri periyodik olarak temizler.
//
// Her 5 dakikada bir çalışır, memory leak önler.
func (m *MemoryCache) startGarbageCollection() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanExpiredEntries()
	}
}

// cleanExpiredEntries, expired entry'leri temizler.
func (m *MemoryCache) cleanExpiredEntries() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleaned := 0
	for key, entry := range m.store {
		if entry.IsExpired() {
			delete(m.store, key)
			cleaned++
		}
	}

	if cleaned > 0 {
		m.logger.Printf("🧹 Memory cache garbage collection: %d expired entry silindi", cleaned)
	}
}

// Size, cache'deki toplam entry sayısını döndürür.
//
// Debug ve monitoring için kullanılır.
func (m *MemoryCache) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.store)
}
