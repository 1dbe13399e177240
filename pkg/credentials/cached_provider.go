// -----------------------------------------------------------------------------
// Cached Credential Provider
// -----------------------------------------------------------------------------
// Provider'ı TTL'li cache ile saran decorator.
//
// Kimlik bilgisi kaynağı pahalı olabilir (secret manager, uzak servis).
// CachedProvider, çözülen bilgileri cache'te tutar ve TTL dolana kadar
// kaynağa tekrar gitmez. Cache hatası fatal değildir; kaynaktan çözmeye
// devam edilir.
// -----------------------------------------------------------------------------

package credentials

import (
	"log"
	"time"

	"github.com/biyonik/product-catalog-api/pkg/cache"
)

// cacheKey, kimlik bilgilerinin cache'te saklandığı anahtar.
const cacheKey = "db:credentials"

// CachedProvider, bir Provider'ı cache ile sarar.
type CachedProvider struct {
	inner  Provider
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewCachedProvider, verilen provider'ı cache'leyen yeni bir provider oluşturur.
//
// Örnek:
//
//	provider := NewCachedProvider(NewStaticProvider(creds), redisCache, 15*time.Minute, logger)
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration, logger *log.Logger) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve, kimlik bilgilerini önce cache'ten, yoksa iç provider'dan çözer.
func (p *CachedProvider) Resolve() (Credentials, error) {
	// 1. Cache'i kontrol et
	cached, err := p.cache.Get(cacheKey)
	if err != nil {
		// Cache hatası fatal değil - kaynaktan çözmeye devam et
		p.logger.Printf("⚠️  Credential cache okuma hatası: %v", err)
	}

	if cached != nil {
		if creds, ok := decodeCached(cached); ok {
			return creds, nil
		}
		p.logger.Printf("⚠️  Credential cache kaydı çözülemedi, kaynaktan yenileniyor")
	}

	// 2. Cache miss - iç provider'dan çöz
	creds, err := p.inner.Resolve()
	if err != nil {
		return Credentials{}, err
	}

	// 3. Cache'e yaz
	if err := p.cache.Set(cacheKey, creds, p.ttl); err != nil {
		p.logger.Printf("⚠️  Credential cache yazma hatası: %v", err)
	}

	return creds, nil
}

// Invalidate, cache'lenmiş kimlik bilgilerini siler.
//
// Kimlik bilgileri rotate edildiğinde çağrılır; sonraki Resolve kaynaktan okur.
func (p *CachedProvider) Invalidate() error {
	return p.cache.Delete(cacheKey)
}

// decodeCached, cache'ten dönen değeri Credentials'a çevirir.
//
// Memory driver değeri olduğu gibi saklar (Credentials tipi korunur).
// Redis driver JSON round-trip yaptığı için map[string]interface{} döner;
// her iki biçim de desteklenir.
func decodeCached(value interface{}) (Credentials, bool) {
	switch v := value.(type) {
	case Credentials:
		return v, true
	case map[string]interface{}:
		creds := Credentials{}

		if host, ok := v["host"].(string); ok {
			creds.Host = host
		}
		if username, ok := v["username"].(string); ok {
			creds.Username = username
		}
		if password, ok := v["password"].(string); ok {
			creds.Password = password
		}
		if database, ok := v["database"].(string); ok {
			creds.Database = database
		}
		// JSON sayıları float64 olarak gelir
		if port, ok := v["port"].(float64); ok {
			creds.Port = int(port)
		}

		if creds.Host == "" || creds.Username == "" || creds.Database == "" || creds.Port <= 0 {
			return Credentials{}, false
		}

		return creds, true
	default:
		return Credentials{}, false
	}
}
