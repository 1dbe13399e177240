// -----------------------------------------------------------------------------
// Cache Interface
// -----------------------------------------------------------------------------
// Laravel-style cache interface tanımı.
//
// Bu dosya tüm cache driver'ların implement etmesi gereken interface'i tanımlar.
// Driver'lar: Redis, Memory
//
// Bu projede cache'in asli kullanıcısı credential provider'dır: veritabanı
// kimlik bilgileri her istekte kaynaktan çözülmek yerine TTL'li olarak
// cache'lenir.
//
// Özellikler:
// - Get/Set/Delete operations
// - TTL (Time To Live) support
// - Remember pattern (cache or execute)
// - Flush (clear all)
// -----------------------------------------------------------------------------

package cache

import (
	"time"
)

// Cache, tüm cache driver'ların implement etmesi gereken interface.
//
// Bu interface Laravel Cache facade pattern'ini takip eder.
// Her driver (Redis, Memory) bu interface'i implement eder.
//
// Örnek kullanım:
//
//	var cache Cache = NewRedisCache(redisClient, logger, "catalog:")
//	cache.Set("db:credentials", creds, 15*time.Minute)
type Cache interface {
	// Get, cache'den veri okur.
	//
	// Key bulunamazsa nil döner, hata vermez.
	//
	// Örnek:
	//   value, err := cache.Get("db:credentials")
	//   if err != nil {
	//       return err
	//   }
	//   if value == nil {
	//       // Cache miss
	//   }
	Get(key string) (interface{}, error)

	// Set, cache'e veri yazar.
	//
	// TTL (Time To Live) belirtilirse, süre sonunda otomatik silinir.
	// TTL = 0 ise süresiz saklanır (dikkatli kullan!).
	//
	// Güvenlik Notu:
	// - Sensitive data cache'lemeden önce encrypt edilmeli
	// - TTL mutlaka belirlenmeli (memory leak önlemek için)
	Set(key string, value interface{}, ttl time.Duration) error

	// Delete, cache'den veri siler.
	//
	// Key bulunamazsa hata vermez, sessizce geçer.
	Delete(key string) error

	// Has, key'in cache'de olup olmadığını kontrol eder.
	Has(key string) (bool, error)

	// Remember, cache'den okur, bulamazsa fonksiyonu çalıştırıp cache'ler.
	//
	// Bu Laravel'in en popüler pattern'lerinden biri:
	// "Cache'de varsa al, yoksa hesapla ve cache'le"
	//
	// Örnek:
	//   creds, err := cache.Remember("db:credentials", 15*time.Minute, func() (interface{}, error) {
	//       return resolveCredentials()
	//   })
	//
	// Güvenlik Notu:
	// - Callback fonksiyonu thread-safe olmalı
	// - Race condition'a karşı dikkatli olunmalı
	Remember(key string, ttl time.Duration, callback func() (interface{}, error)) (interface{}, error)

	// Flush, tüm cache'i temizler.
	//
	// UYARI: Bu operasyon geri alınamaz!
	// Production'da dikkatli kullanılmalı.
	Flush() error
}
