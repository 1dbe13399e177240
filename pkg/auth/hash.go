// -----------------------------------------------------------------------------
// API Key Hashing Package
// -----------------------------------------------------------------------------
// Bu dosya, servis istemcilerine verilen API anahtarlarının güvenli bir
// şekilde hash'lenmesi ve doğrulanması için fonksiyonlar sağlar. bcrypt
// algoritması kullanılır.
//
// bcrypt neden?
// - Brute force saldırılarına karşı yavaş (kasıtlı olarak)
// - Salt otomatik olarak eklenir
// - Zaman içinde cost factor artırılabilir (güvenlik artışı)
// - Endüstri standardı
//
// Güvenlik Notu:
// - Minimum cost: 10 (development), 12 (production)
// - Her anahtar için unique salt kullanılır (bcrypt otomatik halleder)
// - Rainbow table saldırılarına karşı korumalıdır
// -----------------------------------------------------------------------------

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost, bcrypt hash algoritmasının maliyet faktörüdür.
// Yüksek değer = daha güvenli ama daha yavaş
//
// Önerilen değerler:
//   - Development: 10 (hızlı test için)
//   - Production: 12-14 (güvenlik için)
const HashCost = 12

// Hash, düz metin API anahtarını bcrypt ile hash'ler.
//
// Örnek:
//
//	hashed, err := auth.Hash("sk_live_4f2a...")
//	// hashed: "$2a$12$LQv3c1yqBWVHxkd0LHAkCOYz6TtxMQJqhN8/LewY5GyYvXr6rKW9W"
//
// Güvenlik Notu:
// - Asla orijinal anahtarı konfigürasyona kaydetmeyin!
// - Hash'i kaydedin, doğrulama için Check() kullanın
func Hash(apiKey string) (string, error) {
	// Boş anahtar kontrolü
	if apiKey == "" {
		return "", errors.New("api key cannot be empty")
	}

	// bcrypt ile hash oluştur
	bytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), HashCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check, düz metin API anahtarını hash ile karşılaştırır.
//
// Örnek:
//
//	isValid := auth.Check(keyFromHeader, hashedFromConfig)
//	if !isValid {
//	    return errors.New("invalid credentials")
//	}
//
// Güvenlik Notu:
// - Bu fonksiyon kasıtlı olarak yavaştır (timing attack koruması)
// - Hatalı anahtar için bile aynı sürede döner
func Check(apiKey, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
	return err == nil
}

// NeedsRehash, mevcut hash'in yeni cost factor ile tekrar hash'lenmesi
// gerekip gerekmediğini kontrol eder.
//
// Kullanım Senaryosu:
// Zaman içinde güvenlik standartları değişir. Eski istemcilerin anahtarları
// düşük cost factor ile hash'lenmiş olabilir; anahtar rotasyonu sırasında bu
// fonksiyonla tespit edilir.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false
	}
	return cost < HashCost
}

// MustHash, Hash fonksiyonunun panic atan versiyonudur.
// Test veya seed data oluştururken kullanışlıdır.
//
// UYARI: Production kodunda MustHash kullanmayın! Sadece test/seed için.
func MustHash(apiKey string) string {
	hash, err := Hash(apiKey)
	if err != nil {
		panic("failed to hash api key: " + err.Error())
	}
	return hash
}
