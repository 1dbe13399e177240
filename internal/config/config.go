// -----------------------------------------------------------------------------
// Config Package
// -----------------------------------------------------------------------------
// Bu dosya, uygulamanın merkezi konfigürasyon yönetimini sağlar. Laravel veya
// Symfony gibi frameworklerdeki .env ve config yapısına benzer bir şekilde,
// ortam değişkenlerini okuyarak uygulama, veritabanı ve sunucu ayarlarını
// merkezi olarak yönetir.
//
// Config yapısı, uygulamanın tüm kritik parametrelerini tip güvenli bir şekilde
// taşır ve varsayılan değerler ile birlikte çalışır. Eksik ortam değişkenleri
// olduğunda log üzerinden uyarı verir ve default değerleri kullanır.
// -----------------------------------------------------------------------------

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config, uygulamanın merkezi yapılandırma nesnesidir.
//
// Nested struct yapısı kullanılarak ilgili ayarlar gruplandırılmıştır:
//   - App: Uygulama genel ayarları
//   - Server: Sunucu ayarları
//   - DB: Veritabanı havuz ayarları (kimlik bilgileri credential provider'dan gelir)
//   - Credentials: Veritabanı kimlik bilgisi kaynağı ve cache ayarları
//   - JWT: Servis authentication token ayarları
//   - Auth: API key istemci tanımları
//   - Redis: Redis bağlantı ayarları
//   - Cache: Cache sistem ayarları
//   - RateLimit: Rate limiting ayarları
type Config struct {
	App struct {
		Name string // Uygulama adı
		Env  string // Ortam (development, production, test)
		URL  string // Uygulama URL'si
	}

	Server struct {
		Port string // Sunucunun çalışacağı port
	}

	DB struct {
		Name            string        // Veritabanı adı
		MaxOpenConns    int           // Maksimum açık bağlantı sayısı
		MaxIdleConns    int           // Maksimum boşta bekleyen bağlantı sayısı
		ConnMaxLifetime time.Duration // Bağlantı maksimum ömrü
	}

	Credentials struct {
		Host     string        // Veritabanı host adresi
		Port     int           // Veritabanı port
		Username string        // Veritabanı kullanıcı adı
		Password string        // Veritabanı şifresi
		CacheTTL time.Duration // Kimlik bilgisi cache süresi
	}

	JWT struct {
		Secret     string        // JWT secret key
		Expiration time.Duration // Access token süresi
	}

	Auth struct {
		// APIClients, "clientID=bcryptHash=scope1 scope2;..." biçiminde API
		// key istemci tanımlarını taşır. ParseAPIClients ile ayrıştırılır.
		APIClients string
	}

	Redis struct {
		Host     string // Redis host adresi
		Port     int    // Redis port
		Password string // Redis şifresi (opsiyonel)
		DB       int    // Database numarası (0-15)
	}

	Cache struct {
		Driver string // Cache driver: redis, memory
		Prefix string // Cache key prefix (namespace)
	}

	RateLimit struct {
		Enabled       bool // Rate limiting aktif mi?
		MaxRequests   int  // Maksimum istek sayısı
		WindowSeconds int  // Zaman penceresi (saniye)
	}
}

// Load, ortam değişkenlerini okuyarak Config nesnesini döndürür.
//
// Eksik değişkenlerde varsayılan değerleri kullanır ve log mesajı üretir.
// Tüm ayarlar environment variable'lardan okunur (.env dosyası veya sistem).
//
// Örnek kullanım:
//
//	cfg := config.Load()
//	log.Printf("Environment: %s", cfg.App.Env)
//	log.Printf("Cache Driver: %s", cfg.Cache.Driver)
func Load() *Config {
	cfg := &Config{}

	// Helper function: Ortam değişkenini oku, yoksa default kullan
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		log.Printf("⚠️  Uyarı: %s ortam değişkeni bulunamadı, varsayılan (%s) kullanılıyor.", key, defaultValue)
		return defaultValue
	}

	// Helper function: Integer ortam değişkeni
	getEnvAsInt := func(key string, defaultValue int) int {
		valueStr := os.Getenv(key)
		if valueStr == "" {
			log.Printf("⚠️  Uyarı: %s ortam değişkeni bulunamadı, varsayılan (%d) kullanılıyor.", key, defaultValue)
			return defaultValue
		}

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			log.Printf("⚠️  Uyarı: %s için geçersiz değer: %s, varsayılan (%d) kullanılıyor.", key, valueStr, defaultValue)
			return defaultValue
		}

		return value
	}

	// Helper function: Boolean ortam değişkeni
	getEnvAsBool := func(key string, defaultValue bool) bool {
		valueStr := os.Getenv(key)
		if valueStr == "" {
			return defaultValue
		}

		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			log.Printf("⚠️  Uyarı: %s için geçersiz boolean değer: %s, varsayılan (%t) kullanılıyor.", key, valueStr, defaultValue)
			return defaultValue
		}

		return value
	}

	// Helper function: Duration ortam değişkeni (saniye cinsinden)
	getEnvAsDuration := func(key string, defaultSeconds int) time.Duration {
		seconds := getEnvAsInt(key, defaultSeconds)
		return time.Duration(seconds) * time.Second
	}

	// Application Configuration
	cfg.App.Name = getEnv("APP_NAME", "Product-Catalog-API")
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.URL = getEnv("APP_URL", "http://localhost:8000")

	// Server Configuration
	cfg.Server.Port = getEnv("PORT", "8000")

	// Database Configuration
	cfg.DB.Name = getEnv("DB_NAME", "product_catalog")
	cfg.DB.MaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	cfg.DB.MaxIdleConns = getEnvAsInt("DB_MAX_IDLE_CONNS", 25)
	cfg.DB.ConnMaxLifetime = getEnvAsDuration("DB_CONN_MAX_LIFETIME", 300) // 5 dakika

	// Database Credentials
	cfg.Credentials.Host = getEnv("DB_HOST", "127.0.0.1")
	cfg.Credentials.Port = getEnvAsInt("DB_PORT", 3306)
	cfg.Credentials.Username = getEnv("DB_USERNAME", "root")
	cfg.Credentials.Password = getEnv("DB_PASSWORD", "password")
	cfg.Credentials.CacheTTL = getEnvAsDuration("DB_CREDENTIALS_CACHE_TTL", 900) // 15 dakika

	// JWT Configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production")
	cfg.JWT.Expiration = getEnvAsDuration("JWT_EXPIRATION", 3600) // 1 saat

	// API Key Clients
	cfg.Auth.APIClients = getEnv("API_CLIENTS", "")

	// Redis Configuration
	cfg.Redis.Host = getEnv("REDIS_HOST", "127.0.0.1")
	cfg.Redis.Port = getEnvAsInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// Cache Configuration
	cfg.Cache.Driver = getEnv("CACHE_DRIVER", "memory") // redis, memory
	cfg.Cache.Prefix = getEnv("CACHE_PREFIX", "catalog:")

	// Rate Limiting Configuration
	cfg.RateLimit.Enabled = getEnvAsBool("RATE_LIMIT_ENABLED", true)
	cfg.RateLimit.MaxRequests = getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100)
	cfg.RateLimit.WindowSeconds = getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)

	// Validation
	if err := cfg.Validate(); err != nil {
		log.Printf("❌ Config validation hatası: %v", err)
	}

	return cfg
}

// ParseAPIClients, API_CLIENTS ortam değişkenini iki haritaya ayrıştırır:
// clientID -> bcrypt hash ve clientID -> scope listesi.
//
// Biçim: "clientID=bcryptHash=scope1 scope2;clientID2=hash2=scope1"
//
// Hatalı kayıtlar loglanır ve atlanır; boş değişken boş haritalar döndürür.
func (c *Config) ParseAPIClients() (map[string]string, map[string]string) {
	keys := make(map[string]string)
	scopes := make(map[string]string)

	if c.Auth.APIClients == "" {
		return keys, scopes
	}

	for _, entry := range strings.Split(c.Auth.APIClients, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, "=", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			log.Printf("⚠️  Uyarı: geçersiz API_CLIENTS kaydı atlandı: %q", entry)
			continue
		}

		keys[parts[0]] = parts[1]
		scopes[parts[0]] = parts[2]
	}

	return keys, scopes
}

// Validate, config değerlerinin geçerliliğini kontrol eder.
//
// Production ortamı için kritik kontroller yapar:
// - JWT secret uzunluğu (min 32 karakter)
// - Cache driver geçerliliği
// - Production'da default secret/şifre kontrolü
func (c *Config) Validate() error {
	// JWT secret kontrolü (Production)
	if c.IsProduction() {
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("JWT_SECRET production'da en az 32 karakter olmalı")
		}

		// Default secret kontrolü
		if c.JWT.Secret == "your-super-secret-jwt-key-change-this-in-production" {
			return fmt.Errorf("JWT_SECRET production'da değiştirilmelidir")
		}

		if c.Credentials.Password == "password" {
			return fmt.Errorf("DB_PASSWORD production'da değiştirilmelidir")
		}
	}

	// Cache driver kontrolü
	validDrivers := map[string]bool{
		"redis":  true,
		"memory": true,
	}
	if !validDrivers[c.Cache.Driver] {
		return fmt.Errorf("geçersiz CACHE_DRIVER: %s (redis veya memory olmalı)", c.Cache.Driver)
	}

	// Production uyarıları
	if c.IsProduction() {
		if c.Cache.Driver == "memory" {
			log.Println("⚠️  UYARI: Memory cache production ortamı için önerilmez!")
		}
	}

	return nil
}

// IsProduction, uygulamanın production ortamında çalışıp çalışmadığını kontrol eder.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment, uygulamanın development ortamında çalışıp çalışmadığını kontrol eder.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsTest, uygulamanın test ortamında çalışıp çalışmadığını kontrol eder.
func (c *Config) IsTest() bool {
	return c.App.Env == "test"
}
