// -----------------------------------------------------------------------------
// Product Catalog API - Server Entry Point
// -----------------------------------------------------------------------------
// Uygulamanın giriş noktası. Tüm katmanlar burada birbirine bağlanır:
//
//  1. Config yüklenir (environment variables)
//  2. Cache driver seçilir (redis / memory)
//  3. Veritabanı kimlik bilgileri credential provider'dan çözülür
//  4. MySQL bağlantı havuzu kurulur
//  5. Guard'lar hazırlanır (JWT + API key)
//  6. Event dispatcher ve listener'lar kurulur
//  7. Repository -> Service -> Controller zinciri kurulur
//  8. Router ve middleware'ler bağlanır
//  9. HTTP server graceful shutdown ile başlatılır
// -----------------------------------------------------------------------------

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biyonik/product-catalog-api/internal/config"
	"github.com/biyonik/product-catalog-api/internal/controllers"
	"github.com/biyonik/product-catalog-api/internal/middleware"
	"github.com/biyonik/product-catalog-api/internal/repositories"
	"github.com/biyonik/product-catalog-api/internal/router"
	"github.com/biyonik/product-catalog-api/internal/services"
	"github.com/biyonik/product-catalog-api/pkg/auth"
	"github.com/biyonik/product-catalog-api/pkg/cache"
	"github.com/biyonik/product-catalog-api/pkg/credentials"
	"github.com/biyonik/product-catalog-api/pkg/database"
	"github.com/biyonik/product-catalog-api/pkg/events"
)

func main() {
	logger := log.New(os.Stdout, "[catalog] ", log.LstdFlags)

	// 1. Config yükle
	cfg := config.Load()
	logger.Printf("✅ Config yüklendi: %s (%s)", cfg.App.Name, cfg.App.Env)

	// 2. Cache driver seç
	appCache, redisClient := buildCache(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 3. Veritabanı kimlik bilgilerini çöz
	//
	// Static provider config'den okur; cached provider TTL süresince cache'ler
	// ki kimlik kaynağı her bağlantı kurulumunda tekrar çözülmesin.
	staticProvider := credentials.NewStaticProvider(credentials.Credentials{
		Host:     cfg.Credentials.Host,
		Port:     cfg.Credentials.Port,
		Username: cfg.Credentials.Username,
		Password: cfg.Credentials.Password,
		Database: cfg.DB.Name,
	})
	credProvider := credentials.NewCachedProvider(staticProvider, appCache, cfg.Credentials.CacheTTL, logger)

	creds, err := credProvider.Resolve()
	if err != nil {
		logger.Fatalf("❌ Veritabanı kimlik bilgileri çözülemedi: %v", err)
	}

	// 4. MySQL bağlantı havuzu
	db, err := database.Connect(creds.DSN(), database.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("❌ Veritabanı bağlantısı kurulamadı: %v", err)
	}
	defer db.Close()

	// 5. Guard'lar
	jwtConfig := &auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.App.Name,
		ExpirationTime: cfg.JWT.Expiration,
	}
	jwtGuard := auth.NewJWTGuard(jwtConfig)

	apiKeys, apiScopes := cfg.ParseAPIClients()
	apiKeyGuard := auth.NewAPIKeyGuard(apiKeys, apiScopes)

	// 6. Event dispatcher
	//
	// Batch mutasyonları audit amaçlı domain event üretir. Şimdilik tek
	// listener batch özetini loglar; yeni listener'lar buraya eklenir.
	dispatcher := events.NewDispatcher(logger)
	dispatcher.Subscribe(
		[]string{events.EventBatchInserted, events.EventBatchUpdated, events.EventBatchDeleted},
		events.ListenerFunc(func(e events.Event) error {
			if change, ok := e.Payload().(events.CatalogChange); ok {
				logger.Printf("📢 %s: %d ürün, %d kategori", e.Name(), change.Products, change.Categories)
			}
			return nil
		}),
	)

	// 7. Repository -> Service -> Controller
	catalogRepo := repositories.NewCatalogRepository(db)
	catalogService := services.NewCatalogService(catalogRepo)
	catalogService.SetEventDispatcher(dispatcher)
	catalogController := controllers.NewCatalogController(catalogService)

	// 8. Router ve middleware'ler
	r := router.New()

	// Global middleware'ler (sıra önemli: önce recovery, sonra logging)
	r.Use(middleware.PanicRecovery(logger))
	r.Use(middleware.Logging)
	r.Use(middleware.CORSMiddleware(cfg.App.URL))

	// API routes
	catalogGroup := r.Group("/api/catalog")
	catalogGroup.Use(middleware.Auth(jwtGuard, apiKeyGuard))

	if cfg.RateLimit.Enabled {
		catalogGroup.Use(middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds))
	}

	catalogGroup.GET("/products", catalogController.List).
		Middleware(middleware.RequireScope(auth.ScopeCatalogRead))
	catalogGroup.POST("/products", catalogController.Insert).
		Middleware(middleware.RequireScope(auth.ScopeCatalogWrite))
	catalogGroup.PUT("/products", catalogController.Update).
		Middleware(middleware.RequireScope(auth.ScopeCatalogWrite))
	catalogGroup.DELETE("/products", catalogController.Delete).
		Middleware(middleware.RequireScope(auth.ScopeCatalogWrite))

	// 9. HTTP server + graceful shutdown
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Server'ı ayrı goroutine'de başlat
	go func() {
		logger.Printf("🚀 Server başlatılıyor: http://localhost:%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("❌ Server hatası: %v", err)
		}
	}()

	// Shutdown sinyalini bekle (SIGINT / SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("⚠️  Shutdown sinyali alındı, server kapatılıyor...")

	// Aktif istekler için 10 saniye süre tanı
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("❌ Graceful shutdown hatası: %v", err)
	}

	// Bekleyen async event'lerin tamamlanmasını bekle
	if err := dispatcher.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Printf("⚠️  Event dispatcher kapatılırken timeout: %v", err)
	}

	// Rate limiter cleanup goroutine'lerini durdur
	middleware.StopAllLimiters()

	logger.Println("✅ Server kapatıldı")
}

// buildCache, config'e göre cache driver'ı oluşturur.
//
// Redis driver seçilmişse bağlantı da kurulur; bağlantı kurulamazsa uygulama
// başlatılmaz (fail-fast). Memory driver için ikinci dönüş değeri nil'dir.
func buildCache(cfg *config.Config, logger *log.Logger) (cache.Cache, *database.RedisClient) {
	if cfg.Cache.Driver == "redis" {
		redisConfig := database.DefaultRedisConfig()
		redisConfig.Host = cfg.Redis.Host
		redisConfig.Port = cfg.Redis.Port
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB

		redisClient, err := database.NewRedisClient(redisConfig, logger)
		if err != nil {
			logger.Fatalf("❌ Redis bağlantısı kurulamadı: %v", err)
		}

		return cache.NewRedisCache(redisClient.Client(), logger, cfg.Cache.Prefix), redisClient
	}

	return cache.NewMemoryCache(logger), nil
}
