// -----------------------------------------------------------------------------
// Migration CLI
// -----------------------------------------------------------------------------
// Katalog şemasını kurar veya geri alır.
//
// Kullanım:
//
//	migrate up        # bekleyen migration'ları çalıştır
//	migrate rollback  # son batch'i geri al
// -----------------------------------------------------------------------------

package main

import (
	"log"
	"os"

	"github.com/biyonik/product-catalog-api/internal/config"
	"github.com/biyonik/product-catalog-api/internal/migrations"
	"github.com/biyonik/product-catalog-api/pkg/credentials"
	"github.com/biyonik/product-catalog-api/pkg/database"
	"github.com/biyonik/product-catalog-api/pkg/database/migration"
)

func main() {
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg := config.Load()

	// CLI kısa ömürlü olduğu için credential cache'e gerek yok
	provider := credentials.NewStaticProvider(credentials.Credentials{
		Host:     cfg.Credentials.Host,
		Port:     cfg.Credentials.Port,
		Username: cfg.Credentials.Username,
		Password: cfg.Credentials.Password,
		Database: cfg.DB.Name,
	})

	creds, err := provider.Resolve()
	if err != nil {
		logger.Fatalf("❌ Veritabanı kimlik bilgileri çözülemedi: %v", err)
	}

	db, err := database.Connect(creds.DSN(), database.PoolOptions{
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	if err != nil {
		logger.Fatalf("❌ Veritabanı bağlantısı kurulamadı: %v", err)
	}
	defer db.Close()

	migrator := migration.NewMigrator(db, migration.NewMySQLGrammar(), logger)

	switch command {
	case "up":
		err = migrator.Run(migrations.All())
	case "rollback":
		err = migrator.Rollback(migrations.All())
	default:
		logger.Fatalf("❌ Bilinmeyen komut: %s (up | rollback)", command)
	}

	if err != nil {
		logger.Fatalf("❌ Migration hatası: %v", err)
	}
}
