// -----------------------------------------------------------------------------
// Database Package
// -----------------------------------------------------------------------------
// Bu dosya, uygulamanın MySQL veritabanına bağlanmasını sağlayan merkezi
// bağlantı fonksiyonunu içerir. Veritabanı bağlantısı yapılandırmasını
// merkezi bir noktadan yönetir.
//
// Connect fonksiyonu, DSN (Data Source Name) ve havuz parametrelerini alır,
// bağlantıyı başlatır ve bağlantı havuzlaması ile performans optimizasyonu
// sağlar. Bağlantı başarılı olduğunda db nesnesi geri döndürülür, hata
// durumunda uygun error handling yapılır.
// -----------------------------------------------------------------------------

package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// PoolOptions, database/sql bağlantı havuzunun ayarlarını taşır.
// Havuz değerleri config katmanından gelir; burada sadece uygulanır.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions, makul varsayılan havuz ayarlarını döndürür.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Connect, verilen DSN ile MySQL veritabanına bağlanır ve *sql.DB nesnesini döndürür.
// Bağlantı sırasında şu adımlar gerçekleştirilir:
//  1. sql.Open ile sürücü ve DSN kullanılarak bağlantı nesnesi oluşturulur.
//  2. Havuz için max open ve idle connection değerleri uygulanır.
//  3. Bağlantı ömrü (ConnMaxLifetime) ayarlanır.
//  4. db.Ping ile veritabanının ulaşılabilirliği kontrol edilir.
//  5. Başarılı olursa db nesnesi döndürülür, hata varsa connection kapatılır ve error döner.
func Connect(dsn string, opts PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err // Bağlantı açma hatası
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	log.Println("Veritabanına bağlanılıyor...")
	err = db.Ping() // Gerçek bağlantıyı test et
	if err != nil {
		db.Close() // Hata durumunda bağlantıyı kapat
		return nil, err
	}

	log.Println("✅ Veritabanı bağlantısı başarılı!")
	return db, nil
}
