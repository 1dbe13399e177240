// -----------------------------------------------------------------------------
// Credentials Package
// -----------------------------------------------------------------------------
// Veritabanı kimlik bilgisi çözümleme katmanı.
//
// Uygulama, veritabanı bağlantı bilgilerini doğrudan config'den okumak yerine
// bir Provider üzerinden çözer. Bu sayede kimlik bilgisi kaynağı (environment,
// secret manager vb.) bağlantı kurulumundan ayrıştırılmış olur ve cache'lenerek
// tekrarlanan çözümlemelerin maliyeti düşürülür.
//
// Katmanlar:
//   - StaticProvider: Config'den gelen sabit bilgileri döndürür
//   - CachedProvider: Herhangi bir Provider'ı TTL'li cache ile sarar
// -----------------------------------------------------------------------------

package credentials

import (
	"fmt"
)

// Credentials, bir MySQL bağlantısı kurmak için gereken bilgileri taşır.
type Credentials struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// DSN, go-sql-driver/mysql için Data Source Name üretir.
//
// parseTime=true ile DATETIME kolonları time.Time olarak scan edilir.
//
// Örnek çıktı:
//
//	"root:secret@tcp(127.0.0.1:3306)/product_catalog?parseTime=true&charset=utf8mb4"
func (c Credentials) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Provider, veritabanı kimlik bilgilerini çözen kaynakların interface'i.
//
// Örnek kullanım:
//
//	var provider Provider = NewStaticProvider(creds)
//	creds, err := provider.Resolve()
//	db, err := database.Connect(creds.DSN(), opts)
type Provider interface {
	Resolve() (Credentials, error)
}

// StaticProvider, sabit (config'den gelen) kimlik bilgilerini döndürür.
type StaticProvider struct {
	creds Credentials
}

// NewStaticProvider, verilen kimlik bilgileriyle bir StaticProvider oluşturur.
func NewStaticProvider(creds Credentials) *StaticProvider {
	return &StaticProvider{creds: creds}
}

// Resolve, sabit kimlik bilgilerini döndürür.
//
// Zorunlu alanlar eksikse hata döner; bağlantı denemeden önce yakalamak
// debug süresini kısaltır.
func (p *StaticProvider) Resolve() (Credentials, error) {
	if p.creds.Host == "" {
		return Credentials{}, fmt.Errorf("credentials: host boş olamaz")
	}
	if p.creds.Username == "" {
		return Credentials{}, fmt.Errorf("credentials: username boş olamaz")
	}
	if p.creds.Database == "" {
		return Credentials{}, fmt.Errorf("credentials: database boş olamaz")
	}
	if p.creds.Port <= 0 {
		return Credentials{}, fmt.Errorf("credentials: geçersiz port: %d", p.creds.Port)
	}

	return p.creds, nil
}
