// -----------------------------------------------------------------------------
// Auth Guard System
// -----------------------------------------------------------------------------
// Bu dosya, farklı authentication stratejilerini (JWT, API Key) yönetmek için
// Guard pattern'ini implement eder.
//
// Laravel'deki auth()->guard('web') ve auth()->guard('api') konseptine benzer.
//
// Guard nedir?
// Guard, authentication mekanizmasını soyutlar. Böylece aynı uygulamada
// birden fazla auth stratejisi kullanabilirsiniz:
// - Servisler arası çağrılar için JWT-based auth
// - Batch işler ve webhook'lar için API key auth
//
// Kullanım Örneği:
//   jwtGuard := auth.NewJWTGuard(config)
//   client, err := jwtGuard.Authenticate(token)
// -----------------------------------------------------------------------------

package auth

import (
	"errors"
)

// Client, authentication'dan dönen servis istemcisi bilgilerini temsil eder.
// Bu interface, farklı credential modellerinin auth sistemi ile çalışmasını
// sağlar.
type Client interface {
	GetClientID() string
	HasScope(scope string) bool
}

// Guard, authentication işlemlerini tanımlayan arayüzdür.
// Her guard (JWT, API Key) bu interface'i implement eder.
type Guard interface {
	// Authenticate, verilen credential ile istemciyi doğrular
	Authenticate(credential string) (Client, error)
}

// JWTGuard, JWT token-based authentication implementasyonudur.
type JWTGuard struct {
	config *JWTConfig
}

// NewJWTGuard, yeni bir JWTGuard instance'ı oluşturur.
func NewJWTGuard(config *JWTConfig) *JWTGuard {
	if config == nil {
		config = DefaultJWTConfig()
	}
	return &JWTGuard{
		config: config,
	}
}

// Authenticate, JWT token'ı doğrular ve istemci bilgilerini döndürür.
func (g *JWTGuard) Authenticate(tokenString string) (Client, error) {
	// Token'ı parse et
	claims, err := ParseToken(tokenString, g.config)
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}

	return &AuthenticatedClient{
		ClientID: claims.ClientID,
		Scopes:   claims.Scopes,
	}, nil
}

// AuthenticatedClient, guard'dan dönen basit istemci implementasyonudur.
type AuthenticatedClient struct {
	ClientID string
	Scopes   string
}

func (c *AuthenticatedClient) GetClientID() string {
	return c.ClientID
}

func (c *AuthenticatedClient) HasScope(scope string) bool {
	claims := &ServiceClaims{Scopes: c.Scopes}
	return claims.HasScope(scope)
}

// APIKeyGuard, önceden hash'lenmiş API anahtarlarıyla authentication yapar.
// Anahtar hash'leri konfigürasyondan gelir; düz metin anahtar hiçbir yerde
// saklanmaz.
type APIKeyGuard struct {
	// clientID -> bcrypt hash
	keys map[string]string
	// clientID -> boşlukla ayrılmış scope listesi
	scopes map[string]string
}

// NewAPIKeyGuard, yeni bir APIKeyGuard instance'ı oluşturur.
//
// Parametreler:
//   - keys: clientID -> bcrypt hash eşlemesi
//   - scopes: clientID -> scope listesi eşlemesi
func NewAPIKeyGuard(keys, scopes map[string]string) *APIKeyGuard {
	return &APIKeyGuard{
		keys:   keys,
		scopes: scopes,
	}
}

// Authenticate, "clientID:apiKey" biçimindeki credential'ı doğrular.
//
// bcrypt karşılaştırması anahtar başına yavaştır; istemci sayısı az olduğu
// için credential'dan önce clientID ayrıştırılır ve tek hash kontrol edilir.
func (g *APIKeyGuard) Authenticate(credential string) (Client, error) {
	clientID, apiKey := splitCredential(credential)
	if clientID == "" || apiKey == "" {
		return nil, errors.New("malformed api key credential")
	}

	hash, ok := g.keys[clientID]
	if !ok {
		return nil, errors.New("unknown client")
	}

	if !Check(apiKey, hash) {
		return nil, errors.New("invalid api key")
	}

	return &AuthenticatedClient{
		ClientID: clientID,
		Scopes:   g.scopes[clientID],
	}, nil
}

// splitCredential, "clientID:apiKey" çiftini ayrıştırır. Anahtarın kendisi
// ':' içerebilir, bu yüzden sadece ilk ayraç kullanılır.
func splitCredential(credential string) (string, string) {
	for i := 0; i < len(credential); i++ {
		if credential[i] == ':' {
			return credential[:i], credential[i+1:]
		}
	}
	return "", ""
}
