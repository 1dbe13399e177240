// -----------------------------------------------------------------------------
// Authentication Middleware
// -----------------------------------------------------------------------------
// Bu middleware, çağıran servis istemcisini doğrular. İki credential türü
// desteklenir:
//
//	Authorization: Bearer <jwt>     → JWTGuard
//	X-API-Key: <clientID:apiKey>    → APIKeyGuard
//
// Doğrulanan istemci context'e eklenir; yetkisiz istekler core katmanına hiç
// ulaşmadan 401/403 ile reddedilir.
// -----------------------------------------------------------------------------

package middleware

import (
	"context"
	"net/http"

	"github.com/biyonik/product-catalog-api/internal/http/response"
	"github.com/biyonik/product-catalog-api/pkg/auth"
)

// clientContextKey, doğrulanmış istemciyi context'te saklamak için kullanılan
// özel anahtar tipidir. String anahtar çakışmalarını önler.
type clientContextKey struct{}

// Auth, servis authentication middleware'ini döndürür.
//
// Sıra önemlidir: önce Bearer token denenir, yoksa X-API-Key header'ına
// bakılır. İkisi de yoksa istek 401 ile reddedilir.
//
// Kullanım:
//
//	catalogGroup := r.Group("/api/catalog")
//	catalogGroup.Use(middleware.Auth(jwtGuard, apiKeyGuard))
func Auth(jwtGuard auth.Guard, apiKeyGuard auth.Guard) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var client auth.Client
			var err error

			if token := auth.ExtractTokenFromHeader(r.Header.Get("Authorization")); token != "" {
				client, err = jwtGuard.Authenticate(token)
			} else if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
				client, err = apiKeyGuard.Authenticate(apiKey)
			} else {
				response.Unauthorized(w, "Authorization header veya X-API-Key gerekli")
				return
			}

			if err != nil {
				response.Unauthorized(w, "Geçersiz veya süresi dolmuş credential")
				return
			}

			ctx := context.WithValue(r.Context(), clientContextKey{}, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireScope, doğrulanmış istemcinin verilen scope'a sahip olmasını zorunlu
// kılar. Auth middleware'inden SONRA çalışmalıdır; istemci yoksa 401, scope
// eksikse 403 döner.
//
// Kullanım:
//
//	r.POST("/api/catalog/products", handler).
//	    Middleware(middleware.RequireScope(auth.ScopeCatalogWrite))
func RequireScope(scope string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := GetClient(r.Context())
			if client == nil {
				response.Unauthorized(w, "")
				return
			}

			if !client.HasScope(scope) {
				response.Forbidden(w, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClient, context'ten doğrulanmış istemciyi döndürür.
// Middleware içinde veya handler'larda kullanılabilir.
//
// Örnek:
//
//	client := middleware.GetClient(r.Context())
//	if client != nil {
//	    log.Printf("istek sahibi: %s", client.GetClientID())
//	}
func GetClient(ctx context.Context) auth.Client {
	value := ctx.Value(clientContextKey{})
	if value == nil {
		return nil
	}

	client, ok := value.(auth.Client)
	if !ok {
		return nil
	}

	return client
}

// GetClientID, context'ten istemci kimliğini döndürür. İstemci yoksa boş
// string döner; loglamada kullanışlıdır.
func GetClientID(ctx context.Context) string {
	client := GetClient(ctx)
	if client == nil {
		return ""
	}
	return client.GetClientID()
}
