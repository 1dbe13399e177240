// -----------------------------------------------------------------------------
// CORS Middleware
// -----------------------------------------------------------------------------
// Katalog API'sine tarayıcı üzerinden erişen istemciler için CORS başlıklarını
// yönetir. İzin verilen origin config'den gelir; preflight (OPTIONS) istekleri
// handler'lara ulaşmadan burada yanıtlanır.
// -----------------------------------------------------------------------------

package middleware

import (
	"net/http"
)

// CORSMiddleware, tek bir origin'e izin veren CORS middleware'i üretir.
// İzin verilen method'lar API yüzeyiyle sınırlıdır; Authorization (Bearer JWT)
// ve X-API-Key başlıkları kimlik doğrulama için açılır.
func CORSMiddleware(allowedOrigin string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)

			// Preflight: izin verilen method ve header'ları bildir, 204 dön.
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
