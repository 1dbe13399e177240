package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/biyonik/product-catalog-api/internal/apperr"
	"github.com/biyonik/product-catalog-api/internal/http/response"
)

// PanicRecovery, bir handler'da panic oluştuğunda sunucunun çökmesini engeller
// ve istemciye standart bir JSON 500 hatası döndürür. Panic detayı sadece
// loglanır, istemciye jenerik Internal mesajı gider.
func PanicRecovery(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {

					logger.Printf("PANIC: %v\n%s", err, debug.Stack())

					internal := apperr.Internal(nil)
					response.Error(w, internal.Status(), internal.Message)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
