// -----------------------------------------------------------------------------
// Middleware Package
// -----------------------------------------------------------------------------
// Bu dosya, uygulamanın HTTP istek yaşam döngüsüne müdahale eden ve hem
// güvenlik hem de gözlemlenebilirlik açısından kritik rol oynayan middleware
// yapısını içerir. Laravel veya Symfony gibi framework'lerde yer alan
// “HTTP Kernel” mantığının Go'ya uyarlanmış, sade fakat güçlü bir modelidir.
//
// Middleware yapısı, bir http.Handler'ı alıp yeni bir http.Handler üreten
// fonksiyonlardan oluşur. Böylece istek işlenmeden önce veya sonra ek işlemler
// gerçekleştirmek mümkündür. Logging, Authentication, Rate Limiting gibi birçok
// özellik bu yapının üzerine kolayca inşa edilir.
// -----------------------------------------------------------------------------

package middleware

import (
	"log"
	"net/http"
	"time"
)

// Middleware, bir sonraki http.Handler'ı alıp onu yeni bir handler olarak
// saran fonksiyon tipidir. Bu, Go'nun net/http mimarisinde cross-cutting
// concerns oluşturmanın standart yoludur. Örneğin: logging, authentication,
// panic recovery gibi işlemler bu yapı sayesinde route'lardan bağımsız çalışır.
type Middleware func(next http.Handler) http.Handler

// statusRecorder, yanıtın statü kodunu loglamak için ResponseWriter'ı sarar.
// WriteHeader hiç çağrılmazsa net/http 200 varsayar, aynı varsayılan burada da
// geçerlidir.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// Logging, gelen her HTTP isteğini kaydeden basit ama etkili bir middleware'dir.
// İstek işlenmeden önce method ve path loglanır, işlem tamamlandıktan sonra ise
// statü kodu, istemci kimliği ve geçen süre ile birlikte tekrar log yazılır.
//
// Bu sayede hangi istemcinin hangi isteği ne kadar sürede işlettiği gerçek
// zamanlı olarak takip edilebilir.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now() // İşlem başlangıç zamanı

		log.Printf("-> %s %s", r.Method, r.URL.Path) // İstek girişi logu

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r) // Bir sonraki handler'ı çalıştır

		clientID := GetClientID(r.Context())
		if clientID == "" {
			clientID = "-"
		}

		// İşlem bitiş logu, statü ve toplam süre ile birlikte
		log.Printf("<- %s %s %d client=%s (%s)", r.Method, r.URL.Path, recorder.status, clientID, time.Since(start))
	})
}
