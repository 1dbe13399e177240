// Package response, web uygulamalarında JSON tabanlı çıktı üretimini
// tek bir merkezden kontrollü şekilde yapmayı amaçlayan küçük ama
// oldukça önemli bir yardımcı pakettir. Bu paket, özellikle API
// geliştirme süreçlerinde sıkça ihtiyaç duyulan; başarılı veya hatalı
// yanıtların standart bir formda istemciye iletilmesini sağlar.
//
// Laravel ve Symfony gibi büyük frameworklerin "Response Factory"
// mantığını örnek alarak sadeleştirilmiş bir yapı sunar. Projenin
// herhangi bir yerinde, HTTP yanıtlarını tek satırlık fonksiyonlarla
// oluşturabilmek, hem kod tekrarını azaltır hem de geliştiricinin daha
// tutarlı bir API üretmesine yardım eder.
package response

import (
	"encoding/json"
	"net/http"
)

// JSONResponse, tüm API yanıtlarının ortak veri sözleşmesini (contract)
// temsil eden bir modeldir. Başarılı yanıtta Result asli içeriği, hatalı
// yanıtta hata mesajını taşır; IsSuccess hangisinin geçerli olduğunu söyler.
//
// Alanlar:
//   - Result: İşlem başarılıysa döndürülen içerik, başarısızsa hata mesajı.
//   - IsSuccess: İşlemin başarılı olup olmadığını belirtir. true/false.
type JSONResponse struct {
	Result    interface{} `json:"result"`
	IsSuccess bool        `json:"is_success"`
}

// Send, HTTP yanıtını istenen statü kodu ve JSONResponse yapısı ile
// birlikte istemciye gönderen temel fonksiyondur. Tüm diğer "Success" ve
// "Error" fonksiyonlarının arka planda çağırdığı ana merkez görevi görür.
//
// Fonksiyon Akışı:
//  1. Content-Type başlığı JSON olarak ayarlanır.
//  2. HTTP durum kodu yazılır.
//  3. Gönderilecek payload JSON'a çevrilerek çıktı akışına yazılır.
func Send(w http.ResponseWriter, status int, payload JSONResponse) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		return err
	}

	return nil
}

// Success, başarılı bir işlem sonucunda standart bir JSON çıktı
// oluşturmak için kullanılan kolaylaştırıcı (helper) fonksiyondur.
//
// Parametreler:
//   - w: Yanıt yazıcısı.
//   - status: HTTP durum kodu (genellikle 200, 201 vs.).
//   - result: Başarılı işlemin istemciye iletilmek istenen ana içeriği.
func Success(w http.ResponseWriter, status int, result interface{}) error {
	return Send(w, status, JSONResponse{
		Result:    result,
		IsSuccess: true,
	})
}

// Error, başarısız bir işlem sonucunda istemciye hata mesajı döndürmek
// için kullanılan yardımcı fonksiyondur. API genelinde standartlaşmış bir
// hata yapısı sağlar.
//
// Parametreler:
//   - w: Yanıt yazıcısı.
//   - status: HTTP durum kodu (400, 404, 403, 500 vs.).
//   - errData: string, error veya alan bazlı hata haritası olabilir.
func Error(w http.ResponseWriter, status int, errData any) error {
	payload := JSONResponse{
		IsSuccess: false,
	}

	// Gelen hatanın tipine göre JSONResponse'u doldur
	switch e := errData.(type) {
	case string:
		payload.Result = e
	case error:
		payload.Result = e.Error()
	case map[string][]string:
		payload.Result = e
	default:
		payload.Result = "Bilinmeyen bir sunucu hatası oluştu"
	}

	return Send(w, status, payload)
}
