// Package validation, gelen API payload'larının şema bazlı doğrulanmasını
// sağlar. Katalog servisindeki batch gövdeleri (ürün/kategori kayıtları) gibi
// map[string]any biçimindeki veriler, alan tiplerinden oluşan bir Shape ile
// doğrulanır; hatalar alan bazında toplanır, temiz veri tek noktadan okunur.
//
// Paket iki seviyede çalışır: Type arayüzü tek bir alanın dönüşüm ve
// doğrulamasını, Schema arayüzü tüm veri setinin (koşullu ve çapraz kurallar
// dahil) doğrulamasını tanımlar.
package validation

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// ValidationResult, bir doğrulama çalışmasının çıktısıdır: alan bazlı hata
// mesajları ve (hata yoksa) dönüşümden geçmiş temiz veri.
type ValidationResult struct {
	errors    map[string][]string
	validData map[string]any
}

// NewResult, boş bir ValidationResult oluşturur. Type implementasyonları
// hatalarını bu nesneye ekler.
func NewResult() *ValidationResult {
	return &ValidationResult{
		errors:    make(map[string][]string),
		validData: make(map[string]any),
	}
}

// AddError, alana bir doğrulama hatası ekler. Aynı alana birden fazla hata
// eklenebilir; mesajlar ekleme sırasını korur.
func (r *ValidationResult) AddError(field, message string) {
	r.errors[field] = append(r.errors[field], message)
}

// HasErrors, en az bir hata kaydedilip kaydedilmediğini döndürür.
func (r *ValidationResult) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors, alan bazlı hata haritasını döndürür. Okunabilir tek mesaj için
// FlattenErrors kullanılır.
func (r *ValidationResult) Errors() map[string][]string {
	return r.errors
}

// ValidData, doğrulamayı hatasız geçen, dönüşümleri uygulanmış veriyi
// döndürür. Hata varsa harita boştur.
func (r *ValidationResult) ValidData() map[string]any {
	return r.validData
}

// SetValidData, temiz veri haritasını ayarlar. Schema.Validate tarafından,
// yalnızca hiç hata yoksa çağrılır.
func (r *ValidationResult) SetValidData(data map[string]any) {
	r.validData = data
}

// --- ARAYÜZLER (INTERFACES / CONTRACTS) ---

// Type, tek bir alanın doğrulama sözleşmesidir. StringType, NumberType gibi
// tipler bu arayüzü uygular.
type Type interface {
	// Validate, alanın kurallarını çalıştırır; ihlaller result'a eklenir.
	//   - field: doğrulanan alanın adı
	//   - value: dönüşümden geçmiş değer
	Validate(field string, value any, result *ValidationResult)

	// Transform, doğrulama öncesi değeri temizler ve dönüştürür
	// (örn: trim, varsayılan değer uygulama).
	Transform(value any) (any, error)
}

// Schema, bir veri setinin bütünsel doğrulama sözleşmesidir.
type Schema interface {
	// Validate, veri haritasını şemaya göre doğrular ve sonucu döndürür.
	Validate(data map[string]any) *ValidationResult

	// Shape, alan adı -> Type eşlemesini tanımlar (method chaining).
	Shape(shape map[string]Type) Schema

	// CrossValidate, alanlar arası kural ekler; kural ihlalinde error
	// döndüren bir fonksiyon alır (örn: min_price <= max_price).
	CrossValidate(fn func(data map[string]any) error) Schema

	// When, bir alanın değeri beklenen değere eşitse callback'ten dönen
	// alt şemayı da doğrulamaya dahil eder.
	When(field string, expectedValue any, callback func() Schema) Schema
}
