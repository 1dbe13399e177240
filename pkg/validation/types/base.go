// Package types, tip bazlı doğrulama nesnelerini ve kurallarını yönetir.
// Bu paket, String, Number, Object, Array gibi tiplerin doğrulama ve
// dönüşüm (transform) işlemlerini kolaylaştırmak için geliştirilmiştir.
package types

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// BaseType, tüm tiplerin gömdüğü ortak durum ve davranıştır: zorunluluk,
// etiket, varsayılan değer ve dönüşüm zinciri.
type BaseType struct {
	isRequired      bool
	label           string
	defaultValue    any
	transformations []func(any) (any, error)
}

// --- Akıcı (Fluent) Metotlar ---

// SetRequired, alanı zorunlu olarak işaretler. Zorunlu alanlarda nil veya
// boş string değer hata üretir.
func (b *BaseType) SetRequired() {
	b.isRequired = true
}

// SetLabel, hata mesajlarında kullanılacak insan okunabilir adı atar.
func (b *BaseType) SetLabel(label string) {
	b.label = label
}

// SetDefault, değer nil geldiğinde dönüşüm sırasında uygulanacak varsayılanı
// belirler.
func (b *BaseType) SetDefault(value any) {
	b.defaultValue = value
}

// AddTransform, dönüşüm zincirine bir fonksiyon ekler (örn: trim).
// Fonksiyonlar ekleme sırasıyla uygulanır.
func (b *BaseType) AddTransform(fn func(any) (any, error)) {
	b.transformations = append(b.transformations, fn)
}

// displayName, hata mesajlarında kullanılacak adı döndürür: etiket varsa
// etiket, yoksa alan adı.
func (b *BaseType) displayName(field string) string {
	if b.label != "" {
		return b.label
	}
	return field
}

// fieldFailed, bu alan için daha önce hata kaydedilip kaydedilmediğini
// döndürür. Tip implementasyonları, zorunluluk kontrolü hata ürettiyse kalan
// kuralları atlamak için bunu kullanır; result'ın tamamına bakmak başka
// alanların hatalarını da bu alanın doğrulamasını kesmek için kullanırdı.
func fieldFailed(field string, result *validation.ValidationResult) bool {
	return len(result.Errors()[field]) > 0
}

// --- Arayüz (Interface) Implementasyonu ---

// Transform, varsayılan değeri ve ardından dönüşüm zincirini uygular.
// Varsayılanı olmayan nil değer nil olarak kalır.
func (b *BaseType) Transform(value any) (any, error) {
	if value == nil && b.defaultValue != nil {
		value = b.defaultValue
	}
	if value == nil {
		return nil, nil
	}

	var err error
	for _, fn := range b.transformations {
		value, err = fn(value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Validate, zorunluluk kontrolünü uygular. Tip bazlı kurallar (uzunluk,
// aralık, format) gömen tipin kendi Validate metodunda yer alır.
func (b *BaseType) Validate(field string, value any, result *validation.ValidationResult) {
	if !b.isRequired {
		return
	}

	if value == nil {
		result.AddError(field, fmt.Sprintf("%s alanı zorunludur", b.displayName(field)))
		return
	}
	if str, ok := value.(string); ok && str == "" {
		result.AddError(field, fmt.Sprintf("%s alanı zorunludur", b.displayName(field)))
	}
}
