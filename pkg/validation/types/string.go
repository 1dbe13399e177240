// Package types, tip bazlı doğrulama nesnelerini ve kurallarını yönetir.
// Bu paket, String, Number, Object, Array gibi tiplerin doğrulama ve
// dönüşüm (transform) işlemlerini kolaylaştırmak için geliştirilmiştir.
package types

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// StringType, metin değerlerinin doğrulamasını ve dönüşümünü yönetir.
// BaseType'ı gömerek ortak doğrulama ve transform fonksiyonlarını kullanır.
type StringType struct {
	BaseType           // Ortak doğrulama ve transform fonksiyonları
	minLength     *int // Minimum uzunluk kısıtı
	maxLength     *int // Maksimum uzunluk kısıtı
	emailRegex    *regexp.Regexp
	urlRegex      *regexp.Regexp
	allowedValues []string
}

// --- Akıcı (Fluent) Metotlar ---
// Bu metotlar zincirleme kullanım için tasarlanmıştır.

// Required, alanın zorunlu olduğunu belirtir.
func (s *StringType) Required() *StringType {
	s.SetRequired()
	return s
}

// Label, alan için insan okunabilir bir isim atar.
func (s *StringType) Label(label string) *StringType {
	s.SetLabel(label)
	return s
}

// Default, alan için varsayılan değer atar.
func (s *StringType) Default(value string) *StringType {
	s.SetDefault(value)
	return s
}

// Min, metin alanının minimum uzunluğunu ayarlar.
func (s *StringType) Min(length int) *StringType {
	s.minLength = &length
	return s
}

// Max, metin alanının maksimum uzunluğunu ayarlar.
func (s *StringType) Max(length int) *StringType {
	s.maxLength = &length
	return s
}

// Email, alanın e-posta formatında olmasını zorunlu kılar.
func (s *StringType) Email() *StringType {
	s.emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return s
}

// URL, alanın URL formatında olmasını zorunlu kılar.
func (s *StringType) URL() *StringType {
	s.urlRegex = regexp.MustCompile(`^(https?:\/\/)?([\da-z\.-]+)\.([a-z\.]{2,6})([\/\w \.-]*)*\/?$`)
	return s
}

// OneOf, alanın belirli değerlerden biri olmasını sağlar.
func (s *StringType) OneOf(values []string) *StringType {
	s.allowedValues = values
	return s
}

// Trim, alanın başındaki ve sonundaki boşlukları temizler.
func (s *StringType) Trim() *StringType {
	s.AddTransform(func(value any) (any, error) {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("Trim sadece string değerler için uygulanabilir")
		}
		return strings.TrimSpace(str), nil
	})
	return s
}

// --- Interface Implementasyonu ---

// Validate, verilen değeri StringType kurallarına göre doğrular.
//
// Parametreler:
//   - field: Alan adı
//   - value: Doğrulanacak değer
//   - result: ValidationResult nesnesi, hatalar buraya eklenir
func (s *StringType) Validate(field string, value any, result *validation.ValidationResult) {
	// Temel doğrulama
	s.BaseType.Validate(field, value, result)
	if fieldFailed(field, result) {
		return
	}

	if value == nil {
		return
	}

	fieldName := s.displayName(field)

	str, ok := value.(string)
	if !ok {
		result.AddError(field, fmt.Sprintf("%s alanı metin tipinde olmalıdır", fieldName))
		return
	}

	// Minimum ve maksimum uzunluk
	if s.minLength != nil && len(str) < *s.minLength {
		result.AddError(field, fmt.Sprintf("%s alanı en az %d karakter olmalıdır", fieldName, *s.minLength))
	}
	if s.maxLength != nil && len(str) > *s.maxLength {
		result.AddError(field, fmt.Sprintf("%s alanı en fazla %d karakter olmalıdır", fieldName, *s.maxLength))
	}

	// E-posta kontrolü
	if s.emailRegex != nil && !s.emailRegex.MatchString(str) {
		result.AddError(field, fmt.Sprintf("%s alanı geçerli bir e-posta formatında değil", fieldName))
	}

	// URL kontrolü
	if s.urlRegex != nil && !s.urlRegex.MatchString(str) {
		result.AddError(field, fmt.Sprintf("%s alanı geçerli bir URL formatında değil", fieldName))
	}

	// İzin verilen değerler
	if len(s.allowedValues) > 0 {
		allowed := false
		for _, v := range s.allowedValues {
			if str == v {
				allowed = true
				break
			}
		}
		if !allowed {
			result.AddError(field, fmt.Sprintf("%s alanı şu değerlerden biri olmalıdır: %s", fieldName, strings.Join(s.allowedValues, ", ")))
		}
	}
}
