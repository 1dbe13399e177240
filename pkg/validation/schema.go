// -----------------------------------------------------------------------------
// Validation Schema
// -----------------------------------------------------------------------------
// ValidationSchema, Schema arayüzünün varsayılan implementasyonudur. Doğrulama
// beş aşamada ilerler: transform, tip bazlı doğrulama, koşullu (When)
// kurallar, çapraz alan kuralları ve sonuç. Katalog servisindeki ürün ve
// kategori şemaları bu yapı üzerinden tanımlanır.
// -----------------------------------------------------------------------------

package validation

import (
	"fmt"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// conditionalRule, tek bir When kuralını saklar: alan beklenen değere eşitse
// callback'ten dönen alt şema da doğrulamaya katılır.
type conditionalRule struct {
	field         string
	expectedValue any
	callback      func() Schema
}

// ValidationSchema, alan tiplerini, çapraz doğrulayıcıları ve koşullu
// kuralları bir arada tutar.
type ValidationSchema struct {
	shape            map[string]Type
	crossValidators  []func(data map[string]any) error
	conditionalRules []conditionalRule
}

// Make, boş bir ValidationSchema oluşturur.
//
// Kullanım:
//
//	schema := validation.Make().Shape(map[string]validation.Type{
//	    "name":  types.String().Required().Max(255),
//	    "price": types.Number().Required().Min(0),
//	})
func Make() *ValidationSchema {
	return &ValidationSchema{
		shape:            make(map[string]Type),
		conditionalRules: make([]conditionalRule, 0),
	}
}

// --- Interface Implementasyonları ---

// Shape, alan adı -> Type eşlemesini tanımlar ve şemayı döndürür.
func (vs *ValidationSchema) Shape(shape map[string]Type) Schema {
	vs.shape = shape
	return vs
}

// CrossValidate, alanlar arası bir kural ekler. Kurallar yalnızca tüm alan
// bazlı doğrulamalar hatasız geçtiyse çalışır.
func (vs *ValidationSchema) CrossValidate(fn func(data map[string]any) error) Schema {
	vs.crossValidators = append(vs.crossValidators, fn)
	return vs
}

// When, koşullu bir alt şema kaydeder. Koşul alanının dönüşmüş değeri
// expectedValue'ya eşitse alt şema aynı veri üzerinde çalıştırılır.
func (vs *ValidationSchema) When(field string, expectedValue any, callback func() Schema) Schema {
	vs.conditionalRules = append(vs.conditionalRules, conditionalRule{
		field:         field,
		expectedValue: expectedValue,
		callback:      callback,
	})
	return vs
}

// Validate, doğrulama sürecinin tamamını yürütür:
//  1. Transform: her alanın dönüşümleri uygulanır (trim, varsayılan değer).
//  2. Validate: dönüşmüş değerler tip kurallarına göre doğrulanır.
//  3. When: koşulu sağlanan alt şemalar aynı veri üzerinde çalıştırılır.
//  4. Cross-Validate: hiç hata yoksa alanlar arası kurallar uygulanır.
//  5. Sonuç: hiç hata yoksa temiz veri result'a yazılır.
func (vs *ValidationSchema) Validate(data map[string]any) *ValidationResult {
	result := NewResult()
	transformedData := make(map[string]any)

	// 1. Transform. Dönüşüm hatası alan bazlı kaydedilir; kalan alanların
	// doğrulanabilmesi için süreç kesilmez.
	for field, typ := range vs.shape {
		value := data[field]

		transformedValue, err := typ.Transform(value)
		if err != nil {
			result.AddError(field, fmt.Sprintf("Dönüşüm hatası: %s", err.Error()))
			continue
		}
		transformedData[field] = transformedValue
	}

	// 2. Tip bazlı doğrulama.
	for field, typ := range vs.shape {
		typ.Validate(field, transformedData[field], result)
	}

	// 3. Koşullu doğrulama (When). Alt şema yalnızca kendi shape'indeki
	// alanları kontrol eder; hataları ana sonuca taşınır.
	for _, rule := range vs.conditionalRules {
		value, exists := transformedData[rule.field]
		if !exists || value != rule.expectedValue {
			continue
		}

		subResult := rule.callback().Validate(transformedData)
		for field, messages := range subResult.Errors() {
			for _, msg := range messages {
				result.AddError(field, msg)
			}
		}
	}

	// 4. Çapraz alan doğrulama. Alan bazlı hata varken çalıştırmak yanıltıcı
	// ikincil hatalar üretir, o yüzden sadece temiz veride koşar.
	if !result.HasErrors() {
		for _, fn := range vs.crossValidators {
			if err := fn(transformedData); err != nil {
				result.AddError("_cross_validation", err.Error())
			}
		}
	}

	// 5. Sonuç.
	if !result.HasErrors() {
		result.SetValidData(transformedData)
	}

	return result
}
