package types

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// NumberType, sayısal alanların doğrulamasını yönetir. Katalogda id,
// category_id ve price alanları bu tiple doğrulanır; JSON decode float64
// ürettiği için int, float32 ve float64 değerlerin üçü de kabul edilir.
type NumberType struct {
	BaseType
	min       *float64
	max       *float64
	isInteger bool
}

// --- Akıcı (Fluent) Metotlar ---

// Required, alanı zorunlu olarak işaretler.
func (n *NumberType) Required() *NumberType {
	n.SetRequired()
	return n
}

// Label, alan için insan okunabilir bir isim atar.
func (n *NumberType) Label(label string) *NumberType {
	n.SetLabel(label)
	return n
}

// Default, sayısal varsayılan değer atar. Değer karşılaştırmalarının tutarlı
// olması için tamsayılar float64'e normalize edilir.
func (n *NumberType) Default(value any) *NumberType {
	switch v := value.(type) {
	case int:
		n.SetDefault(float64(v))
	case float32:
		n.SetDefault(float64(v))
	default:
		n.SetDefault(value)
	}
	return n
}

// Min, alanın alabileceği en küçük değeri belirler.
func (n *NumberType) Min(val float64) *NumberType {
	n.min = &val
	return n
}

// Max, alanın alabileceği en büyük değeri belirler.
func (n *NumberType) Max(val float64) *NumberType {
	n.max = &val
	return n
}

// Integer, değerin tamsayı olmasını zorunlu kılar (id alanları için).
func (n *NumberType) Integer() *NumberType {
	n.isInteger = true
	return n
}

// --- Arayüz (Interface) Implementasyonu ---

// Validate, sayısal alanın kurallarını çalıştırır: tip, tamsayılık ve aralık.
func (n *NumberType) Validate(field string, value any, result *validation.ValidationResult) {
	n.BaseType.Validate(field, value, result)
	if fieldFailed(field, result) {
		return
	}
	if value == nil {
		return
	}

	fieldName := n.displayName(field)

	var num float64
	switch v := value.(type) {
	case int:
		num = float64(v)
	case float64:
		num = v
	case float32:
		num = float64(v)
	default:
		result.AddError(field, fmt.Sprintf("%s alanı sayısal bir değer olmalıdır", fieldName))
		return
	}

	if n.isInteger && num != float64(int64(num)) {
		result.AddError(field, fmt.Sprintf("%s alanı tamsayı olmalıdır", fieldName))
	}
	if n.min != nil && num < *n.min {
		result.AddError(field, fmt.Sprintf("%s alanı %v değerinden küçük olamaz", fieldName, *n.min))
	}
	if n.max != nil && num > *n.max {
		result.AddError(field, fmt.Sprintf("%s alanı %v değerinden büyük olamaz", fieldName, *n.max))
	}
}
