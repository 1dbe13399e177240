package types

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// BooleanType, boolean alanların doğrulamasını yönetir.
type BooleanType struct {
	BaseType
}

// --- Akıcı (Fluent) Metotlar ---

// Required, alanı zorunlu olarak işaretler.
func (b *BooleanType) Required() *BooleanType {
	b.SetRequired()
	return b
}

// Label, alan için insan okunabilir bir isim atar.
func (b *BooleanType) Label(label string) *BooleanType {
	b.SetLabel(label)
	return b
}

// Default, alan için varsayılan boolean değer atar.
func (b *BooleanType) Default(value bool) *BooleanType {
	b.SetDefault(value)
	return b
}

// --- Arayüz (Interface) Implementasyonu ---

// Validate, değerin boolean tipinde olduğunu kontrol eder.
func (b *BooleanType) Validate(field string, value any, result *validation.ValidationResult) {
	b.BaseType.Validate(field, value, result)
	if fieldFailed(field, result) {
		return
	}
	if value == nil {
		return
	}

	if _, ok := value.(bool); !ok {
		result.AddError(field, fmt.Sprintf("%s alanı boolean tipinde olmalıdır", b.displayName(field)))
	}
}
