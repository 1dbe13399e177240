package types

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// ArrayType, dizi alanların doğrulamasını yönetir. Eleman sayısı sınırları ve
// her eleman için ortak bir şema (Elements) tanımlanabilir; batch
// gövdelerindeki ürün/kategori listeleri bu tiple ifade edilebilir.
type ArrayType struct {
	BaseType
	minLength     *int
	maxLength     *int
	elementSchema validation.Type
}

// --- Akıcı (Fluent) Metotlar ---

// Required, alanı zorunlu olarak işaretler.
func (a *ArrayType) Required() *ArrayType {
	a.SetRequired()
	return a
}

// Label, alan için insan okunabilir bir isim atar.
func (a *ArrayType) Label(label string) *ArrayType {
	a.SetLabel(label)
	return a
}

// Min, dizinin minimum eleman sayısını ayarlar.
func (a *ArrayType) Min(length int) *ArrayType {
	a.minLength = &length
	return a
}

// Max, dizinin maksimum eleman sayısını ayarlar.
func (a *ArrayType) Max(length int) *ArrayType {
	a.maxLength = &length
	return a
}

// Elements, dizideki her elemanın uyması gereken şemayı belirler.
func (a *ArrayType) Elements(schema validation.Type) *ArrayType {
	a.elementSchema = schema
	return a
}

// --- Arayüz (Interface) Implementasyonu ---

// Transform, önce ortak dönüşümleri, sonra (tanımlıysa) eleman şemasının
// dönüşümünü her elemana uygular.
func (a *ArrayType) Transform(value any) (any, error) {
	value, err := a.BaseType.Transform(value)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	slice, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("dizi (array) tipinde olmalıdır")
	}

	if a.elementSchema == nil {
		return slice, nil
	}

	transformed := make([]any, len(slice))
	for i, item := range slice {
		transformedItem, err := a.elementSchema.Transform(item)
		if err != nil {
			return nil, fmt.Errorf("dizi index %d: %w", i, err)
		}
		transformed[i] = transformedItem
	}
	return transformed, nil
}

// Validate, dizinin eleman sayısı sınırlarını ve (tanımlıysa) her elemanın
// şemaya uygunluğunu kontrol eder. Eleman hataları "alan[i]" yolu ile
// raporlanır.
func (a *ArrayType) Validate(field string, value any, result *validation.ValidationResult) {
	a.BaseType.Validate(field, value, result)
	if fieldFailed(field, result) {
		return
	}
	if value == nil {
		return
	}

	fieldName := a.displayName(field)

	slice, ok := value.([]any)
	if !ok {
		result.AddError(field, fmt.Sprintf("%s alanı dizi (array) tipinde olmalıdır", fieldName))
		return
	}

	if a.minLength != nil && len(slice) < *a.minLength {
		result.AddError(field, fmt.Sprintf("%s alanında en az %d eleman olmalıdır", fieldName, *a.minLength))
	}
	if a.maxLength != nil && len(slice) > *a.maxLength {
		result.AddError(field, fmt.Sprintf("%s alanında en fazla %d eleman olmalıdır", fieldName, *a.maxLength))
	}

	if a.elementSchema != nil {
		for i, item := range slice {
			a.elementSchema.Validate(fmt.Sprintf("%s[%d]", field, i), item, result)
		}
	}
}
