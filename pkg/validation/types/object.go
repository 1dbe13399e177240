package types

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/validation"
)

// ObjectType, iç içe nesne alanlarının doğrulamasını yönetir. Her alt alan
// için ayrı bir Type tanımlanır; alt alan hataları "üst.alt" yolu ile
// raporlanır.
type ObjectType struct {
	BaseType
	shape map[string]validation.Type
}

// --- Akıcı (Fluent) Metotlar ---

// Required, alanı zorunlu olarak işaretler.
func (o *ObjectType) Required() *ObjectType {
	o.SetRequired()
	return o
}

// Label, alan için insan okunabilir bir isim atar.
func (o *ObjectType) Label(label string) *ObjectType {
	o.SetLabel(label)
	return o
}

// Shape, iç nesnenin alan adı -> Type eşlemesini belirler.
func (o *ObjectType) Shape(shape map[string]validation.Type) *ObjectType {
	o.shape = shape
	return o
}

// --- Arayüz (Interface) Implementasyonu ---

// Transform, şemadaki her alt alanın dönüşümünü uygular. Şemada olmayan
// alanlar dokunulmadan korunur.
func (o *ObjectType) Transform(value any) (any, error) {
	value, err := o.BaseType.Transform(value)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("nesne (object) tipinde olmalıdır")
	}

	transformed := make(map[string]any)
	for field, typ := range o.shape {
		transformedValue, err := typ.Transform(data[field])
		if err != nil {
			return nil, fmt.Errorf("alan '%s': %w", field, err)
		}
		transformed[field] = transformedValue
	}

	for k, v := range data {
		if _, ok := transformed[k]; !ok {
			transformed[k] = v
		}
	}

	return transformed, nil
}

// Validate, iç nesnedeki her alt alanı kendi tipine göre doğrular.
func (o *ObjectType) Validate(field string, value any, result *validation.ValidationResult) {
	o.BaseType.Validate(field, value, result)
	if fieldFailed(field, result) {
		return
	}
	if value == nil {
		return
	}

	data, ok := value.(map[string]any)
	if !ok {
		result.AddError(field, fmt.Sprintf("%s alanı nesne (object) tipinde olmalıdır", o.displayName(field)))
		return
	}

	for subField, subType := range o.shape {
		subType.Validate(fmt.Sprintf("%s.%s", field, subField), data[subField], result)
	}
}
