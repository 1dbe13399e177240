// -----------------------------------------------------------------------------
// Validation Errors
// -----------------------------------------------------------------------------
// Cross-validate fonksiyonlarının belirli bir alana hata bağlayabilmesi için
// FieldError tipi ve yardımcı constructor'ı.
// -----------------------------------------------------------------------------

package validation

import "fmt"

// FieldError, belirli bir alana ait doğrulama hatasını taşır.
type FieldError struct {
	Field   string
	Message string
}

// Error, error interface implementasyonu.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError, alan bazlı bir doğrulama hatası oluşturur.
//
// Örnek:
//
//	return validation.NewFieldError("max_price", "max_price, min_price'tan küçük olamaz")
func NewFieldError(field, message string) error {
	return &FieldError{
		Field:   field,
		Message: message,
	}
}
