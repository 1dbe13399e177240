// -----------------------------------------------------------------------------
// Validation Helper Functions
// -----------------------------------------------------------------------------
// Bu dosya, ValidationResult ile çalışırken tekrar eden kalıpları azaltan
// yardımcı fonksiyonlar içerir.
//
// Tipik kullanım:
//
//	result := schema.Validate(data)
//	if result.HasErrors() {
//	    return errors.New(validation.FlattenErrors("products[0]", result))
//	}
// -----------------------------------------------------------------------------

package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FlattenErrors, alan bazlı hata haritasını tek bir okunabilir mesaja çevirir.
//
// Alanlar alfabetik sıralanır; aynı girdi için her zaman aynı mesaj üretilir.
// prefix boş değilse her alan "prefix.alan" olarak isimlendirilir; bu sayede
// batch doğrulamada hatalı kaydın indeksi mesaja taşınabilir.
//
// Örnek çıktı:
//
//	products[0].name: name alanı zorunludur | products[0].price: price alanı en az 0 olmalıdır
func FlattenErrors(prefix string, result *ValidationResult) string {
	errs := result.Errors()

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(errs[field], "; ")))
	}

	return strings.Join(parts, " | ")
}

// FirstError, ilk (alfabetik sıraya göre) hata mesajını döndürür.
// Hata yoksa boş string döner.
func FirstError(result *ValidationResult) string {
	errs := result.Errors()
	if len(errs) == 0 {
		return ""
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := errs[fields[0]]
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}
