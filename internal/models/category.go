// -----------------------------------------------------------------------------
// Category Model
// -----------------------------------------------------------------------------
// Ürün kategorilerini temsil eder (kırtasiye, elektronik vb.)
// -----------------------------------------------------------------------------

package models

// Category, bir ürün kategorisini temsil eder
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// CategoryInput, batch payload'ındaki tek bir kategori kaydıdır.
//
// Insert akışında ID, istemcinin aynı batch içindeki ürünleri bu kategoriye
// bağlamak için kullandığı geçici (provisional) kimliktir; veritabanı
// tarafından üretilen gerçek id ile hiçbir ilişkisi yoktur. Update akışında
// ise ID mevcut bir satırın gerçek kimliğidir.
type CategoryInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
