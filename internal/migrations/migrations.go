// -----------------------------------------------------------------------------
// Katalog Şema Migration'ları
// -----------------------------------------------------------------------------
// Bu dosya, katalog veritabanının şemasını tanımlar:
//
//	categories: id, name, description
//	products:   id, name, category_id (FK -> categories), price
//
// Yeni migration eklerken All() listesinin sonuna ekleyin; sıra önemlidir
// (products, categories'e foreign key ile bağlıdır).
// -----------------------------------------------------------------------------

package migrations

import (
	"github.com/biyonik/product-catalog-api/pkg/database/migration"
)

// All, kayıtlı tüm migration'ları çalıştırılma sırasıyla döndürür.
func All() []migration.Migration {
	return []migration.Migration{
		&CreateCategoriesTable{},
		&CreateProductsTable{},
	}
}

// CreateCategoriesTable, kategori tablosunu oluşturur.
type CreateCategoriesTable struct{}

func (m *CreateCategoriesTable) Name() string {
	return "000001_create_categories_table"
}

func (m *CreateCategoriesTable) Up(migrator *migration.Migrator) error {
	return migrator.CreateTable("categories", func(t *migration.Blueprint) {
		t.ID()
		t.String("name", 255)
		t.Text("description")
	})
}

func (m *CreateCategoriesTable) Down(migrator *migration.Migrator) error {
	return migrator.DropTable("categories")
}

// CreateProductsTable, ürün tablosunu oluşturur.
//
// category_id, categories tablosuna RESTRICT ile bağlıdır: kategorisi olan
// bir ürün varken kategori silinemez. Delete sırası bu yüzden önce ürünler,
// sonra kategorilerdir.
type CreateProductsTable struct{}

func (m *CreateProductsTable) Name() string {
	return "000002_create_products_table"
}

func (m *CreateProductsTable) Up(migrator *migration.Migrator) error {
	return migrator.CreateTable("products", func(t *migration.Blueprint) {
		t.ID()
		t.String("name", 255)
		t.BigInteger("category_id").Unsigned()
		t.Decimal("price", 10, 2)

		t.Index("category_id")
		t.Foreign("category_id").References("id").On("categories").OnDelete("RESTRICT")
	})
}

func (m *CreateProductsTable) Down(migrator *migration.Migrator) error {
	return migrator.DropTable("products")
}
