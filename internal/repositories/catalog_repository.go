// -----------------------------------------------------------------------------
// Catalog Repository
// -----------------------------------------------------------------------------
// Ürün/kategori kataloğunun veri erişim katmanı.
//
// Okumalar doğrudan connection pool üzerinden, tüm mutasyonlar tek bir
// transaction içinde çalışır: batch'in herhangi bir adımı başarısız olursa
// hiçbir kaydı kalıcı olmaz.
//
// Hata sınıflandırması bu katmanın sınırında yapılır: doğrulama ve ön kontrol
// hataları BadRequest/NotFound olarak üretilir, SQL yürütmesinden sızan her
// şey Internal'a sarılır (apperr.From).
// -----------------------------------------------------------------------------

package repositories

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/biyonik/product-catalog-api/internal/apperr"
	"github.com/biyonik/product-catalog-api/internal/filter"
	"github.com/biyonik/product-catalog-api/internal/models"
	"github.com/biyonik/product-catalog-api/pkg/database"
)

type CatalogRepository struct {
	db      *sql.DB
	grammar database.Grammar
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{
		db:      db,
		grammar: database.NewMySQLGrammar(),
	}
}

// FetchProducts, filtrelenmiş ve sayfalanmış ürün listesini kategori adı ve
// açıklamasıyla join'lenmiş olarak döner.
//
// WHERE kompozisyonu: AND kümesi tek parantezli grup, OR kümesi tek parantezli
// grup; iki grup birbirine OR ile bağlanır:
//
//	WHERE (a AND b) OR (c OR d)
//
// Boş gruplar builder tarafından atlanır, tek grup kaldığında parantez dışında
// bağlaç üretilmez.
func (r *CatalogRepository) FetchProducts(params filter.Params) ([]models.ProductRow, error) {
	andClauses, orClauses, err := filter.CompileGroups(params.Filters)
	if err != nil {
		return nil, apperr.From(err)
	}

	builder := database.NewBuilder(r.db, r.grammar).
		Table("products").
		Select(
			"products.id",
			"products.name",
			"products.category_id",
			"products.price",
			"categories.name AS category_name",
			"categories.description",
		).
		LeftJoin("categories", "products.category_id", "=", "categories.id").
		WhereGroup("AND", andClauses...).
		OrWhereGroup("OR", orClauses...).
		GroupBy("products.id").
		OrderBy(params.OrderColumn(), params.OrderDirection()).
		Limit(params.Limit).
		Offset(params.Offset)

	rows := make([]models.ProductRow, 0)
	if err := builder.Get(&rows); err != nil {
		return nil, apperr.From(fmt.Errorf("failed to query products: %w", err))
	}

	return rows, nil
}

// InsertBatch, kategorileri ve ürünleri tek transaction içinde ekler.
//
// Geçici kimlik çözümlemesi: batch kategori içeriyorsa, payload'daki kategori
// id'leri istemcinin uydurduğu geçici kimliklerdir. Kategoriler önce eklenir,
// üretilen gerçek id'lerden geçici→gerçek bir harita kurulur ve ürünlerin
// kategori referansları bu haritadan çözülür. Haritada olmayan bir referans
// BadRequest üretir ve transaction geri alınır.
//
// Batch kategori içermiyorsa ürünlerin kategori referansları gerçek id kabul
// edilir ve insert öncesi varlık kontrolünden geçer; eksik id'ler NotFound
// üretir.
func (r *CatalogRepository) InsertBatch(batch models.CatalogBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category")
	}

	err := database.WithTransaction(r.db, r.grammar, func(tx *database.Transaction) error {
		provisional := make(map[int64]int64)

		if len(batch.Categories) > 0 {
			rows := make([][]interface{}, 0, len(batch.Categories))
			for _, category := range batch.Categories {
				rows = append(rows, []interface{}{category.Name, category.Description})
			}

			result, err := tx.NewBuilder().
				Table("categories").
				ExecBulkInsert([]string{"name", "description"}, rows)
			if err != nil {
				return fmt.Errorf("failed to insert categories: %w", err)
			}

			// MySQL çok satırlı INSERT'te LastInsertId ilk satırın id'sidir;
			// auto_increment kilidi altında kalanlar ardışık atanır.
			firstID, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read generated category ids: %w", err)
			}

			for i, category := range batch.Categories {
				provisional[category.ID] = firstID + int64(i)
			}
		}

		if len(batch.Products) > 0 {
			rows := make([][]interface{}, 0, len(batch.Products))

			if len(provisional) > 0 {
				// Kategoriler bu batch'te eklendi: her ürün referansı
				// geçici kimlik haritasından çözülmek zorunda.
				for _, product := range batch.Products {
					realID, ok := provisional[product.CategoryID]
					if !ok {
						return apperr.BadRequestf(
							"product %q references provisional category id %d which is not in this batch",
							product.Name, product.CategoryID,
						)
					}
					rows = append(rows, []interface{}{product.Name, realID, product.Price})
				}
			} else {
				// Referanslar gerçek id: insert öncesi varlık kontrolü.
				ids := make([]int64, 0, len(batch.Products))
				for _, product := range batch.Products {
					ids = append(ids, product.CategoryID)
				}

				missing, err := r.missingIDs(tx, "categories", ids)
				if err != nil {
					return err
				}
				if len(missing) > 0 {
					return apperr.NotFoundf("category id(s) not found: %s", formatIDs(missing))
				}

				for _, product := range batch.Products {
					rows = append(rows, []interface{}{product.Name, product.CategoryID, product.Price})
				}
			}

			if _, err := tx.NewBuilder().
				Table("products").
				ExecBulkInsert([]string{"name", "category_id", "price"}, rows); err != nil {
				return fmt.Errorf("failed to insert products: %w", err)
			}
		}

		return nil
	})

	return apperr.From(err)
}

// UpdateBatch, batch'teki tüm ürün ve kategori satırlarını tek transaction
// içinde yeniden yazar. Güncellenecek her id ve ürünlerin kategori
// referansları önce varlık kontrolünden geçer; eksik id'ler NotFound üretir
// ve hiçbir satır değişmez.
func (r *CatalogRepository) UpdateBatch(batch models.CatalogBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category")
	}

	err := database.WithTransaction(r.db, r.grammar, func(tx *database.Transaction) error {
		if len(batch.Products) > 0 {
			ids := make([]int64, 0, len(batch.Products))
			refs := make([]int64, 0, len(batch.Products))
			for _, product := range batch.Products {
				ids = append(ids, product.ID)
				refs = append(refs, product.CategoryID)
			}

			missing, err := r.missingIDs(tx, "products", ids)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return apperr.NotFoundf("product id(s) not found: %s", formatIDs(missing))
			}

			// Update'te kategori referansları her zaman gerçek id'dir;
			// mevcut olmayan bir kategoriye bağlamak satır değişmeden
			// NotFound ile reddedilir.
			missing, err = r.missingIDs(tx, "categories", refs)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return apperr.NotFoundf("category id(s) not found: %s", formatIDs(missing))
			}

			rows := make([][]interface{}, 0, len(batch.Products))
			for _, product := range batch.Products {
				rows = append(rows, []interface{}{product.ID, product.Name, product.CategoryID, product.Price})
			}

			if _, err := tx.NewBuilder().
				Table("products").
				ExecBulkUpdate("id", []string{"name", "category_id", "price"}, rows); err != nil {
				return fmt.Errorf("failed to update products: %w", err)
			}
		}

		if len(batch.Categories) > 0 {
			ids := make([]int64, 0, len(batch.Categories))
			for _, category := range batch.Categories {
				ids = append(ids, category.ID)
			}

			missing, err := r.missingIDs(tx, "categories", ids)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return apperr.NotFoundf("category id(s) not found: %s", formatIDs(missing))
			}

			rows := make([][]interface{}, 0, len(batch.Categories))
			for _, category := range batch.Categories {
				rows = append(rows, []interface{}{category.ID, category.Name, category.Description})
			}

			if _, err := tx.NewBuilder().
				Table("categories").
				ExecBulkUpdate("id", []string{"name", "description"}, rows); err != nil {
				return fmt.Errorf("failed to update categories: %w", err)
			}
		}

		return nil
	})

	return apperr.From(err)
}

// DeleteBatch, verilen id listelerindeki satırları tek transaction içinde
// siler. Foreign key ihlali yaşamamak için önce ürünler, sonra kategoriler
// silinir. Boş listeler için statement üretilmez.
func (r *CatalogRepository) DeleteBatch(batch models.DeleteBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category id")
	}

	err := database.WithTransaction(r.db, r.grammar, func(tx *database.Transaction) error {
		if len(batch.Products) > 0 {
			if _, err := tx.NewBuilder().
				Table("products").
				ExecDeleteIn("id", toInterfaceSlice(batch.Products)); err != nil {
				return fmt.Errorf("failed to delete products: %w", err)
			}
		}

		if len(batch.Categories) > 0 {
			if _, err := tx.NewBuilder().
				Table("categories").
				ExecDeleteIn("id", toInterfaceSlice(batch.Categories)); err != nil {
				return fmt.Errorf("failed to delete categories: %w", err)
			}
		}

		return nil
	})

	return apperr.From(err)
}

// missingIDs, verilen id listesinden tabloda karşılığı olmayanları sıralı
// olarak döner. Liste sorgudan önce tekilleştirilir.
func (r *CatalogRepository) missingIDs(tx *database.Transaction, table string, ids []int64) ([]int64, error) {
	unique := make(map[int64]bool, len(ids))
	lookup := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if !unique[id] {
			unique[id] = true
			lookup = append(lookup, id)
		}
	}

	found, err := tx.NewBuilder().
		Table(table).
		Select("id").
		WhereIn("id", lookup).
		GetMaps()
	if err != nil {
		return nil, fmt.Errorf("failed to check %s ids: %w", table, err)
	}

	for _, row := range found {
		id, err := toInt64(row["id"])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s id: %w", table, err)
		}
		delete(unique, id)
	}

	missing := make([]int64, 0, len(unique))
	for id := range unique {
		missing = append(missing, id)
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return missing, nil
}

// toInt64, driver'dan dönen id değerini normalize eder. go-sql-driver metin
// protokolünde sayıları []byte (rowsToMaps sonrası string) döndürebilir.
func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected id type %T", value)
	}
}

func toInterfaceSlice(ids []int64) []interface{} {
	values := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return values
}

func formatIDs(ids []int64) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatInt(id, 10)
	}
	return out
}
