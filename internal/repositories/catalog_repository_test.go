package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/biyonik/product-catalog-api/internal/apperr"
	"github.com/biyonik/product-catalog-api/internal/filter"
	"github.com/biyonik/product-catalog-api/internal/models"
)

// -----------------------------------------------------------------------------
// CATALOG REPOSITORY TESTLERİ
// -----------------------------------------------------------------------------
// Bu testler, repository'nin ürettiği SQL'i ve transaction davranışını sqlmock
// ile doğrular: batch'in herhangi bir adımı başarısız olursa rollback yapılmalı,
// boş taraflar için statement üretilmemelidir.
// -----------------------------------------------------------------------------

const listProductsSQL = "SELECT `products`.`id`, `products`.`name`, `products`.`category_id`, " +
	"`products`.`price`, `categories`.`name` AS `category_name`, `categories`.`description` " +
	"FROM `products` " +
	"LEFT JOIN `categories` ON `products`.`category_id` = `categories`.`id`"

func newMockRepository(t *testing.T) (*CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewCatalogRepository(db), mock
}

func productColumns() []string {
	return []string{"id", "name", "category_id", "price", "category_name", "description"}
}

// TestFetchProducts_Defaults tests the unfiltered listing query shape
func TestFetchProducts_Defaults(t *testing.T) {
	repo, mock := newMockRepository(t)

	expectedSQL := listProductsSQL +
		" GROUP BY `products`.`id` ORDER BY `products`.`price` DESC LIMIT ?"

	mock.ExpectQuery(expectedSQL).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(int64(1), "Pen", int64(2), 3.5, "Stationery", "Office supplies").
			AddRow(int64(4), "Gadget", int64(9), 99.9, nil, nil))

	rows, err := repo.FetchProducts(filter.DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Pen" || rows[0].CategoryName == nil || *rows[0].CategoryName != "Stationery" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	// LEFT JOIN: eşleşmeyen kategori kolonları NULL gelmeli
	if rows[1].CategoryName != nil || rows[1].Description != nil {
		t.Errorf("expected nil category columns for unmatched join, got %+v", rows[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestFetchProducts_FilteredAndPaged tests where group composition and paging
func TestFetchProducts_FilteredAndPaged(t *testing.T) {
	repo, mock := newMockRepository(t)

	groups, err := filter.Parse("&id__gte=3*|name__like=Pen*")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	params := filter.Params{
		Filters: groups,
		Limit:   5,
		Offset:  10,
		OrderBy: "name",
		Asc:     true,
	}

	expectedSQL := listProductsSQL +
		" WHERE (`products`.`id` >= ?) OR (`products`.`name` LIKE ?)" +
		" GROUP BY `products`.`id` ORDER BY `products`.`name` ASC LIMIT ? OFFSET ?"

	mock.ExpectQuery(expectedSQL).
		WithArgs(int64(3), "%Pen%", 5, 10).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	rows, err := repo.FetchProducts(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty result, got %d rows", len(rows))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestInsertBatch_ProvisionalResolution tests that provisional category ids are
// remapped to generated ids inside one transaction
func TestInsertBatch_ProvisionalResolution(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Categories: []models.CategoryInput{
			{ID: -1, Name: "Stationery", Description: "Office supplies"},
			{ID: -2, Name: "Electronics", Description: "Gadgets"},
		},
		Products: []models.ProductInput{
			{Name: "Pen", CategoryID: -1, Price: 3.5},
			{Name: "Cable", CategoryID: -2, Price: 7.0},
			{Name: "Notebook", CategoryID: -1, Price: 5.25},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories` (`name`, `description`) VALUES (?, ?), (?, ?)").
		WithArgs("Stationery", "Office supplies", "Electronics", "Gadgets").
		WillReturnResult(sqlmock.NewResult(10, 2))
	// Geçici id'ler üretilen ardışık id'lere çözülmeli: -1 → 10, -2 → 11
	mock.ExpectExec("INSERT INTO `products` (`name`, `category_id`, `price`) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)").
		WithArgs("Pen", int64(10), 3.5, "Cable", int64(11), 7.0, "Notebook", int64(10), 5.25).
		WillReturnResult(sqlmock.NewResult(1, 3))
	mock.ExpectCommit()

	if err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestInsertBatch_UnknownProvisionalReference tests rollback when a product
// references a provisional id missing from the batch
func TestInsertBatch_UnknownProvisionalReference(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Categories: []models.CategoryInput{
			{ID: -1, Name: "Stationery", Description: "Office supplies"},
		},
		Products: []models.ProductInput{
			{Name: "Pen", CategoryID: -99, Price: 3.5},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories` (`name`, `description`) VALUES (?, ?)").
		WithArgs("Stationery", "Office supplies").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectRollback()

	err := repo.InsertBatch(batch)
	if err == nil {
		t.Fatal("expected error for unknown provisional reference, got nil")
	}
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected BadRequest, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestInsertBatch_RealReferenceChecked tests the pre-insert existence check
// when the batch carries no categories
func TestInsertBatch_RealReferenceChecked(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Products: []models.ProductInput{
			{Name: "Pen", CategoryID: 5, Price: 3.5},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE `id` IN (?)").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("INSERT INTO `products` (`name`, `category_id`, `price`) VALUES (?, ?, ?)").
		WithArgs("Pen", int64(5), 3.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestInsertBatch_MissingRealReference tests rollback with NotFound when the
// referenced category does not exist
func TestInsertBatch_MissingRealReference(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Products: []models.ProductInput{
			{Name: "Pen", CategoryID: 5, Price: 3.5},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE `id` IN (?)").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.InsertBatch(batch)
	if err == nil {
		t.Fatal("expected error for missing category, got nil")
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestInsertBatch_EmptyBatch tests that an empty batch never touches the database
func TestInsertBatch_EmptyBatch(t *testing.T) {
	repo, mock := newMockRepository(t)

	err := repo.InsertBatch(models.CatalogBatch{})
	if err == nil {
		t.Fatal("expected error for empty batch, got nil")
	}
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected BadRequest, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no database interaction expected: %v", err)
	}
}

// TestUpdateBatch_Products tests the existence check and bulk rewrite for products
func TestUpdateBatch_Products(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Products: []models.ProductInput{
			{ID: 1, Name: "Pen", CategoryID: 2, Price: 3.5},
			{ID: 4, Name: "Notebook", CategoryID: 2, Price: 7.0},
		},
	}

	updateSQL := "UPDATE `products` JOIN (" +
		"SELECT ? AS `id`, ? AS `name`, ? AS `category_id`, ? AS `price` " +
		"UNION ALL SELECT ?, ?, ?, ?" +
		") AS `incoming` ON `products`.`id` = `incoming`.`id` " +
		"SET `products`.`name` = `incoming`.`name`, " +
		"`products`.`category_id` = `incoming`.`category_id`, " +
		"`products`.`price` = `incoming`.`price`"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `products` WHERE `id` IN (?, ?)").
		WithArgs(int64(1), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(4)))
	// Kategori referansları da güncellemeden önce doğrulanmalı
	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE `id` IN (?)").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectExec(updateSQL).
		WithArgs(int64(1), "Pen", int64(2), 3.5, int64(4), "Notebook", int64(2), 7.0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.UpdateBatch(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestUpdateBatch_MissingProduct tests rollback with NotFound before any row changes
func TestUpdateBatch_MissingProduct(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Products: []models.ProductInput{
			{ID: 1, Name: "Pen", CategoryID: 2, Price: 3.5},
			{ID: 99, Name: "Ghost", CategoryID: 2, Price: 1.0},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `products` WHERE `id` IN (?, ?)").
		WithArgs(int64(1), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectRollback()

	err := repo.UpdateBatch(batch)
	if err == nil {
		t.Fatal("expected error for missing product, got nil")
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestUpdateBatch_MissingCategoryReference tests rollback with NotFound when a
// product update points at a category that does not exist
func TestUpdateBatch_MissingCategoryReference(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.CatalogBatch{
		Products: []models.ProductInput{
			{ID: 1, Name: "Pen", CategoryID: 999, Price: 3.5},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `products` WHERE `id` IN (?)").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT `id` FROM `categories` WHERE `id` IN (?)").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.UpdateBatch(batch)
	if err == nil {
		t.Fatal("expected error for missing category reference, got nil")
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestDeleteBatch_ProductsBeforeCategories tests the delete ordering inside the transaction
func TestDeleteBatch_ProductsBeforeCategories(t *testing.T) {
	repo, mock := newMockRepository(t)

	batch := models.DeleteBatch{
		Products:   []int64{1, 4},
		Categories: []int64{2},
	}

	mock.ExpectBegin()
	// Foreign key ihlali yaşamamak için önce ürünler silinmeli
	mock.ExpectExec("DELETE FROM `products` WHERE `id` IN (?, ?)").
		WithArgs(int64(1), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `categories` WHERE `id` IN (?)").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteBatch(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestDeleteBatch_ProductsOnly tests that no category statement runs for an empty side
func TestDeleteBatch_ProductsOnly(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `products` WHERE `id` IN (?)").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteBatch(models.DeleteBatch{Products: []int64{7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
