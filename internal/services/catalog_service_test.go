package services

import (
	"io"
	"log"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/biyonik/product-catalog-api/internal/apperr"
	"github.com/biyonik/product-catalog-api/internal/models"
	"github.com/biyonik/product-catalog-api/internal/repositories"
	"github.com/biyonik/product-catalog-api/pkg/events"
)

// -----------------------------------------------------------------------------
// CATALOG SERVICE TESTLERİ
// -----------------------------------------------------------------------------
// Bu testler, batch payload doğrulamasının repository'ye hiç inmeden
// BadRequest ürettiğini doğrular. Veritabanı etkileşimi sqlmock ile izlenir:
// doğrulama hatalarında hiçbir statement çalışmamalıdır.
// -----------------------------------------------------------------------------

func newMockService(t *testing.T) (*CatalogService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewCatalogService(repositories.NewCatalogRepository(db)), mock
}

func assertNoDatabaseInteraction(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no database interaction expected: %v", err)
	}
}

// TestInsertCatalog_EmptyBatch tests that an empty batch is rejected up front
func TestInsertCatalog_EmptyBatch(t *testing.T) {
	service, mock := newMockService(t)

	err := service.InsertCatalog(models.CatalogBatch{})
	if err == nil {
		t.Fatal("expected error for empty batch, got nil")
	}
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected BadRequest, got %v", err)
	}

	assertNoDatabaseInteraction(t, mock)
}

// TestInsertCatalog_InvalidProducts tests field-level product validation
func TestInsertCatalog_InvalidProducts(t *testing.T) {
	cases := []struct {
		name    string
		product models.ProductInput
		field   string
	}{
		{
			name:    "empty name",
			product: models.ProductInput{Name: "", CategoryID: 1, Price: 3.5},
			field:   "name",
		},
		{
			name:    "name too long",
			product: models.ProductInput{Name: strings.Repeat("x", 256), CategoryID: 1, Price: 3.5},
			field:   "name",
		},
		{
			name:    "negative price",
			product: models.ProductInput{Name: "Pen", CategoryID: 1, Price: -1},
			field:   "price",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mock := newMockService(t)

			err := service.InsertCatalog(models.CatalogBatch{
				Products: []models.ProductInput{tc.product},
			})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !apperr.IsKind(err, apperr.KindBadRequest) {
				t.Fatalf("expected BadRequest, got %v", err)
			}

			// Hata mesajı sorunlu kaydı ve alanı isimlendirmeli
			msg := err.Error()
			if !strings.Contains(msg, "products[0]."+tc.field) {
				t.Errorf("expected message to name products[0].%s, got %q", tc.field, msg)
			}

			assertNoDatabaseInteraction(t, mock)
		})
	}
}

// TestInsertCatalog_InvalidCategories tests field-level category validation
func TestInsertCatalog_InvalidCategories(t *testing.T) {
	service, mock := newMockService(t)

	err := service.InsertCatalog(models.CatalogBatch{
		Categories: []models.CategoryInput{
			{ID: -1, Name: "Stationery", Description: "Office supplies"},
			{ID: -2, Name: "", Description: ""},
		},
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected BadRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "categories[1]") {
		t.Errorf("expected message to name categories[1], got %q", err.Error())
	}

	assertNoDatabaseInteraction(t, mock)
}

// TestUpdateCatalog_RequiresPositiveIDs tests that update entries need real ids
func TestUpdateCatalog_RequiresPositiveIDs(t *testing.T) {
	cases := []struct {
		name  string
		batch models.CatalogBatch
		where string
	}{
		{
			name: "product without id",
			batch: models.CatalogBatch{
				Products: []models.ProductInput{{ID: 0, Name: "Pen", CategoryID: 1, Price: 3.5}},
			},
			where: "products[0].id",
		},
		{
			name: "product with provisional category reference",
			batch: models.CatalogBatch{
				Products: []models.ProductInput{{ID: 1, Name: "Pen", CategoryID: -1, Price: 3.5}},
			},
			where: "products[0].category_id",
		},
		{
			name: "category with negative id",
			batch: models.CatalogBatch{
				Categories: []models.CategoryInput{{ID: -5, Name: "Stationery", Description: "Office"}},
			},
			where: "categories[0].id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mock := newMockService(t)

			err := service.UpdateCatalog(tc.batch)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !apperr.IsKind(err, apperr.KindBadRequest) {
				t.Fatalf("expected BadRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.where) {
				t.Errorf("expected message to name %s, got %q", tc.where, err.Error())
			}

			assertNoDatabaseInteraction(t, mock)
		})
	}
}

// TestDeleteCatalog_InvalidIDs tests that delete lists reject non-positive ids
func TestDeleteCatalog_InvalidIDs(t *testing.T) {
	cases := []struct {
		name  string
		batch models.DeleteBatch
	}{
		{name: "empty batch", batch: models.DeleteBatch{}},
		{name: "zero product id", batch: models.DeleteBatch{Products: []int64{0}}},
		{name: "negative category id", batch: models.DeleteBatch{Categories: []int64{-3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mock := newMockService(t)

			err := service.DeleteCatalog(tc.batch)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperr.IsKind(err, apperr.KindBadRequest) {
				t.Errorf("expected BadRequest, got %v", err)
			}

			assertNoDatabaseInteraction(t, mock)
		})
	}
}

// TestDeleteCatalog_ValidBatch tests that a valid batch reaches the repository
func TestDeleteCatalog_ValidBatch(t *testing.T) {
	service, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `products` WHERE `id` IN (?)").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := service.DeleteCatalog(models.DeleteBatch{Products: []int64{7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestDeleteCatalog_PublishesEvent tests that a successful batch emits a domain event
func TestDeleteCatalog_PublishesEvent(t *testing.T) {
	service, mock := newMockService(t)

	dispatcher := events.NewDispatcher(log.New(io.Discard, "", 0))
	service.SetEventDispatcher(dispatcher)

	var received atomic.Int32
	dispatcher.Listen(events.EventBatchDeleted, events.ListenerFunc(func(e events.Event) error {
		change, ok := e.Payload().(events.CatalogChange)
		if !ok {
			t.Errorf("expected CatalogChange payload, got %T", e.Payload())
			return nil
		}
		if change.Products != 1 || change.Categories != 0 {
			t.Errorf("unexpected change summary: %+v", change)
		}
		received.Add(1)
		return nil
	}))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `products` WHERE `id` IN (?)").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := service.DeleteCatalog(models.DeleteBatch{Products: []int64{7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Shutdown, bekleyen async event'lerin tamamlanmasını bekler
	dispatcher.Shutdown()

	if received.Load() != 1 {
		t.Errorf("expected 1 event, got %d", received.Load())
	}
}
