package services

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/internal/apperr"
	"github.com/biyonik/product-catalog-api/internal/filter"
	"github.com/biyonik/product-catalog-api/internal/models"
	"github.com/biyonik/product-catalog-api/internal/repositories"
	"github.com/biyonik/product-catalog-api/pkg/events"
	"github.com/biyonik/product-catalog-api/pkg/validation"
	"github.com/biyonik/product-catalog-api/pkg/validation/types"
)

// CatalogService, katalog iş kurallarını yürütür: batch payload doğrulaması
// burada, veri erişimi ve transaction yönetimi repository'de yapılır.
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
	dispatcher  *events.Dispatcher // optional, nil ise event yayınlanmaz

	insertProductSchema  validation.Schema
	updateProductSchema  validation.Schema
	insertCategorySchema validation.Schema
	updateCategorySchema validation.Schema
}

func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,

		// Insert'te ürünün id'si yok, kategori referansı geçici id olabilir
		// (sadece sıfırdan farklı olması beklenir, işaret kontrolü yapılmaz).
		insertProductSchema: validation.Make().Shape(map[string]validation.Type{
			"name":        types.String().Required().Min(1).Max(255).Label("name"),
			"category_id": types.Number().Required().Integer().Label("category_id"),
			"price":       types.Number().Required().Min(0).Label("price"),
		}),
		updateProductSchema: validation.Make().Shape(map[string]validation.Type{
			"id":          types.Number().Required().Integer().Min(1).Label("id"),
			"name":        types.String().Required().Min(1).Max(255).Label("name"),
			"category_id": types.Number().Required().Integer().Min(1).Label("category_id"),
			"price":       types.Number().Required().Min(0).Label("price"),
		}),
		insertCategorySchema: validation.Make().Shape(map[string]validation.Type{
			"name":        types.String().Required().Min(1).Max(255).Label("name"),
			"description": types.String().Required().Min(1).Max(255).Label("description"),
		}),
		updateCategorySchema: validation.Make().Shape(map[string]validation.Type{
			"id":          types.Number().Required().Integer().Min(1).Label("id"),
			"name":        types.String().Required().Min(1).Max(255).Label("name"),
			"description": types.String().Required().Min(1).Max(255).Label("description"),
		}),
	}
}

// SetEventDispatcher, başarılı batch operasyonlarından sonra event yayınlamak
// için bir dispatcher bağlar. Bağlanmazsa servis event üretmeden çalışır.
func (s *CatalogService) SetEventDispatcher(dispatcher *events.Dispatcher) {
	s.dispatcher = dispatcher
}

// publishBatchEvent, mutasyon event'ini asenkron yayınlar. Dispatcher
// bağlı değilse no-op'tur.
func (s *CatalogService) publishBatchEvent(event events.Event) {
	if s.dispatcher != nil {
		s.dispatcher.DispatchAsync(event)
	}
}

// ListProducts, doğrulanmış sorgu parametreleriyle join'li ürün listesini
// döner. Parametre doğrulaması ParseParams'ta yapıldığı için burada ek iş
// kuralı yoktur.
func (s *CatalogService) ListProducts(params filter.Params) ([]models.ProductRow, error) {
	return s.catalogRepo.FetchProducts(params)
}

// InsertCatalog, batch'i alan bazında doğrular ve repository'ye iletir.
func (s *CatalogService) InsertCatalog(batch models.CatalogBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category")
	}

	for i, product := range batch.Products {
		result := s.insertProductSchema.Validate(map[string]any{
			"name":        product.Name,
			"category_id": float64(product.CategoryID),
			"price":       product.Price,
		})
		if result.HasErrors() {
			return validationError(fmt.Sprintf("products[%d]", i), result)
		}
	}

	for i, category := range batch.Categories {
		result := s.insertCategorySchema.Validate(map[string]any{
			"name":        category.Name,
			"description": category.Description,
		})
		if result.HasErrors() {
			return validationError(fmt.Sprintf("categories[%d]", i), result)
		}
	}

	if err := s.catalogRepo.InsertBatch(batch); err != nil {
		return err
	}

	s.publishBatchEvent(events.NewBatchInsertedEvent(events.CatalogChange{
		Products:   len(batch.Products),
		Categories: len(batch.Categories),
	}))
	return nil
}

// UpdateCatalog, batch'i alan bazında doğrular ve repository'ye iletir.
func (s *CatalogService) UpdateCatalog(batch models.CatalogBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category")
	}

	for i, product := range batch.Products {
		result := s.updateProductSchema.Validate(map[string]any{
			"id":          float64(product.ID),
			"name":        product.Name,
			"category_id": float64(product.CategoryID),
			"price":       product.Price,
		})
		if result.HasErrors() {
			return validationError(fmt.Sprintf("products[%d]", i), result)
		}
	}

	for i, category := range batch.Categories {
		result := s.updateCategorySchema.Validate(map[string]any{
			"id":          float64(category.ID),
			"name":        category.Name,
			"description": category.Description,
		})
		if result.HasErrors() {
			return validationError(fmt.Sprintf("categories[%d]", i), result)
		}
	}

	if err := s.catalogRepo.UpdateBatch(batch); err != nil {
		return err
	}

	s.publishBatchEvent(events.NewBatchUpdatedEvent(events.CatalogChange{
		Products:   len(batch.Products),
		Categories: len(batch.Categories),
	}))
	return nil
}

// DeleteCatalog, id listelerini doğrular ve repository'ye iletir.
func (s *CatalogService) DeleteCatalog(batch models.DeleteBatch) error {
	if batch.IsEmpty() {
		return apperr.BadRequest("batch must contain at least one product or category id")
	}

	for i, id := range batch.Products {
		if id <= 0 {
			return apperr.BadRequestf("products[%d]: id must be a positive integer", i)
		}
	}
	for i, id := range batch.Categories {
		if id <= 0 {
			return apperr.BadRequestf("categories[%d]: id must be a positive integer", i)
		}
	}

	if err := s.catalogRepo.DeleteBatch(batch); err != nil {
		return err
	}

	s.publishBatchEvent(events.NewBatchDeletedEvent(events.CatalogChange{
		Products:   len(batch.Products),
		Categories: len(batch.Categories),
	}))
	return nil
}

// validationError, ValidationResult'taki alan hatalarını tek bir BadRequest
// mesajına düzleştirir. Alan sıralaması FlattenErrors içinde deterministiktir.
func validationError(prefix string, result *validation.ValidationResult) error {
	return apperr.BadRequest(validation.FlattenErrors(prefix, result))
}
