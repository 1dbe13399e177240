package controllers

import (
	"net/http"

	"github.com/biyonik/product-catalog-api/internal/filter"
	"github.com/biyonik/product-catalog-api/internal/http/request"
	"github.com/biyonik/product-catalog-api/internal/http/response"
	"github.com/biyonik/product-catalog-api/internal/models"
	"github.com/biyonik/product-catalog-api/internal/services"
)

// CatalogController handles HTTP requests for the product catalog
// (ultra-thin - no business logic!)
type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// List handles GET /api/catalog/products
//
// Query parametreleri:
//   - filters: "&alan__op=değer,...*" / "|alan__op=değer,...*" filtre ifadesi
//   - limit, offset: sayfalama (varsayılan 10 / 0)
//   - orderby, asc: sıralama (varsayılan price / false)
func (c *CatalogController) List(w http.ResponseWriter, r *request.Request) {
	// 1. Parse query parameters
	params, err := filter.ParseParams(r.URL.Query())
	if err != nil {
		response.FromError(w, err)
		return
	}

	// 2. Call service (ALL LOGIC HERE!)
	rows, err := c.catalogService.ListProducts(params)
	if err != nil {
		response.FromError(w, err)
		return
	}

	// 3. Return response
	response.Success(w, http.StatusOK, rows)
}

// Insert handles POST /api/catalog/products
//
// Body: {"products": [...], "categories": [...]}
// Kategoriler geçici id taşıyabilir; ürün referansları transaction içinde
// gerçek id'lere çözülür.
func (c *CatalogController) Insert(w http.ResponseWriter, r *request.Request) {
	// 1. Parse request
	var batch models.CatalogBatch
	if err := r.ParseJSON(&batch); err != nil {
		response.InvalidJSON(w)
		return
	}

	// 2. Call service
	if err := c.catalogService.InsertCatalog(batch); err != nil {
		response.FromError(w, err)
		return
	}

	// 3. Return response
	response.Success(w, http.StatusCreated, map[string]int{
		"inserted_products":   len(batch.Products),
		"inserted_categories": len(batch.Categories),
	})
}

// Update handles PUT /api/catalog/products
//
// Body: {"products": [...], "categories": [...]} — tüm id'ler gerçek olmalı.
func (c *CatalogController) Update(w http.ResponseWriter, r *request.Request) {
	// 1. Parse request
	var batch models.CatalogBatch
	if err := r.ParseJSON(&batch); err != nil {
		response.InvalidJSON(w)
		return
	}

	// 2. Call service
	if err := c.catalogService.UpdateCatalog(batch); err != nil {
		response.FromError(w, err)
		return
	}

	// 3. Return response
	response.Success(w, http.StatusOK, map[string]int{
		"updated_products":   len(batch.Products),
		"updated_categories": len(batch.Categories),
	})
}

// Delete handles DELETE /api/catalog/products
//
// Body: insert/update ile aynı zarf; elemanlardan yalnızca id okunur:
// {"products": [{"id": 1, ...}, ...], "categories": [{"id": 2, ...}, ...]}
// Çıplak id listesi ([1, 2]) de kabul edilir.
func (c *CatalogController) Delete(w http.ResponseWriter, r *request.Request) {
	// 1. Parse request
	var batch models.DeleteBatch
	if err := r.ParseJSON(&batch); err != nil {
		response.InvalidJSON(w)
		return
	}

	// 2. Call service
	if err := c.catalogService.DeleteCatalog(batch); err != nil {
		response.FromError(w, err)
		return
	}

	// 3. Return response
	response.Success(w, http.StatusOK, map[string]int{
		"deleted_products":   len(batch.Products),
		"deleted_categories": len(batch.Categories),
	})
}
