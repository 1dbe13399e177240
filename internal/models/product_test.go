package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

// -----------------------------------------------------------------------------
// DELETE GÖVDESİ TESTLERİ
// -----------------------------------------------------------------------------
// Silme isteği, insert/update ile aynı varlık zarfını kullanır: id alanı
// taşıyan nesne listeleri. Bu testler her iki kabul edilen biçimi doğrular.
// -----------------------------------------------------------------------------

// TestDeleteBatch_EntityObjects tests the entity-object envelope shared with
// insert/update bodies
func TestDeleteBatch_EntityObjects(t *testing.T) {
	body := `{
		"products": [
			{"id": 1, "name": "Pen", "category_id": 2, "price": 3.5},
			{"id": 4, "name": "Notebook", "category_id": 2, "price": 7.0}
		],
		"categories": [
			{"id": 2, "name": "Stationery", "description": "Office supplies"}
		]
	}`

	var batch DeleteBatch
	if err := json.Unmarshal([]byte(body), &batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(batch.Products, IDList{1, 4}) {
		t.Errorf("expected product ids [1 4], got %v", batch.Products)
	}
	if !reflect.DeepEqual(batch.Categories, IDList{2}) {
		t.Errorf("expected category ids [2], got %v", batch.Categories)
	}
}

// TestDeleteBatch_BareIDs tests the shorthand list of bare ids
func TestDeleteBatch_BareIDs(t *testing.T) {
	var batch DeleteBatch
	if err := json.Unmarshal([]byte(`{"products": [1, 2], "categories": []}`), &batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(batch.Products, IDList{1, 2}) {
		t.Errorf("expected product ids [1 2], got %v", batch.Products)
	}
	if len(batch.Categories) != 0 {
		t.Errorf("expected no category ids, got %v", batch.Categories)
	}
}

// TestDeleteBatch_MixedShapes tests that both element shapes can appear in one list
func TestDeleteBatch_MixedShapes(t *testing.T) {
	var batch DeleteBatch
	if err := json.Unmarshal([]byte(`{"products": [1, {"id": 4}]}`), &batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(batch.Products, IDList{1, 4}) {
		t.Errorf("expected product ids [1 4], got %v", batch.Products)
	}
}

// TestDeleteBatch_InvalidElement tests that non-numeric, non-object elements fail
func TestDeleteBatch_InvalidElement(t *testing.T) {
	var batch DeleteBatch
	if err := json.Unmarshal([]byte(`{"products": ["abc"]}`), &batch); err == nil {
		t.Fatal("expected error for non-numeric element, got nil")
	}
}
