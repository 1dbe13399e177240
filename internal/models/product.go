// -----------------------------------------------------------------------------
// Product Model
// -----------------------------------------------------------------------------
// Ürünleri ve katalog batch payload'larını temsil eder.
// -----------------------------------------------------------------------------

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Product, bir ürünü temsil eder
type Product struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	CategoryID int64   `json:"category_id" db:"category_id"`
	Price      float64 `json:"price" db:"price"`
}

// ProductRow, listeleme sorgusunun join'li sonuç satırıdır: ürün kolonları
// artı kategorinin adı ve açıklaması. LEFT JOIN nedeniyle kategori kolonları
// NULL gelebilir, bu yüzden pointer olarak taranır.
type ProductRow struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	CategoryID   int64    `json:"category_id" db:"category_id"`
	Price        float64  `json:"price" db:"price"`
	CategoryName *string  `json:"category_name" db:"category_name"`
	Description  *string  `json:"description" db:"description"`
}

// ProductInput, batch payload'ındaki tek bir ürün kaydıdır.
//
// Insert akışında CategoryID ya mevcut bir kategorinin gerçek id'si ya da
// aynı batch'te gelen bir kategorinin geçici id'sidir. Update akışında ID
// mevcut satırın kimliği, CategoryID gerçek bir kategori id'sidir.
type ProductInput struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CategoryID int64   `json:"category_id"`
	Price      float64 `json:"price"`
}

// CatalogBatch, insert/update isteklerinin gövdesidir. Her iki dilim de boş
// olabilir; tamamen boş batch üst katmanda reddedilir.
type CatalogBatch struct {
	Products   []ProductInput  `json:"products"`
	Categories []CategoryInput `json:"categories"`
}

// IsEmpty, batch'in hiçbir kayıt içermediğini döner.
func (b CatalogBatch) IsEmpty() bool {
	return len(b.Products) == 0 && len(b.Categories) == 0
}

// IDList, silme gövdesindeki bir varlık listesidir. İstemciler insert/update
// ile aynı zarfı kullanır: elemanlar id alanı taşıyan nesnelerdir
// ({"id": 3, "name": ...}, id dışındaki alanlar yok sayılır). Kısaltılmış
// çıplak sayı listesi ([1, 2]) de kabul edilir.
type IDList []int64

// UnmarshalJSON, her elemanı nesne veya sayı olarak çözer.
func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make([]int64, 0, len(raw))
	for i, item := range raw {
		if trimmed := bytes.TrimSpace(item); len(trimmed) > 0 && trimmed[0] == '{' {
			var ref struct {
				ID int64 `json:"id"`
			}
			if err := json.Unmarshal(item, &ref); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			ids = append(ids, ref.ID)
			continue
		}

		var id int64
		if err := json.Unmarshal(item, &id); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	*l = ids
	return nil
}

// DeleteBatch, silme isteğinin gövdesidir: her varlık için silinecek id'ler.
type DeleteBatch struct {
	Products   IDList `json:"products"`
	Categories IDList `json:"categories"`
}

// IsEmpty, silinecek hiçbir id olmadığını döner.
func (b DeleteBatch) IsEmpty() bool {
	return len(b.Products) == 0 && len(b.Categories) == 0
}
