// -----------------------------------------------------------------------------
// Event System - Core Interfaces
// -----------------------------------------------------------------------------
// Bu dosya, event-driven architecture için temel yapıları içerir.
//
// Event Nedir?
// Event (olay), sistemde meydana gelen önemli bir durumu temsil eder.
// Örnek: CatalogBatchInserted, CatalogBatchDeleted, CacheCleared
//
// Neden Event-Driven Architecture?
// - Loose coupling (bağımlılıkların azaltılması)
// - Separation of concerns (sorumlulukların ayrılması)
// - Audit trail (batch operasyonlarının izlenebilirliği)
// - Testability (test edilebilirlik)
// -----------------------------------------------------------------------------

package events

import (
	"time"
)

// Event, tüm event'lerin implement etmesi gereken interface.
//
// Her event şu bilgileri sağlamalıdır:
//   - Name: Event'in unique adı
//   - OccurredAt: Event'in gerçekleşme zamanı
//   - Payload: Event ile taşınan veri
type Event interface {
	// Name, event'in benzersiz adını döndürür.
	// Örnek: "catalog.batch.inserted", "catalog.batch.deleted"
	Name() string

	// OccurredAt, event'in gerçekleşme zamanını döndürür.
	OccurredAt() time.Time

	// Payload, event ile taşınan veriyi döndürür.
	// Generic interface{} olduğu için her türlü data taşınabilir.
	Payload() interface{}
}

// BaseEvent, tüm custom event'ler için temel yapıdır.
//
// Custom event oluştururken BaseEvent'i embed edin:
//
//	type BatchRejected struct {
//	    events.BaseEvent
//	    Reason string
//	}
//
// Bu sayede Name() ve OccurredAt() metodlarını otomatik implement etmiş olursunuz.
type BaseEvent struct {
	name       string
	occurredAt time.Time
	payload    interface{}
}

// NewBaseEvent, yeni bir BaseEvent oluşturur.
//
// Parametreler:
//   - name: Event adı (örn: "catalog.batch.inserted")
//   - payload: Event verisi (optional, nil olabilir)
//
// Döndürür:
//   - *BaseEvent: BaseEvent instance
//
// Örnek:
//
//	event := events.NewBaseEvent("catalog.batch.inserted", change)
func NewBaseEvent(name string, payload interface{}) *BaseEvent {
	return &BaseEvent{
		name:       name,
		occurredAt: time.Now(),
		payload:    payload,
	}
}

// Name, event adını döndürür.
func (e *BaseEvent) Name() string {
	return e.name
}

// OccurredAt, event zamanını döndürür.
func (e *BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload, event verisini döndürür.
func (e *BaseEvent) Payload() interface{} {
	return e.payload
}

// SetPayload, event verisini günceller.
// Bu metod BaseEvent'i embed eden struct'lar için kullanışlıdır.
func (e *BaseEvent) SetPayload(payload interface{}) {
	e.payload = payload
}

// -----------------------------------------------------------------------------
// Catalog Event Types
// -----------------------------------------------------------------------------
// Katalog batch operasyonlarının yayınladığı event'ler. Her başarılı batch
// mutasyonu bir event üretir; listener'lar (audit log, cache invalidation)
// bu event'lere abone olur.

const (
	// Batch Events
	EventBatchInserted = "catalog.batch.inserted"
	EventBatchUpdated  = "catalog.batch.updated"
	EventBatchDeleted  = "catalog.batch.deleted"

	// Cache Events
	EventCacheCleared = "cache.cleared"
)

// CatalogChange, batch event'lerinin payload'ıdır. Batch'teki ürün ve
// kategori sayılarını taşır.
type CatalogChange struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
}

// Total, batch'teki toplam kayıt sayısını döndürür.
func (c CatalogChange) Total() int {
	return c.Products + c.Categories
}

// -----------------------------------------------------------------------------
// Helper Functions
// -----------------------------------------------------------------------------

// NewBatchInsertedEvent, başarılı bir batch insert için event oluşturur.
//
// Kullanım:
//
//	event := events.NewBatchInsertedEvent(events.CatalogChange{Products: 3, Categories: 1})
//	dispatcher.Dispatch(event)
func NewBatchInsertedEvent(change CatalogChange) Event {
	return NewBaseEvent(EventBatchInserted, change)
}

// NewBatchUpdatedEvent, başarılı bir batch update için event oluşturur.
func NewBatchUpdatedEvent(change CatalogChange) Event {
	return NewBaseEvent(EventBatchUpdated, change)
}

// NewBatchDeletedEvent, başarılı bir batch delete için event oluşturur.
func NewBatchDeletedEvent(change CatalogChange) Event {
	return NewBaseEvent(EventBatchDeleted, change)
}

// NewCacheClearedEvent, cache temizlendiğinde event oluşturur.
func NewCacheClearedEvent(detail interface{}) Event {
	return NewBaseEvent(EventCacheCleared, detail)
}
