// -----------------------------------------------------------------------------
// Event Dispatcher
// -----------------------------------------------------------------------------
// Bu dosya, event'leri dispatch eden ve listener'ları yöneten merkezi yapıdır.
//
// Dispatcher Pattern:
// Dispatcher, observer pattern'in bir implementasyonudur. Event'ler ve
// listener'lar arasında gevşek bağlantı (loose coupling) sağlar.
//
// Kullanım:
//
//	// Dispatcher oluştur
//	dispatcher := events.NewDispatcher(logger)
//
//	// Listener kaydet
//	dispatcher.Listen(events.EventBatchInserted, &AuditBatchListener{})
//	dispatcher.Listen(events.EventBatchInserted, &InvalidateCacheListener{})
//
//	// Event dispatch et
//	event := events.NewBatchInsertedEvent(change)
//	dispatcher.Dispatch(event)
// -----------------------------------------------------------------------------

package events

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Dispatcher, event'leri yöneten merkezi yapıdır.
//
// Özellikler:
// - Thread-safe (concurrent kullanım için güvenli)
// - Multiple listeners per event
// - Wildcard listener desteği
// - Synchronous ve asynchronous dispatch
// - Graceful shutdown with context
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	logger    Logger
	wg        sync.WaitGroup // Async event'leri takip etmek için
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewDispatcher, yeni bir Dispatcher oluşturur.
//
// Parametre:
//   - logger: Log yazımı için logger instance
//
// Döndürür:
//   - *Dispatcher: Yeni dispatcher instance
//
// Örnek:
//
//	dispatcher := events.NewDispatcher(logger)
//
// Shutdown:
// Dispatcher kullanımı bittiğinde mutlaka Shutdown() çağrılmalıdır:
//
//	defer dispatcher.Shutdown()
func NewDispatcher(logger Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		listeners: make(map[string][]Listener),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Listen, belirtilen event'e bir listener kaydeder.
//
// Bir event'e birden fazla listener kayıt edilebilir.
// Tüm listener'lar sırayla çağrılır.
//
// Parametreler:
//   - eventName: Dinlenecek event adı (örn: "catalog.batch.inserted")
//   - listener: Event gerçekleştiğinde çalışacak listener
//
// Örnek:
//
//	dispatcher.Listen(events.EventBatchInserted, &AuditBatchListener{})
//	dispatcher.Listen(events.EventBatchDeleted, &InvalidateCacheListener{})
//
// Fonksiyon Listener:
//
//	dispatcher.Listen(events.EventBatchInserted, events.ListenerFunc(func(e events.Event) error {
//	    log.Println("batch inserted!")
//	    return nil
//	}))
func (d *Dispatcher) Listen(eventName string, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners[eventName] = append(d.listeners[eventName], listener)
	d.logger.Printf("✅ Listener registered for event: %s", eventName)
}

// Dispatch, bir event'i tüm kayıtlı listener'lara gönderir.
//
// Tüm listener'lar sırayla (synchronously) çalıştırılır.
// Bir listener error dönerse, diğerleri yine de çalışmaya devam eder.
//
// Parametre:
//   - event: Dispatch edilecek event
//
// Döndürür:
//   - error: Listener'lardan herhangi biri hata dönerse, son hatayı döner
//
// Örnek:
//
//	event := events.NewBatchInsertedEvent(change)
//	if err := dispatcher.Dispatch(event); err != nil {
//	    log.Printf("Event dispatch error: %v", err)
//	}
//
// Hata Yönetimi:
// Bir listener hata dönerse, log'a yazılır ama diğer listener'lar
// çalışmaya devam eder. Bu sayede bir listener'ın hatası diğerlerini engellemez.
func (d *Dispatcher) Dispatch(event Event) error {
	d.mu.RLock()
	listeners := d.listeners[event.Name()]
	d.mu.RUnlock()

	if len(listeners) == 0 {
		d.logger.Printf("⚠️  No listeners for event: %s", event.Name())
		return nil
	}

	d.logger.Printf("📢 Dispatching event: %s (listeners: %d)", event.Name(), len(listeners))

	var lastError error

	for i, listener := range listeners {
		d.logger.Printf("   [%d/%d] Executing listener for: %s", i+1, len(listeners), event.Name())

		if err := listener.Handle(event); err != nil {
			lastError = err
			d.logger.Printf("❌ Listener error for '%s': %v", event.Name(), err)
			// Hataya rağmen diğer listener'ları çalıştırmaya devam et
		}
	}

	return lastError
}

// DispatchAsync, event'i asenkron olarak dispatch eder.
//
// Event dispatch işlemi goroutine'de çalışır, bu metod hemen döner.
// Hızlı response süresi için kullanışlıdır.
//
// Parametre:
//   - event: Dispatch edilecek event
//
// Örnek:
//
//	// Async dispatch (non-blocking)
//	dispatcher.DispatchAsync(event)
//	// Kod hemen devam eder, listener'lar arka planda çalışır
//
// Uyarı:
// Async dispatch edilen event'lerin hatalarını yakalayamazsınız.
// Hatalar sadece log'a yazılır.
//
// GÜVENLİK NOTU:
// Dispatcher kapatıldıktan sonra DispatchAsync çağrısı yapılmamalıdır.
// Shutdown() çağrıldıktan sonra async event'ler dispatch edilmez.
func (d *Dispatcher) DispatchAsync(event Event) {
	// Shutdown kontrolü
	select {
	case <-d.ctx.Done():
		d.logger.Printf("⚠️  Dispatcher is shutting down, async event '%s' ignored", event.Name())
		return
	default:
	}

	// Kabul edilen event her durumda işlenir: Shutdown, wg üzerinden bu
	// goroutine'in bitmesini bekler. Yeni kabul yukarıdaki kontrolle kapanır.
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		if err := d.Dispatch(event); err != nil {
			d.logger.Printf("❌ Async dispatch error for '%s': %v", event.Name(), err)
		}
	}()
}

// Forget, belirtilen event için tüm listener'ları kaldırır.
//
// Parametre:
//   - eventName: Temizlenecek event adı
//
// Örnek:
//
//	dispatcher.Forget(events.EventBatchInserted)
func (d *Dispatcher) Forget(eventName string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.listeners, eventName)
	d.logger.Printf("🗑️  All listeners removed for event: %s", eventName)
}

// GetListeners, belirtilen event'in listener sayısını döndürür.
//
// Parametre:
//   - eventName: Event adı
//
// Döndürür:
//   - int: Listener sayısı
//
// Örnek:
//
//	count := dispatcher.GetListeners(events.EventBatchInserted)
//	fmt.Printf("Listener count: %d\n", count)
func (d *Dispatcher) GetListeners(eventName string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.listeners[eventName])
}

// HasListeners, belirtilen event için listener olup olmadığını kontrol eder.
//
// Parametre:
//   - eventName: Event adı
//
// Döndürür:
//   - bool: Listener varsa true
func (d *Dispatcher) HasListeners(eventName string) bool {
	return d.GetListeners(eventName) > 0
}

// DispatchMultiple, birden fazla event'i sırayla dispatch eder.
//
// Parametreler:
//   - events: Dispatch edilecek event'ler
//
// Döndürür:
//   - []error: Her event için hata listesi (nil ise başarılı)
//
// Örnek:
//
//	batch := []events.Event{
//	    events.NewBatchInsertedEvent(change),
//	    events.NewCacheClearedEvent(nil),
//	}
//	errors := dispatcher.DispatchMultiple(batch)
func (d *Dispatcher) DispatchMultiple(events []Event) []error {
	errors := make([]error, len(events))

	for i, event := range events {
		errors[i] = d.Dispatch(event)
	}

	return errors
}

// -----------------------------------------------------------------------------
// Utility Functions
// -----------------------------------------------------------------------------

// Subscribe, bir listener'ı birden fazla event'e aynı anda kaydeder.
//
// Parametreler:
//   - events: Event adları listesi
//   - listener: Kayıt edilecek listener
//
// Örnek:
//
//	// Aynı listener'ı birden fazla event'e kaydet
//	dispatcher.Subscribe(
//	    []string{events.EventBatchInserted, events.EventBatchUpdated, events.EventBatchDeleted},
//	    &AuditBatchListener{},
//	)
func (d *Dispatcher) Subscribe(eventNames []string, listener Listener) {
	for _, eventName := range eventNames {
		d.Listen(eventName, listener)
	}
}

// Clear, tüm listener'ları temizler.
//
// Test amaçlı kullanılır, production'da dikkatli kullanın!
//
// Örnek:
//
//	dispatcher.Clear() // Tüm listener'ları sil
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners = make(map[string][]Listener)
	d.logger.Println("🗑️  All event listeners cleared")
}

// Stats, dispatcher istatistiklerini döndürür.
//
// Döndürür:
//   - map[string]int: Event adı -> Listener sayısı
//
// Örnek:
//
//	stats := dispatcher.Stats()
//	for event, count := range stats {
//	    fmt.Printf("%s: %d listeners\n", event, count)
//	}
func (d *Dispatcher) Stats() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := make(map[string]int)
	for event, listeners := range d.listeners {
		stats[event] = len(listeners)
	}

	return stats
}

// PrintStats, dispatcher istatistiklerini konsola yazdırır.
func (d *Dispatcher) PrintStats() {
	stats := d.Stats()
	separator := strings.Repeat("=", 70)

	d.logger.Println("\n" + separator)
	d.logger.Println("📊 Event Dispatcher Stats")
	d.logger.Println(separator)

	totalListeners := 0
	for event, count := range stats {
		d.logger.Printf("  %s: %d listener(s)", event, count)
		totalListeners += count
	}

	d.logger.Printf("\nTotal Events: %d", len(stats))
	d.logger.Printf("Total Listeners: %d", totalListeners)
	d.logger.Println(separator)
}

// Shutdown, dispatcher'ı güvenli bir şekilde kapatır.
//
// Tüm bekleyen async event'lerin tamamlanmasını bekler.
// Bu metod, uygulama kapanırken çağrılmalıdır.
//
// GÜVENLİK KRİTİK:
// Shutdown çağrıldıktan sonra yeni async event'ler kabul edilmez.
// Bu sayede goroutine leak'i önlenir.
//
// Örnek:
//
//	dispatcher := events.NewDispatcher(logger)
//	defer dispatcher.Shutdown()
//
//	// Event'leri dispatch et
//	dispatcher.DispatchAsync(event1)
//	dispatcher.DispatchAsync(event2)
//
//	// Shutdown tüm pending event'lerin bitmesini bekler
func (d *Dispatcher) Shutdown() {
	d.logger.Println("🔄 Shutting down event dispatcher...")

	// Yeni async event'leri engelle
	d.cancel()

	// Bekleyen tüm async event'lerin tamamlanmasını bekle
	d.wg.Wait()

	d.logger.Println("✅ Event dispatcher shutdown complete")
}

// ShutdownWithTimeout, belirtilen süre içinde dispatcher'ı kapatmaya çalışır.
//
// Timeout süresince bekleyen event'lerin tamamlanmasını bekler.
// Timeout aşılırsa, bekleyen event'ler iptal edilir.
//
// Parametre:
//   - timeout: Maksimum bekleme süresi
//
// Döndürür:
//   - error: Timeout aşılırsa hata döner
//
// Örnek:
//
//	err := dispatcher.ShutdownWithTimeout(5 * time.Second)
//	if err != nil {
//	    log.Println("Timeout: some events may not have completed")
//	}
func (d *Dispatcher) ShutdownWithTimeout(timeout time.Duration) error {
	d.logger.Printf("🔄 Shutting down event dispatcher (timeout: %v)...", timeout)

	// Yeni async event'leri engelle
	d.cancel()

	// Timeout ile bekle
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Println("✅ Event dispatcher shutdown complete")
		return nil
	case <-time.After(timeout):
		d.logger.Println("⚠️  Event dispatcher shutdown timeout - some events may not have completed")
		return fmt.Errorf("shutdown timeout exceeded")
	}
}
