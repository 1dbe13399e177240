// pkg/database/transaction.go
//
// Bu dosya, bir isteğin transaction kapsamını (transaction scope) yönetir.
//
// Bir transaction; ACID prensiplerine uygun olarak bir grup veritabanı
// işleminin tamamının *ya tamamen başarılı olmasını* ya da *hiçbirinin
// uygulanmamış kabul edilmesini* sağlar. Kategoriler ve ürünler gibi iki
// tablonun birlikte değiştiği batch mutasyonlarda veri bütünlüğü için
// hayati önem taşır.
//
// Transaction yapısı, Go'nun sql.Tx tipine bir sarmalayıcıdır. WithTransaction
// ise kapsamın tamamını üstlenir: fn hata dönerse rollback, dönmezse commit
// yapılır ve her çıkış yolunda transaction serbest bırakılır.
//
// Örnek kullanım:
//
//	err := WithTransaction(db, grammar, func(tx *Transaction) error {
//	    qb := tx.NewBuilder()
//	    _, err := qb.Table("products").ExecBulkInsert(cols, rows)
//	    return err
//	})

package database

import (
	"database/sql"
	"log"
)

// Transaction
//
// Veritabanı transaction yapısını temsil eder.
// sql.Tx nesnesini saklar ve commit/rollback operasyonlarını
// daha okunabilir bir API ile gerçekleştirir.
type Transaction struct {
	Tx      *sql.Tx
	grammar Grammar
}

// BeginTransaction
//
// Yeni bir veritabanı transaction'ı başlatır.
// Dönen Transaction yapısı mutlaka `Commit()` veya `Rollback()`
// ile sonlandırılmalıdır.
func BeginTransaction(db *sql.DB, grammar Grammar) (*Transaction, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	log.Println("🔄 Transaction başladı.")
	return &Transaction{Tx: tx, grammar: grammar}, nil
}

// NewBuilder, transaction'a bağlı yeni bir QueryBuilder oluşturur.
func (t *Transaction) NewBuilder() *QueryBuilder {
	return NewBuilder(t.Tx, t.grammar)
}

// Commit, başlatılmış olan transaction'ı başarılı şekilde sonlandırır.
func (t *Transaction) Commit() error {
	err := t.Tx.Commit()
	if err == nil {
		log.Println("✅ Transaction commit edildi.")
	}
	return err
}

// Rollback, transaction sırasında bir hata oluştuğunda çağrılır.
// Yapılmış tüm değişiklikler geri alınır.
func (t *Transaction) Rollback() error {
	err := t.Tx.Rollback()
	if err == nil {
		log.Println("❌ Transaction geri alındı.")
	}
	return err
}

// WithTransaction, fn'i tek bir transaction kapsamında çalıştırır.
//
// Garanti edilen davranış:
//   - fn nil dönerse commit edilir; commit hatası çağırana döner.
//   - fn hata dönerse rollback yapılır ve fn'in hatası (sınıfı korunarak)
//     aynen döner; rollback hatası sadece loglanır.
//   - fn panic atarsa rollback yapılır ve panic yeniden fırlatılır; üstteki
//     recovery middleware'i yakalar.
//
// Böylece transaction her çıkış yolunda serbest bırakılmış olur.
func WithTransaction(db *sql.DB, grammar Grammar, fn func(tx *Transaction) error) error {
	tx, err := BeginTransaction(db, grammar)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("⚠️  Rollback hatası (panic sonrası): %v", rbErr)
			}
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("⚠️  Rollback hatası: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
