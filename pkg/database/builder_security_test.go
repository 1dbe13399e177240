package database

import (
	"testing"
)

// -----------------------------------------------------------------------------
// SQL INJECTION GÜVENLİK TESTLERİ
// -----------------------------------------------------------------------------
// Bu testler, SQL injection saldırılarına karşı korumanın çalıştığını doğrular.
// Her test case bir exploit senaryosunu simüle eder. Builder API'si sabit
// string'lerle çağrıldığı için geçersiz identifier programlama hatasıdır ve
// panic atar.
// -----------------------------------------------------------------------------

// TestSQLInjection_OrderBy_MaliciousColumn tests SQL injection prevention in OrderBy
func TestSQLInjection_OrderBy_MaliciousColumn(t *testing.T) {
	grammar := NewMySQLGrammar()

	maliciousInputs := []struct {
		name   string
		column string
	}{
		{
			name:   "DROP TABLE attack",
			column: "id; DROP TABLE products--",
		},
		{
			name:   "OR injection",
			column: "id' OR '1'='1",
		},
		{
			name:   "UNION attack",
			column: "id UNION SELECT * FROM passwords--",
		},
		{
			name:   "Comment injection",
			column: "id--",
		},
		{
			name:   "Semicolon injection",
			column: "id; UPDATE products SET price=0",
		},
		{
			name:   "Quote injection",
			column: "id'",
		},
		{
			name:   "Backtick injection",
			column: "id`",
		},
	}

	for _, tc := range maliciousInputs {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for malicious input '%s', but no panic occurred", tc.column)
				}
			}()

			// Bu çağrı panic atmalı
			NewBuilder(nil, grammar).Table("products").OrderBy(tc.column, "DESC")
		})
	}
}

// TestSQLInjection_Where_MaliciousColumn tests SQL injection prevention in Where
func TestSQLInjection_Where_MaliciousColumn(t *testing.T) {
	grammar := NewMySQLGrammar()

	maliciousInputs := []string{
		"id; DROP TABLE products--",
		"id' OR '1'='1",
		"id/**/OR/**/1=1",
		"id'; DELETE FROM products WHERE '1'='1",
	}

	for _, column := range maliciousInputs {
		t.Run(column, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for malicious input '%s', but no panic occurred", column)
				}
			}()

			NewBuilder(nil, grammar).Table("products").Where(column, "=", 1)
		})
	}
}

// TestSQLInjection_Table_MaliciousName tests SQL injection prevention in Table
func TestSQLInjection_Table_MaliciousName(t *testing.T) {
	grammar := NewMySQLGrammar()

	maliciousInputs := []string{
		"products; DROP TABLE categories--",
		"products' OR '1'='1",
		"products/**/UNION/**/SELECT",
	}

	for _, table := range maliciousInputs {
		t.Run(table, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for malicious input '%s', but no panic occurred", table)
				}
			}()

			NewBuilder(nil, grammar).Table(table)
		})
	}
}

// TestSQLInjection_Select_MaliciousColumn tests SQL injection prevention in Select
func TestSQLInjection_Select_MaliciousColumn(t *testing.T) {
	grammar := NewMySQLGrammar()

	maliciousInputs := []string{
		"id; DROP TABLE products--",
		"id, (SELECT password FROM admin)",
		"*; DELETE FROM products--",
		"name AS x; DROP TABLE products--",
	}

	for _, column := range maliciousInputs {
		t.Run(column, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for malicious input '%s', but no panic occurred", column)
				}
			}()

			NewBuilder(nil, grammar).Table("products").Select(column)
		})
	}
}

// TestSQLInjection_BulkInsert_MaliciousColumn tests column validation in ExecBulkInsert
func TestSQLInjection_BulkInsert_MaliciousColumn(t *testing.T) {
	grammar := NewMySQLGrammar()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for malicious column name in bulk insert, but no panic occurred")
		}
	}()

	NewBuilder(nil, grammar).Table("products").ExecBulkInsert(
		[]string{"name; DROP TABLE products--"},
		[][]interface{}{{"x"}},
	)
}

// TestSQLInjection_BulkUpdate_MaliciousKey tests key validation in ExecBulkUpdate
func TestSQLInjection_BulkUpdate_MaliciousKey(t *testing.T) {
	grammar := NewMySQLGrammar()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for malicious key name in bulk update, but no panic occurred")
		}
	}()

	NewBuilder(nil, grammar).Table("products").ExecBulkUpdate(
		"id' OR '1'='1",
		[]string{"name"},
		[][]interface{}{{int64(1), "x"}},
	)
}

// TestValidIdentifiers tests that legitimate identifiers are accepted
func TestValidIdentifiers(t *testing.T) {
	grammar := NewMySQLGrammar()

	validCases := []struct {
		name   string
		method func()
	}{
		{
			name: "Simple column",
			method: func() {
				NewBuilder(nil, grammar).Table("products").OrderBy("id", "DESC")
			},
		},
		{
			name: "Underscore column",
			method: func() {
				NewBuilder(nil, grammar).Table("products").OrderBy("category_id", "ASC")
			},
		},
		{
			name: "Table.column format",
			method: func() {
				NewBuilder(nil, grammar).Table("products").OrderBy("products.price", "DESC")
			},
		},
		{
			name: "Numeric in name",
			method: func() {
				NewBuilder(nil, grammar).Table("table123").OrderBy("column2", "ASC")
			},
		},
		{
			name: "Wildcard select",
			method: func() {
				NewBuilder(nil, grammar).Table("products").Select("*")
			},
		},
		{
			name: "Column with AS alias",
			method: func() {
				NewBuilder(nil, grammar).Table("products").Select("categories.name AS category_name")
			},
		},
		{
			name: "Multiple columns",
			method: func() {
				NewBuilder(nil, grammar).Table("products").Select("id", "name", "price")
			},
		},
	}

	for _, tc := range validCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Valid identifier caused panic: %v", r)
				}
			}()

			tc.method()
		})
	}
}

// TestEmptyIdentifiers tests that empty identifiers are rejected
func TestEmptyIdentifiers(t *testing.T) {
	grammar := NewMySQLGrammar()

	testCases := []struct {
		name   string
		method func()
	}{
		{
			name: "Empty table name",
			method: func() {
				NewBuilder(nil, grammar).Table("")
			},
		},
		{
			name: "Empty column in Where",
			method: func() {
				NewBuilder(nil, grammar).Table("products").Where("", "=", 1)
			},
		},
		{
			name: "Empty column in OrderBy",
			method: func() {
				NewBuilder(nil, grammar).Table("products").OrderBy("", "ASC")
			},
		},
		{
			name: "Whitespace only table",
			method: func() {
				NewBuilder(nil, grammar).Table("   ")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic for empty identifier, but no panic occurred")
				}
			}()

			tc.method()
		})
	}
}

// TestMultipleDots tests that multiple dots in identifiers are rejected
func TestMultipleDots(t *testing.T) {
	grammar := NewMySQLGrammar()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for identifier with multiple dots")
		}
	}()

	NewBuilder(nil, grammar).Table("products").OrderBy("schema.table.column", "ASC")
}

// TestOrderByDirection_Whitelist tests that invalid directions fall back to ASC
func TestOrderByDirection_Whitelist(t *testing.T) {
	grammar := NewMySQLGrammar()

	qb := NewBuilder(nil, grammar).
		Table("products").
		Select("id").
		OrderBy("id", "DESC; DROP TABLE products--")

	sql, _, err := qb.ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "SELECT `id` FROM `products` ORDER BY `id` ASC"
	if sql != expected {
		t.Errorf("SQL mismatch:\n got: %s\nwant: %s", sql, expected)
	}
}

// BenchmarkValidation_OrderBy benchmarks the validation overhead
func BenchmarkValidation_OrderBy(b *testing.B) {
	grammar := NewMySQLGrammar()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewBuilder(nil, grammar).Table("products").OrderBy("price", "DESC")
	}
}

// BenchmarkValidation_Where benchmarks the validation overhead
func BenchmarkValidation_Where(b *testing.B) {
	grammar := NewMySQLGrammar()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewBuilder(nil, grammar).Table("products").Where("price", ">", 10)
	}
}
