package migration

import (
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestCompileCreateTable_WithForeignKey tests the generated schema SQL
func TestCompileCreateTable_WithForeignKey(t *testing.T) {
	grammar := NewMySQLGrammar()

	blueprint := NewBlueprint("products")
	blueprint.ID()
	blueprint.String("name", 255)
	blueprint.BigInteger("category_id").Unsigned()
	blueprint.Decimal("price", 10, 2)
	blueprint.Index("category_id")
	blueprint.Foreign("category_id").References("id").On("categories").OnDelete("RESTRICT")

	got := grammar.CompileCreateTable(
		blueprint.table,
		blueprint.columns,
		blueprint.indexes,
		blueprint.foreignKeys,
	)

	expected := "CREATE TABLE `products` (\n" +
		"  `id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,\n" +
		"  `name` VARCHAR(255) NOT NULL,\n" +
		"  `category_id` BIGINT UNSIGNED NOT NULL,\n" +
		"  `price` DECIMAL(10,2) NOT NULL,\n" +
		"  INDEX `products_category_id_index` (`category_id`),\n" +
		"  CONSTRAINT `products_category_id_foreign` FOREIGN KEY (`category_id`) REFERENCES `categories` (`id`) ON DELETE RESTRICT\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci"

	if got != expected {
		t.Errorf("SQL mismatch:\n got: %s\nwant: %s", got, expected)
	}
}

// TestCompileColumn_Modifiers tests nullable, default and unique modifiers
func TestCompileColumn_Modifiers(t *testing.T) {
	grammar := NewMySQLGrammar()

	cases := []struct {
		name     string
		column   *Column
		expected string
	}{
		{
			name:     "nullable text",
			column:   NewBlueprint("t").Text("description").Nullable(),
			expected: "`description` TEXT NULL",
		},
		{
			name:     "string default",
			column:   NewBlueprint("t").String("status", 32).Default("active"),
			expected: "`status` VARCHAR(32) NOT NULL DEFAULT 'active'",
		},
		{
			name:     "numeric default",
			column:   NewBlueprint("t").Integer("stock").Default(0),
			expected: "`stock` INT NOT NULL DEFAULT 0",
		},
		{
			name:     "unique string",
			column:   NewBlueprint("t").String("slug", 255).Unique(),
			expected: "`slug` VARCHAR(255) NOT NULL UNIQUE",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grammar.compileColumn(tc.column); got != tc.expected {
				t.Errorf("compileColumn = %q, want %q", got, tc.expected)
			}
		})
	}
}

// fakeMigration, runner testleri için basit migration.
type fakeMigration struct {
	name    string
	upRan   int
	downRan int
	upErr   error
}

func (f *fakeMigration) Name() string { return f.name }

func (f *fakeMigration) Up(m *Migrator) error {
	f.upRan++
	return f.upErr
}

func (f *fakeMigration) Down(m *Migrator) error {
	f.downRan++
	return nil
}

func newMockMigrator(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewMigrator(db, NewMySQLGrammar(), log.New(io.Discard, "", 0)), mock
}

const hasTableSQL = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"

// TestMigrator_Run tests that pending migrations run and get recorded in one batch
func TestMigrator_Run(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	first := &fakeMigration{name: "000001_first"}
	second := &fakeMigration{name: "000002_second"}

	// migrations tablosu zaten var
	mock.ExpectQuery(hasTableSQL).
		WithArgs("migrations").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// first daha önce çalışmış
	mock.ExpectQuery("SELECT migration FROM migrations ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"migration"}).AddRow("000001_first"))

	mock.ExpectQuery("SELECT MAX(batch) FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(3))

	// Sadece second çalışmalı ve batch 4'e kaydedilmeli
	mock.ExpectExec("INSERT INTO migrations (migration, batch) VALUES (?, ?)").
		WithArgs("000002_second", 4).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := migrator.Run([]Migration{first, second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.upRan != 0 {
		t.Errorf("expected first migration to be skipped, ran %d time(s)", first.upRan)
	}
	if second.upRan != 1 {
		t.Errorf("expected second migration to run once, ran %d time(s)", second.upRan)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestMigrator_Run_FailureStops tests that a failing migration halts the run
func TestMigrator_Run_FailureStops(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	broken := &fakeMigration{name: "000001_broken", upErr: fmt.Errorf("syntax error")}
	next := &fakeMigration{name: "000002_next"}

	mock.ExpectQuery(hasTableSQL).
		WithArgs("migrations").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT migration FROM migrations ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"migration"}))
	mock.ExpectQuery("SELECT MAX(batch) FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	err := migrator.Run([]Migration{broken, next})
	if err == nil {
		t.Fatal("expected error from broken migration, got nil")
	}

	if next.upRan != 0 {
		t.Errorf("expected next migration to be skipped after failure, ran %d time(s)", next.upRan)
	}
}

// TestMigrator_Rollback tests that the last batch rolls back in reverse order
func TestMigrator_Rollback(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	first := &fakeMigration{name: "000001_first"}
	second := &fakeMigration{name: "000002_second"}

	mock.ExpectQuery("SELECT MAX(batch) FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(2))
	mock.ExpectQuery("SELECT migration FROM migrations WHERE batch = ? ORDER BY id ASC").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"migration"}).
			AddRow("000001_first").
			AddRow("000002_second"))

	// Ters sırada: önce second, sonra first silinir
	mock.ExpectExec("DELETE FROM migrations WHERE migration = ?").
		WithArgs("000002_second").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM migrations WHERE migration = ?").
		WithArgs("000001_first").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := migrator.Rollback([]Migration{first, second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.downRan != 1 || second.downRan != 1 {
		t.Errorf("expected both migrations rolled back once, got first=%d second=%d", first.downRan, second.downRan)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestMigrator_Rollback_NothingToDo tests rollback with an empty migrations table
func TestMigrator_Rollback_NothingToDo(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	mock.ExpectQuery("SELECT MAX(batch) FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	if err := migrator.Rollback(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
