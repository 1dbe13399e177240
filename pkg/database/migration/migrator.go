// -----------------------------------------------------------------------------
// Database Migration System - Laravel-Inspired
// -----------------------------------------------------------------------------
// Bu package, Laravel'in migration system'ine benzer şekilde veritabanı
// şema değişikliklerini yönetir.
//
// Özellikler:
// - Schema builder (CreateTable, AlterTable, DropTable)
// - Column types (String, Integer, Decimal, Timestamps, etc.)
// - Indexes (primary, unique, index, foreign keys)
// - Migration tracking (migrations table)
// - Rollback support (batch bazlı)
//
// Kullanım:
//
//	func (m *CreateCategoriesTable) Up(migrator *migration.Migrator) error {
//	    return migrator.CreateTable("categories", func(t *migration.Blueprint) {
//	        t.ID()
//	        t.String("name", 255)
//	        t.Text("description")
//	    })
//	}
//
//	func (m *CreateCategoriesTable) Down(migrator *migration.Migrator) error {
//	    return migrator.DropTable("categories")
//	}
// -----------------------------------------------------------------------------

package migration

import (
	"database/sql"
	"fmt"
	"strings"
)

// Logger, log interface'i (dependency injection için).
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Migration, tek bir şema değişikliğini temsil eder.
//
// Name benzersiz olmalıdır; migrations tablosunda bu isimle takip edilir.
// İsimlendirme convention'ı: "000001_create_categories_table" gibi sıralanabilir
// bir prefix kullanın.
type Migration interface {
	Name() string
	Up(m *Migrator) error
	Down(m *Migrator) error
}

// Migrator manages database migrations.
type Migrator struct {
	db      *sql.DB
	grammar Grammar // SQL dialect (MySQL, PostgreSQL, etc.)
	logger  Logger
}

// Grammar defines SQL generation interface for different databases.
type Grammar interface {
	CompileCreateTable(table string, columns []*Column, indexes []Index, foreignKeys []*ForeignKey) string
	CompileDropTable(table string) string
	CompileAddColumn(table string, column *Column) string
	CompileDropColumn(table string, columnName string) string
	CompileAddIndex(table string, index Index) string
	CompileDropIndex(table string, indexName string) string
}

// NewMigrator creates a new Migrator instance.
func NewMigrator(db *sql.DB, grammar Grammar, logger Logger) *Migrator {
	return &Migrator{
		db:      db,
		grammar: grammar,
		logger:  logger,
	}
}

// Run, verilen migration'lardan daha önce çalışmamış olanları sırayla çalıştırır.
//
// Tüm yeni migration'lar aynı batch numarasıyla kaydedilir; Rollback bu batch'i
// tek seferde geri alır.
func (m *Migrator) Run(migrations []Migration) error {
	if err := m.CreateMigrationsTable(); err != nil {
		return err
	}

	ran, err := m.GetRanMigrations()
	if err != nil {
		return err
	}

	ranSet := make(map[string]bool, len(ran))
	for _, name := range ran {
		ranSet[name] = true
	}

	lastBatch, err := m.GetLastBatch()
	if err != nil {
		return err
	}
	batch := lastBatch + 1

	executed := 0
	for _, mig := range migrations {
		if ranSet[mig.Name()] {
			continue
		}

		m.logger.Printf("🔄 Migrating: %s", mig.Name())

		if err := mig.Up(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", mig.Name(), err)
		}
		if err := m.RecordMigration(mig.Name(), batch); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", mig.Name(), err)
		}

		executed++
	}

	if executed == 0 {
		m.logger.Println("✅ Nothing to migrate")
	} else {
		m.logger.Printf("✅ Ran %d migration(s) in batch %d", executed, batch)
	}

	return nil
}

// Rollback, son batch'teki migration'ları ters sırayla geri alır.
func (m *Migrator) Rollback(migrations []Migration) error {
	lastBatch, err := m.GetLastBatch()
	if err != nil {
		return err
	}
	if lastBatch == 0 {
		m.logger.Println("✅ Nothing to rollback")
		return nil
	}

	names, err := m.GetMigrationsForBatch(lastBatch)
	if err != nil {
		return err
	}

	byName := make(map[string]Migration, len(migrations))
	for _, mig := range migrations {
		byName[mig.Name()] = mig
	}

	// Batch içindeki migration'lar çalıştırılma sırasının tersine alınır
	for i := len(names) - 1; i >= 0; i-- {
		mig, ok := byName[names[i]]
		if !ok {
			return fmt.Errorf("migration %s is recorded but not registered", names[i])
		}

		m.logger.Printf("🔄 Rolling back: %s", mig.Name())

		if err := mig.Down(m); err != nil {
			return fmt.Errorf("rollback of %s failed: %w", mig.Name(), err)
		}
		if err := m.DeleteMigration(mig.Name()); err != nil {
			return err
		}
	}

	m.logger.Printf("✅ Rolled back batch %d (%d migration(s))", lastBatch, len(names))
	return nil
}

// CreateTable creates a new table.
func (m *Migrator) CreateTable(tableName string, callback func(*Blueprint)) error {
	blueprint := NewBlueprint(tableName)
	callback(blueprint)

	query := m.grammar.CompileCreateTable(
		blueprint.table,
		blueprint.columns,
		blueprint.indexes,
		blueprint.foreignKeys,
	)

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	m.logger.Printf("✅ Created table: %s", tableName)
	return nil
}

// DropTable drops a table.
func (m *Migrator) DropTable(tableName string) error {
	query := m.grammar.CompileDropTable(tableName)

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	m.logger.Printf("✅ Dropped table: %s", tableName)
	return nil
}

// AlterTable modifies an existing table.
func (m *Migrator) AlterTable(tableName string, callback func(*Blueprint)) error {
	blueprint := NewBlueprint(tableName)
	callback(blueprint)

	// Execute column additions
	for _, column := range blueprint.columns {
		query := m.grammar.CompileAddColumn(tableName, column)
		if _, err := m.db.Exec(query); err != nil {
			return fmt.Errorf("failed to add column %s: %w", column.name, err)
		}
	}

	// Execute index additions
	for _, index := range blueprint.indexes {
		query := m.grammar.CompileAddIndex(tableName, index)
		if _, err := m.db.Exec(query); err != nil {
			return fmt.Errorf("failed to add index: %w", err)
		}
	}

	m.logger.Printf("✅ Altered table: %s", tableName)
	return nil
}

// HasTable checks if a table exists.
func (m *Migrator) HasTable(tableName string) (bool, error) {
	// MySQL specific query
	query := "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"

	var count int
	if err := m.db.QueryRow(query, tableName).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateMigrationsTable creates the migrations tracking table.
func (m *Migrator) CreateMigrationsTable() error {
	exists, err := m.HasTable("migrations")
	if err != nil {
		return err
	}

	if exists {
		return nil // Already exists
	}

	query := `
		CREATE TABLE migrations (
			id INT AUTO_INCREMENT PRIMARY KEY,
			migration VARCHAR(255) NOT NULL,
			batch INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci
	`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	m.logger.Println("✅ Created migrations table")
	return nil
}

// RecordMigration records a migration as run.
func (m *Migrator) RecordMigration(name string, batch int) error {
	_, err := m.db.Exec("INSERT INTO migrations (migration, batch) VALUES (?, ?)", name, batch)
	return err
}

// DeleteMigration removes a migration record.
func (m *Migrator) DeleteMigration(name string) error {
	_, err := m.db.Exec("DELETE FROM migrations WHERE migration = ?", name)
	return err
}

// GetRanMigrations returns all migrations that have been run.
func (m *Migrator) GetRanMigrations() ([]string, error) {
	rows, err := m.db.Query("SELECT migration FROM migrations ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var migrations []string
	for rows.Next() {
		var migration string
		if err := rows.Scan(&migration); err != nil {
			return nil, err
		}
		migrations = append(migrations, migration)
	}

	return migrations, rows.Err()
}

// GetMigrationsForBatch returns migration names recorded in the given batch.
func (m *Migrator) GetMigrationsForBatch(batch int) ([]string, error) {
	rows, err := m.db.Query("SELECT migration FROM migrations WHERE batch = ? ORDER BY id ASC", batch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var migrations []string
	for rows.Next() {
		var migration string
		if err := rows.Scan(&migration); err != nil {
			return nil, err
		}
		migrations = append(migrations, migration)
	}

	return migrations, rows.Err()
}

// GetLastBatch returns the last batch number.
func (m *Migrator) GetLastBatch() (int, error) {
	var batch sql.NullInt64
	if err := m.db.QueryRow("SELECT MAX(batch) FROM migrations").Scan(&batch); err != nil {
		return 0, err
	}

	if batch.Valid {
		return int(batch.Int64), nil
	}

	return 0, nil
}

// -----------------------------------------------------------------------------
// Blueprint - Table Schema Builder
// -----------------------------------------------------------------------------

// Blueprint defines the structure of a table.
type Blueprint struct {
	table       string
	columns     []*Column
	indexes     []Index
	foreignKeys []*ForeignKey
}

// NewBlueprint creates a new Blueprint instance.
func NewBlueprint(tableName string) *Blueprint {
	return &Blueprint{
		table:       tableName,
		columns:     make([]*Column, 0),
		indexes:     make([]Index, 0),
		foreignKeys: make([]*ForeignKey, 0),
	}
}

// ID adds an auto-incrementing primary key column.
func (b *Blueprint) ID() *Column {
	return b.addColumn(&Column{
		name:          "id",
		colType:       ColumnTypeUnsignedBigInt,
		autoIncrement: true,
		primary:       true,
	})
}

// String adds a VARCHAR column.
func (b *Blueprint) String(name string, length int) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeString,
		length:  length,
	})
}

// Text adds a TEXT column.
func (b *Blueprint) Text(name string) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeText,
	})
}

// Integer adds an INT column.
func (b *Blueprint) Integer(name string) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeInteger,
	})
}

// BigInteger adds a BIGINT column.
func (b *Blueprint) BigInteger(name string) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeBigInt,
	})
}

// Decimal adds a DECIMAL(precision, scale) column.
func (b *Blueprint) Decimal(name string, precision, scale int) *Column {
	return b.addColumn(&Column{
		name:      name,
		colType:   ColumnTypeDecimal,
		precision: precision,
		scale:     scale,
	})
}

// Boolean adds a TINYINT(1) column.
func (b *Blueprint) Boolean(name string) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeBoolean,
	})
}

// Timestamp adds a TIMESTAMP column.
func (b *Blueprint) Timestamp(name string) *Column {
	return b.addColumn(&Column{
		name:    name,
		colType: ColumnTypeTimestamp,
	})
}

// Timestamps adds created_at and updated_at columns.
func (b *Blueprint) Timestamps() {
	b.Timestamp("created_at").Nullable()
	b.Timestamp("updated_at").Nullable()
}

// addColumn adds a column to the blueprint.
func (b *Blueprint) addColumn(column *Column) *Column {
	b.columns = append(b.columns, column)
	return column
}

// Unique adds a unique index.
func (b *Blueprint) Unique(columns ...string) {
	indexName := fmt.Sprintf("%s_%s_unique", b.table, strings.Join(columns, "_"))
	b.indexes = append(b.indexes, Index{
		Name:    indexName,
		Columns: columns,
		Type:    IndexTypeUnique,
	})
}

// Index adds a regular index.
func (b *Blueprint) Index(columns ...string) {
	indexName := fmt.Sprintf("%s_%s_index", b.table, strings.Join(columns, "_"))
	b.indexes = append(b.indexes, Index{
		Name:    indexName,
		Columns: columns,
		Type:    IndexTypeIndex,
	})
}

// Foreign adds a foreign key constraint.
//
// Örnek:
//
//	t.Foreign("category_id").References("id").On("categories").OnDelete("RESTRICT")
func (b *Blueprint) Foreign(column string) *ForeignKey {
	fk := &ForeignKey{
		table:  b.table,
		column: column,
	}
	b.foreignKeys = append(b.foreignKeys, fk)
	return fk
}

// -----------------------------------------------------------------------------
// Column Definition
// -----------------------------------------------------------------------------

// ColumnType represents a database column type.
type ColumnType string

const (
	ColumnTypeString         ColumnType = "VARCHAR"
	ColumnTypeText           ColumnType = "TEXT"
	ColumnTypeInteger        ColumnType = "INT"
	ColumnTypeBigInt         ColumnType = "BIGINT"
	ColumnTypeUnsignedBigInt ColumnType = "BIGINT UNSIGNED"
	ColumnTypeBoolean        ColumnType = "TINYINT(1)"
	ColumnTypeTimestamp      ColumnType = "TIMESTAMP"
	ColumnTypeDateTime       ColumnType = "DATETIME"
	ColumnTypeDate           ColumnType = "DATE"
	ColumnTypeDecimal        ColumnType = "DECIMAL"
)

// Column represents a table column. Alanlar chainable metodlarla ayarlanır.
type Column struct {
	name          string
	colType       ColumnType
	length        int
	precision     int
	scale         int
	nullable      bool
	defaultValue  interface{}
	hasDefault    bool
	unsigned      bool
	autoIncrement bool
	primary       bool
	unique        bool
}

// Nullable marks the column as nullable.
func (c *Column) Nullable() *Column {
	c.nullable = true
	return c
}

// Default sets a default value.
func (c *Column) Default(value interface{}) *Column {
	c.defaultValue = value
	c.hasDefault = true
	return c
}

// Unsigned marks the column as unsigned (for numeric types).
func (c *Column) Unsigned() *Column {
	c.unsigned = true
	return c
}

// Unique adds a unique constraint.
func (c *Column) Unique() *Column {
	c.unique = true
	return c
}

// -----------------------------------------------------------------------------
// Index Definition
// -----------------------------------------------------------------------------

// IndexType represents the type of index.
type IndexType string

const (
	IndexTypeIndex   IndexType = "INDEX"
	IndexTypeUnique  IndexType = "UNIQUE"
	IndexTypePrimary IndexType = "PRIMARY KEY"
)

// Index represents a table index.
type Index struct {
	Name    string
	Columns []string
	Type    IndexType
}

// ForeignKey represents a foreign key constraint.
type ForeignKey struct {
	table            string
	column           string
	referencedTable  string
	referencedColumn string
	onDelete         string
	onUpdate         string
}

// References sets the referenced column.
func (fk *ForeignKey) References(column string) *ForeignKey {
	fk.referencedColumn = column
	return fk
}

// On sets the referenced table.
func (fk *ForeignKey) On(table string) *ForeignKey {
	fk.referencedTable = table
	return fk
}

// OnDelete sets the ON DELETE action.
func (fk *ForeignKey) OnDelete(action string) *ForeignKey {
	fk.onDelete = action
	return fk
}

// OnUpdate sets the ON UPDATE action.
func (fk *ForeignKey) OnUpdate(action string) *ForeignKey {
	fk.onUpdate = action
	return fk
}

// Cascade sets both ON DELETE and ON UPDATE to CASCADE.
func (fk *ForeignKey) Cascade() *ForeignKey {
	fk.onDelete = "CASCADE"
	fk.onUpdate = "CASCADE"
	return fk
}
