// -----------------------------------------------------------------------------
// MySQL Grammar for Migration System
// -----------------------------------------------------------------------------
// Bu dosya, MySQL database için şema SQL'lerini oluşturur.
// -----------------------------------------------------------------------------

package migration

import (
	"fmt"
	"strings"
)

// MySQLGrammar implements Grammar interface for MySQL.
type MySQLGrammar struct{}

// NewMySQLGrammar creates a new MySQLGrammar instance.
func NewMySQLGrammar() *MySQLGrammar {
	return &MySQLGrammar{}
}

// CompileCreateTable generates CREATE TABLE SQL.
func (g *MySQLGrammar) CompileCreateTable(table string, columns []*Column, indexes []Index, foreignKeys []*ForeignKey) string {
	defs := make([]string, 0, len(columns)+len(indexes)+len(foreignKeys))

	for _, column := range columns {
		defs = append(defs, g.compileColumn(column))
	}
	for _, index := range indexes {
		defs = append(defs, g.compileIndex(index))
	}
	for _, fk := range foreignKeys {
		defs = append(defs, g.compileForeignKey(fk))
	}

	return fmt.Sprintf(
		"CREATE TABLE `%s` (\n  %s\n) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci",
		table,
		strings.Join(defs, ",\n  "),
	)
}

// CompileDropTable generates DROP TABLE SQL.
func (g *MySQLGrammar) CompileDropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)
}

// CompileAddColumn generates ALTER TABLE ADD COLUMN SQL.
func (g *MySQLGrammar) CompileAddColumn(table string, column *Column) string {
	return fmt.Sprintf("ALTER TABLE `%s` ADD COLUMN %s", table, g.compileColumn(column))
}

// CompileDropColumn generates ALTER TABLE DROP COLUMN SQL.
func (g *MySQLGrammar) CompileDropColumn(table string, columnName string) string {
	return fmt.Sprintf("ALTER TABLE `%s` DROP COLUMN `%s`", table, columnName)
}

// CompileAddIndex generates ALTER TABLE ADD INDEX SQL.
func (g *MySQLGrammar) CompileAddIndex(table string, index Index) string {
	return fmt.Sprintf("ALTER TABLE `%s` ADD %s", table, g.compileIndex(index))
}

// CompileDropIndex generates ALTER TABLE DROP INDEX SQL.
func (g *MySQLGrammar) CompileDropIndex(table string, indexName string) string {
	return fmt.Sprintf("ALTER TABLE `%s` DROP INDEX `%s`", table, indexName)
}

// compileColumn compiles a single column definition.
func (g *MySQLGrammar) compileColumn(column *Column) string {
	var parts []string

	// Column name
	parts = append(parts, fmt.Sprintf("`%s`", column.name))

	// Type with length / precision
	switch {
	case column.colType == ColumnTypeString && column.length > 0:
		parts = append(parts, fmt.Sprintf("%s(%d)", column.colType, column.length))
	case column.colType == ColumnTypeDecimal && column.precision > 0:
		parts = append(parts, fmt.Sprintf("%s(%d,%d)", column.colType, column.precision, column.scale))
	default:
		parts = append(parts, string(column.colType))
	}

	// Unsigned
	if column.unsigned {
		parts = append(parts, "UNSIGNED")
	}

	// Nullable
	if !column.nullable {
		parts = append(parts, "NOT NULL")
	} else {
		parts = append(parts, "NULL")
	}

	// Auto increment
	if column.autoIncrement {
		parts = append(parts, "AUTO_INCREMENT")
	}

	// Default value
	if column.hasDefault {
		if str, ok := column.defaultValue.(string); ok {
			parts = append(parts, fmt.Sprintf("DEFAULT '%s'", str))
		} else {
			parts = append(parts, fmt.Sprintf("DEFAULT %v", column.defaultValue))
		}
	}

	// Primary key
	if column.primary {
		parts = append(parts, "PRIMARY KEY")
	}

	// Unique constraint
	if column.unique {
		parts = append(parts, "UNIQUE")
	}

	return strings.Join(parts, " ")
}

// compileIndex compiles an index definition.
func (g *MySQLGrammar) compileIndex(index Index) string {
	columns := make([]string, len(index.Columns))
	for i, col := range index.Columns {
		columns[i] = fmt.Sprintf("`%s`", col)
	}

	switch index.Type {
	case IndexTypePrimary:
		return fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(columns, ", "))
	case IndexTypeUnique:
		return fmt.Sprintf("UNIQUE KEY `%s` (%s)", index.Name, strings.Join(columns, ", "))
	default:
		return fmt.Sprintf("INDEX `%s` (%s)", index.Name, strings.Join(columns, ", "))
	}
}

// compileForeignKey compiles a foreign key constraint.
func (g *MySQLGrammar) compileForeignKey(fk *ForeignKey) string {
	constraint := fmt.Sprintf(
		"CONSTRAINT `%s_%s_foreign` FOREIGN KEY (`%s`) REFERENCES `%s` (`%s`)",
		fk.table, fk.column, fk.column, fk.referencedTable, fk.referencedColumn,
	)

	if fk.onDelete != "" {
		constraint += " ON DELETE " + fk.onDelete
	}
	if fk.onUpdate != "" {
		constraint += " ON UPDATE " + fk.onUpdate
	}

	return constraint
}
