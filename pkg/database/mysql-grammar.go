package database

import (
	"fmt"
	"regexp"
	"strings"
)

// -----------------------------------------------------------------------------
// MySQL Grammar
// -----------------------------------------------------------------------------
// MySQL/MariaDB lehçesi için sorgu üretimi. Identifier'lar kapalı bir regex
// whitelist'inden geçer ve backtick ile sarmalanır; operatörler sabit bir
// whitelist tablosundan doğrulanır. İstemciden gelen hiçbir metin SQL
// identifier/keyword pozisyonuna giremez, tüm değerler placeholder (?) ile
// bağlanır.
// -----------------------------------------------------------------------------

type MySQLGrammar struct{}

func NewMySQLGrammar() *MySQLGrammar {
	return &MySQLGrammar{}
}

var validIdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_\.]+$`)

var allowedOperators = map[string]bool{
	"=":           true,
	"!=":          true,
	"<>":          true,
	"<":           true,
	">":           true,
	"<=":          true,
	">=":          true,
	"LIKE":        true,
	"NOT LIKE":    true,
	"IN":          true,
	"NOT IN":      true,
	"BETWEEN":     true,
	"NOT BETWEEN": true,
	"IS":          true,
	"IS NOT":      true,
}

// Wrap, kolon ve tablo isimlerini MySQL backtick'leri ile sarmalar.
// Geçersiz identifier'lar panic yerine error üretir.
func (g *MySQLGrammar) Wrap(value string) (string, error) {
	// Wildcard için özel durum
	if value == "*" {
		return value, nil
	}

	// Tablo.kolon formatını handle et
	if strings.Contains(value, ".") {
		parts := strings.Split(value, ".")
		if len(parts) > 2 {
			return "", fmt.Errorf("invalid SQL identifier: %s (too many dots)", value)
		}
		wrappedParts := make([]string, len(parts))
		for i, part := range parts {
			// Her parçayı validate et
			if !validIdentifierPattern.MatchString(part) {
				return "", fmt.Errorf("invalid SQL identifier: %s (contains unsafe characters)", part)
			}
			wrappedParts[i] = fmt.Sprintf("`%s`", part)
		}
		return strings.Join(wrappedParts, "."), nil
	}

	// Tek identifier'ı validate et
	if !validIdentifierPattern.MatchString(value) {
		return "", fmt.Errorf("invalid SQL identifier: %s (contains unsafe characters)", value)
	}

	return fmt.Sprintf("`%s`", value), nil
}

// wrapColumn, "kolon" veya "kolon AS alias" biçimindeki select ifadelerini
// sarmalar. AS'in iki tarafı da ayrı ayrı whitelist kontrolünden geçer.
func (g *MySQLGrammar) wrapColumn(value string) (string, error) {
	lower := strings.ToLower(value)
	if idx := strings.Index(lower, " as "); idx >= 0 {
		column := strings.TrimSpace(value[:idx])
		alias := strings.TrimSpace(value[idx+4:])

		wrappedCol, err := g.Wrap(column)
		if err != nil {
			return "", err
		}
		wrappedAlias, err := g.Wrap(alias)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s AS %s", wrappedCol, wrappedAlias), nil
	}
	return g.Wrap(value)
}

// validateOperator, verilen operatörün whitelist'te olup olmadığını kontrol eder.
func (g *MySQLGrammar) validateOperator(operator string) error {
	op := strings.ToUpper(strings.TrimSpace(operator))
	if !allowedOperators[op] {
		return fmt.Errorf("invalid SQL operator: %s (not in whitelist)", operator)
	}
	return nil
}

// compileWhereClause, tek bir WhereClause'u SQL parçasına çevirir.
// Değerler asla string'e eklenmez, placeholder olarak args'a taşınır.
func (g *MySQLGrammar) compileWhereClause(w WhereClause) (string, []interface{}, error) {
	if err := g.validateOperator(w.Operator); err != nil {
		return "", nil, fmt.Errorf("where clause error: %w", err)
	}

	wrappedCol, err := g.Wrap(w.Column)
	if err != nil {
		return "", nil, fmt.Errorf("where column wrap error: %w", err)
	}

	operator := strings.ToUpper(strings.TrimSpace(w.Operator))

	switch operator {
	case "IN", "NOT IN":
		// IN ve NOT IN için değerler dizisi
		values, ok := w.Value.([]interface{})
		if !ok {
			return "", nil, fmt.Errorf("IN/NOT IN operator requires []interface{} value")
		}
		if len(values) == 0 {
			return "", nil, fmt.Errorf("IN/NOT IN operator requires at least one value")
		}
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = "?"
		}
		return fmt.Sprintf("%s %s (%s)", wrappedCol, operator, strings.Join(placeholders, ", ")), values, nil

	case "BETWEEN", "NOT BETWEEN":
		values, ok := w.Value.([]interface{})
		if !ok || len(values) != 2 {
			return "", nil, fmt.Errorf("BETWEEN operator requires exactly 2 values")
		}
		return fmt.Sprintf("%s %s ? AND ?", wrappedCol, operator), values, nil

	case "IS", "IS NOT":
		// NULL kontrolü için
		if w.Value == nil {
			return fmt.Sprintf("%s %s NULL", wrappedCol, operator), nil, nil
		}
		return fmt.Sprintf("%s %s ?", wrappedCol, operator), []interface{}{w.Value}, nil

	default:
		// Standart operatörler (=, !=, <, >, LIKE, vb.)
		return fmt.Sprintf("%s %s ?", wrappedCol, operator), []interface{}{w.Value}, nil
	}
}

// compileWheres, düz koşulları ve parantezli grupları tek bir WHERE gövdesine
// birleştirir. Düz koşullar kendi Boolean'ları ile, gruplar ise grup
// Boolean'ları ile bağlanır.
func (g *MySQLGrammar) compileWheres(wheres []WhereClause, groups []WhereGroup) (string, []interface{}, error) {
	var sb strings.Builder
	var args []interface{}
	written := false

	for _, w := range wheres {
		fragment, clauseArgs, err := g.compileWhereClause(w)
		if err != nil {
			return "", nil, err
		}
		if written {
			sb.WriteString(fmt.Sprintf(" %s ", w.Boolean))
		}
		sb.WriteString(fragment)
		args = append(args, clauseArgs...)
		written = true
	}

	for _, grp := range groups {
		if len(grp.Clauses) == 0 {
			continue
		}
		fragments := make([]string, 0, len(grp.Clauses))
		for _, w := range grp.Clauses {
			fragment, clauseArgs, err := g.compileWhereClause(w)
			if err != nil {
				return "", nil, err
			}
			fragments = append(fragments, fragment)
			args = append(args, clauseArgs...)
		}
		if written {
			sb.WriteString(fmt.Sprintf(" %s ", grp.Boolean))
		}
		sb.WriteString("(" + strings.Join(fragments, " "+grp.Conjunction+" ") + ")")
		written = true
	}

	return sb.String(), args, nil
}

// CompileSelect, QueryBuilder'dan SELECT sorgusu üretir.
func (g *MySQLGrammar) CompileSelect(qb *QueryBuilder) (string, []interface{}, error) {
	// Kolonları wrap et
	wrappedCols := make([]string, len(qb.columns))
	for i, col := range qb.columns {
		wrapped, err := g.wrapColumn(col)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		wrappedCols[i] = wrapped
	}

	// Tablo adını wrap et
	wrappedTable, err := g.Wrap(qb.table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(wrappedCols, ", "),
		wrappedTable,
	)

	var args []interface{}

	// JOIN clause'ları ekle
	for _, join := range qb.joins {
		wrappedJoinTable, err := g.Wrap(join.Table)
		if err != nil {
			return "", nil, fmt.Errorf("join table wrap error: %w", err)
		}
		wrappedFirst, err := g.Wrap(join.First)
		if err != nil {
			return "", nil, fmt.Errorf("join column wrap error: %w", err)
		}
		wrappedSecond, err := g.Wrap(join.Second)
		if err != nil {
			return "", nil, fmt.Errorf("join column wrap error: %w", err)
		}
		if err := g.validateOperator(join.Operator); err != nil {
			return "", nil, fmt.Errorf("join operator error: %w", err)
		}
		sql += fmt.Sprintf(" %s JOIN %s ON %s %s %s",
			join.Type, wrappedJoinTable, wrappedFirst, strings.ToUpper(join.Operator), wrappedSecond)
	}

	// WHERE gövdesini ekle
	if len(qb.wheres) > 0 || len(qb.whereGroups) > 0 {
		whereSQL, whereArgs, err := g.compileWheres(qb.wheres, qb.whereGroups)
		if err != nil {
			return "", nil, err
		}
		if whereSQL != "" {
			sql += " WHERE " + whereSQL
			args = append(args, whereArgs...)
		}
	}

	// GROUP BY clause'ları ekle
	if len(qb.groupBy) > 0 {
		wrappedGroups := make([]string, len(qb.groupBy))
		for i, col := range qb.groupBy {
			wrapped, err := g.Wrap(col)
			if err != nil {
				return "", nil, fmt.Errorf("group by wrap error: %w", err)
			}
			wrappedGroups[i] = wrapped
		}
		sql += " GROUP BY " + strings.Join(wrappedGroups, ", ")
	}

	// ORDER BY clause'ları ekle
	if len(qb.orders) > 0 {
		wrappedOrders := make([]string, len(qb.orders))
		for i, order := range qb.orders {
			wrappedCol, err := g.Wrap(order.Column)
			if err != nil {
				return "", nil, fmt.Errorf("order column wrap error: %w", err)
			}
			wrappedOrders[i] = fmt.Sprintf("%s %s", wrappedCol, order.Direction)
		}
		sql += " ORDER BY " + strings.Join(wrappedOrders, ", ")
	}

	// LIMIT/OFFSET parametre olarak bağlanır
	if qb.limit > 0 {
		sql += " LIMIT ?"
		args = append(args, qb.limit)

		if qb.offset > 0 {
			sql += " OFFSET ?"
			args = append(args, qb.offset)
		}
	}

	return sql, args, nil
}

// CompileBulkInsert, çok satırlı tek bir INSERT sorgusu üretir.
func (g *MySQLGrammar) CompileBulkInsert(table string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("bulk insert requires at least one column")
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("bulk insert requires at least one row")
	}

	wrappedCols := make([]string, len(columns))
	for i, col := range columns {
		wrapped, err := g.Wrap(col)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		wrappedCols[i] = wrapped
	}

	rowPlaceholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	valueGroups := make([]string, len(rows))
	args := make([]interface{}, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("bulk insert row %d has %d values, expected %d", i, len(row), len(columns))
		}
		valueGroups[i] = rowPlaceholders
		args = append(args, row...)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		wrappedTable,
		strings.Join(wrappedCols, ", "),
		strings.Join(valueGroups, ", "),
	)

	return sql, args, nil
}

// CompileBulkUpdate, batch'i primary key üzerinden join edilen sanal bir
// satır kümesi olarak verip tüm satırları tek geçişte yeniden yazar.
// PostgreSQL'deki "WITH updated(...) AS (VALUES ...)" kalıbının MySQL
// karşılığı derived table + JOIN kullanımıdır.
func (g *MySQLGrammar) CompileBulkUpdate(table string, key string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}
	wrappedKey, err := g.Wrap(key)
	if err != nil {
		return "", nil, fmt.Errorf("key wrap error: %w", err)
	}
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("bulk update requires at least one column")
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("bulk update requires at least one row")
	}

	wrappedCols := make([]string, len(columns))
	for i, col := range columns {
		wrapped, err := g.Wrap(col)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		wrappedCols[i] = wrapped
	}

	rowWidth := len(columns) + 1 // key + mutable kolonlar

	// İlk satır kolon adlarını tanımlar, sonrakiler UNION ALL ile eklenir
	firstSelect := make([]string, 0, rowWidth)
	firstSelect = append(firstSelect, fmt.Sprintf("? AS %s", wrappedKey))
	for _, col := range wrappedCols {
		firstSelect = append(firstSelect, fmt.Sprintf("? AS %s", col))
	}
	bareSelect := "SELECT " + strings.TrimSuffix(strings.Repeat("?, ", rowWidth), ", ")

	selects := make([]string, len(rows))
	args := make([]interface{}, 0, len(rows)*rowWidth)
	for i, row := range rows {
		if len(row) != rowWidth {
			return "", nil, fmt.Errorf("bulk update row %d has %d values, expected %d", i, len(row), rowWidth)
		}
		if i == 0 {
			selects[i] = "SELECT " + strings.Join(firstSelect, ", ")
		} else {
			selects[i] = bareSelect
		}
		args = append(args, row...)
	}

	sets := make([]string, len(wrappedCols))
	for i, col := range wrappedCols {
		sets[i] = fmt.Sprintf("%s.%s = `incoming`.%s", wrappedTable, col, col)
	}

	sql := fmt.Sprintf("UPDATE %s JOIN (%s) AS `incoming` ON %s.%s = `incoming`.%s SET %s",
		wrappedTable,
		strings.Join(selects, " UNION ALL "),
		wrappedTable, wrappedKey, wrappedKey,
		strings.Join(sets, ", "),
	)

	return sql, args, nil
}

// CompileDeleteIn, id listesine göre DELETE sorgusu üretir.
func (g *MySQLGrammar) CompileDeleteIn(table string, column string, values []interface{}) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}
	wrappedCol, err := g.Wrap(column)
	if err != nil {
		return "", nil, fmt.Errorf("column wrap error: %w", err)
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("delete requires at least one value")
	}

	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "?"
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)",
		wrappedTable, wrappedCol, strings.Join(placeholders, ", "))

	return sql, append([]interface{}{}, values...), nil
}
