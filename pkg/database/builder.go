package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// -----------------------------------------------------------------------------
// QUERY BUILDER — TEMEL
// -----------------------------------------------------------------------------
// Bu dosya, QueryBuilder'ın ana gövdesini içerir. Builder; tablo, kolonlar,
// join'ler, where'lar ve where grupları, group by, order, limit, offset gibi
// state bilgilerini tutar. Okuma (Get, GetMaps, First) ve toplu yazma
// (ExecBulkInsert, ExecBulkUpdate, ExecDeleteIn) metodları bu yapı üzerinden
// sağlanır.
//
// GÜVENLİK:
// - Identifier'lar whitelist regex kontrolünden geçer
// - OrderBy direction whitelist kontrolünden geçer
// - Tüm kullanıcı input'ları prepared statement'lar ile bağlanır
// -----------------------------------------------------------------------------

// validIdentifierRegex, güvenli SQL identifier pattern'ini tanımlar.
// Sadece alphanumeric, underscore ve nokta (table.column için) kabul eder.
var validIdentifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_\.]+$`)

type QueryBuilder struct {
	executor    QueryExecutor
	grammar     Grammar
	table       string
	columns     []string
	joins       []JoinClause
	wheres      []WhereClause
	whereGroups []WhereGroup
	groupBy     []string
	orders      []OrderClause
	limit       int
	offset      int
}

// NewBuilder, executor ve grammar alarak yeni QueryBuilder üretir.
//
// Parametreler:
//   - executor: SQL komutlarını çalıştıracak executor (*sql.DB veya *sql.Tx)
//   - grammar: SQL dialect'ini yöneten grammar (MySQL, vb.)
func NewBuilder(executor QueryExecutor, grammar Grammar) *QueryBuilder {
	return &QueryBuilder{
		executor: executor,
		grammar:  grammar,
		columns:  []string{"*"},
		limit:    0,
		offset:   0,
	}
}

// validateIdentifier, SQL identifier'ı (column/table adı) validate eder.
//
// GÜVENLİK KRİTİK:
// Bu fonksiyon SQL injection saldırılarını önler. Builder API'si geliştirici
// tarafından sabit string'lerle çağrıldığı için geçersiz identifier bir
// programlama hatasıdır ve panic atar; istemci kaynaklı identifier'lar bu
// katmana hiç ulaşmaz (filter compiler'ın allow-list'i devreye girer).
//
// İzin verilen karakterler:
// - Harfler (a-z, A-Z)
// - Rakamlar (0-9)
// - Underscore (_)
// - Nokta (.) - sadece table.column formatı için
func validateIdentifier(identifier string, context string) {
	// Wildcard için özel durum
	if identifier == "*" {
		return
	}

	if strings.TrimSpace(identifier) == "" {
		panic(fmt.Sprintf("Invalid %s name: empty identifier", context))
	}

	if !validIdentifierRegex.MatchString(identifier) {
		panic(fmt.Sprintf("Invalid %s name: '%s' (contains unsafe characters)", context, identifier))
	}

	// Nokta varsa, her parçayı ayrı ayrı kontrol et
	if strings.Contains(identifier, ".") {
		parts := strings.Split(identifier, ".")

		// En fazla 2 parça olmalı (table.column)
		if len(parts) > 2 {
			panic(fmt.Sprintf("Invalid %s name: '%s' (too many dots)", context, identifier))
		}

		for _, part := range parts {
			if strings.TrimSpace(part) == "" {
				panic(fmt.Sprintf("Invalid %s name: '%s' (empty part)", context, identifier))
			}
		}
	}
}

// validateColumnExpression, "kolon" veya "kolon AS alias" ifadelerini
// validate eder.
func validateColumnExpression(expr string) {
	lower := strings.ToLower(expr)
	if idx := strings.Index(lower, " as "); idx >= 0 {
		validateIdentifier(strings.TrimSpace(expr[:idx]), "column")
		validateIdentifier(strings.TrimSpace(expr[idx+4:]), "column alias")
		return
	}
	validateIdentifier(expr, "column")
}

// Table, sorgunun çalışacağı tablo adını belirler.
func (qb *QueryBuilder) Table(tableName string) *QueryBuilder {
	validateIdentifier(tableName, "table")
	qb.table = tableName
	return qb
}

// Select, sorgudan döndürülecek kolonları belirler.
// "tablo.kolon" ve "tablo.kolon AS alias" biçimleri desteklenir.
//
// Örnek:
//
//	qb.Select("products.id", "categories.name AS category_name")
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, col := range columns {
		validateColumnExpression(col)
	}
	qb.columns = columns
	return qb
}

// LeftJoin, sorguya bir LEFT JOIN ekler.
//
// Örnek:
//
//	qb.Table("products").LeftJoin("categories", "products.category_id", "=", "categories.id")
//	→ SQL: FROM `products` LEFT JOIN `categories` ON `products`.`category_id` = `categories`.`id`
func (qb *QueryBuilder) LeftJoin(table, first, operator, second string) *QueryBuilder {
	validateIdentifier(table, "table")
	validateIdentifier(first, "column")
	validateIdentifier(second, "column")

	qb.joins = append(qb.joins, JoinClause{
		Type:     LeftJoin,
		Table:    table,
		First:    first,
		Operator: operator,
		Second:   second,
	})
	return qb
}

// Where, sorguya bir WHERE koşulu ekler.
// Tüm değerler prepared statement ile bağlandığı için SQL injection korumalıdır.
//
// Örnek:
//
//	qb.Where("price", ">", 10)
//
// Güvenlik Notu:
// Operator whitelist kontrolü Grammar katmanında yapılır.
func (qb *QueryBuilder) Where(column string, operator string, value interface{}) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
		Boolean:  "AND",
	})
	return qb
}

// OrWhere, sorguya bir OR WHERE koşulu ekler.
func (qb *QueryBuilder) OrWhere(column string, operator string, value interface{}) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
		Boolean:  "OR",
	})
	return qb
}

// WhereIn, belirtilen kolonun değerlerinin bir dizide olup olmadığını kontrol eder.
//
// Örnek:
//
//	qb.WhereIn("id", []interface{}{1, 2, 3})
//	→ SQL: WHERE `id` IN (?, ?, ?)
func (qb *QueryBuilder) WhereIn(column string, values []interface{}) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   column,
		Operator: "IN",
		Value:    values,
		Boolean:  "AND",
	})
	return qb
}

// WhereNotIn, belirtilen kolonun değerlerinin bir dizide olmadığını kontrol eder.
func (qb *QueryBuilder) WhereNotIn(column string, values []interface{}) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   column,
		Operator: "NOT IN",
		Value:    values,
		Boolean:  "AND",
	})
	return qb
}

// WhereGroup, parantez içine alınmış bir koşul kümesi ekler; grup bir önceki
// koşul/gruba AND ile bağlanır. Boş clause listesi sessizce atlanır, böylece
// çağıran taraf grup varlığını ayrıca kontrol etmek zorunda kalmaz.
//
// Örnek:
//
//	qb.WhereGroup("AND", a, b).OrWhereGroup("OR", c, d)
//	→ SQL: WHERE (a AND b) OR (c OR d)
func (qb *QueryBuilder) WhereGroup(conjunction string, clauses ...WhereClause) *QueryBuilder {
	return qb.addWhereGroup(conjunction, "AND", clauses)
}

// OrWhereGroup, parantezli koşul kümesini OR ile bağlayarak ekler.
func (qb *QueryBuilder) OrWhereGroup(conjunction string, clauses ...WhereClause) *QueryBuilder {
	return qb.addWhereGroup(conjunction, "OR", clauses)
}

func (qb *QueryBuilder) addWhereGroup(conjunction, boolean string, clauses []WhereClause) *QueryBuilder {
	if len(clauses) == 0 {
		return qb
	}

	conj := strings.ToUpper(strings.TrimSpace(conjunction))
	if conj != "OR" {
		conj = "AND"
	}

	qb.whereGroups = append(qb.whereGroups, WhereGroup{
		Conjunction: conj,
		Boolean:     boolean,
		Clauses:     clauses,
	})
	return qb
}

// GroupBy, sorguya GROUP BY kolonları ekler.
func (qb *QueryBuilder) GroupBy(columns ...string) *QueryBuilder {
	for _, col := range columns {
		validateIdentifier(col, "column")
	}
	qb.groupBy = append(qb.groupBy, columns...)
	return qb
}

// OrderBy, sorgu sonuçlarını belirtilen kolona göre sıralar.
//
// Direction parametresi whitelist kontrolünden geçer; sadece "ASC" ve "DESC"
// (case-insensitive) kabul edilir, geçersiz değerler "ASC" olarak düzeltilir.
// Bu sayede SQL injection riski tamamen ortadan kalkar.
func (qb *QueryBuilder) OrderBy(column string, direction string) *QueryBuilder {
	validateIdentifier(column, "column")

	dir := strings.ToUpper(strings.TrimSpace(direction))

	var orderDir OrderDirection
	switch dir {
	case "DESC":
		orderDir = OrderDesc
	case "ASC":
		orderDir = OrderAsc
	default:
		orderDir = OrderAsc
	}

	qb.orders = append(qb.orders, OrderClause{
		Column:    column,
		Direction: orderDir,
	})
	return qb
}

// Limit, döndürülecek maksimum satır sayısını belirler.
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.limit = limit
	return qb
}

// Offset, atlanacak satır sayısını belirler (pagination için).
//
// Örnek:
//
//	qb.Limit(10).Offset(20) → LIMIT ? OFFSET ? (3. sayfa)
func (qb *QueryBuilder) Offset(offset int) *QueryBuilder {
	qb.offset = offset
	return qb
}

// Get, sorguyu çalıştırır ve sonuçları bir struct slice'ına tarar.
//
// Örnek:
//
//	var rows []models.ProductRow
//	err := qb.Table("products").Get(&rows)
func (qb *QueryBuilder) Get(dest any) error {
	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return ScanSlice(rows, dest)
}

// GetMaps, sorguyu çalıştırır ve sonuç kümesini düz map listesi olarak döner.
// Kolon kümesi sabit bir struct'a oturmayan sorgular (örn. existence check)
// için kullanılır.
func (qb *QueryBuilder) GetMaps() ([]map[string]interface{}, error) {
	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rowsToMaps(rows)
}

// First, sorguyu çalıştırır (otomatik 'LIMIT 1' ekler) ve ilk sonucu tek bir
// struct'a tarar. Satır bulunamazsa sql.ErrNoRows döner.
func (qb *QueryBuilder) First(dest any) error {
	qb.Limit(1)

	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return sql.ErrNoRows
	}

	return ScanStruct(rows, dest)
}

// ToSQL, QueryBuilder'ın state'ini SQL string'e ve parametrelere dönüştürür.
// Bu metod Grammar katmanına delegate eder.
func (qb *QueryBuilder) ToSQL() (string, []interface{}, error) {
	return qb.grammar.CompileSelect(qb)
}

// ExecBulkInsert, çok satırlı tek bir INSERT sorgusunu çalıştırır.
//
// Örnek:
//
//	result, err := qb.Table("categories").ExecBulkInsert(
//	    []string{"name", "description"},
//	    [][]interface{}{{"Stationery", "Office supplies"}},
//	)
//	firstID, _ := result.LastInsertId()
func (qb *QueryBuilder) ExecBulkInsert(columns []string, rows [][]interface{}) (sql.Result, error) {
	for _, column := range columns {
		validateIdentifier(column, "column")
	}

	sqlStr, args, err := qb.grammar.CompileBulkInsert(qb.table, columns, rows)
	if err != nil {
		return nil, fmt.Errorf("insert compilation failed: %w", err)
	}
	return qb.executor.Exec(sqlStr, args...)
}

// ExecBulkUpdate, batch'teki tüm satırları primary key eşleşmesiyle tek
// sorguda yeniden yazar. Her satır key değeri ile başlamalı, ardından
// columns sırasında değerler gelmelidir.
func (qb *QueryBuilder) ExecBulkUpdate(key string, columns []string, rows [][]interface{}) (sql.Result, error) {
	validateIdentifier(key, "column")
	for _, column := range columns {
		validateIdentifier(column, "column")
	}

	sqlStr, args, err := qb.grammar.CompileBulkUpdate(qb.table, key, columns, rows)
	if err != nil {
		return nil, fmt.Errorf("update compilation failed: %w", err)
	}
	return qb.executor.Exec(sqlStr, args...)
}

// ExecDeleteIn, verilen id listesine göre DELETE sorgusunu çalıştırır.
// Boş liste bir programlama hatası olarak error üretir; no-op davranışı
// üst katmanın sorumluluğudur.
func (qb *QueryBuilder) ExecDeleteIn(column string, values []interface{}) (sql.Result, error) {
	validateIdentifier(column, "column")

	sqlStr, args, err := qb.grammar.CompileDeleteIn(qb.table, column, values)
	if err != nil {
		return nil, fmt.Errorf("delete compilation failed: %w", err)
	}
	return qb.executor.Exec(sqlStr, args...)
}
