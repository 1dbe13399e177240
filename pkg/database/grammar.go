package database

// -----------------------------------------------------------------------------
// Grammar Interface
// -----------------------------------------------------------------------------
// SQL lehçesine özgü sorgu üretimini tanımlar. Tüm compile metotları error
// döner; geçersiz identifier veya operatör HTTP isteği ortasında panic yerine
// kontrollü bir hata üretir.
//
// Farklı veritabanları için farklı implementasyonlar:
// - MySQLGrammar: MySQL/MariaDB için
// - PostgreSQLGrammar: PostgreSQL için (gelecekte)
// -----------------------------------------------------------------------------

// Grammar, SQL lehçesine özgü sorgu üretimini tanımlar.
type Grammar interface {
	// Wrap, identifier'ları (kolon/tablo adları) veritabanı lehçesine göre
	// sarmalar. MySQL: backtick (`table`), PostgreSQL: çift tırnak ("table").
	//
	// Döndürür:
	//   - string: Sarmalanmış identifier
	//   - error: Geçersiz identifier varsa
	Wrap(value string) (string, error)

	// CompileSelect, QueryBuilder state'inden SELECT sorgusu üretir.
	// JOIN, gruplu WHERE, GROUP BY, ORDER BY ve parametrik LIMIT/OFFSET
	// desteklenir.
	//
	// Döndürür:
	//   - string: SQL sorgusu
	//   - []interface{}: Prepared statement parametreleri
	//   - error: Sorgu oluşturma hatası
	CompileSelect(qb *QueryBuilder) (string, []interface{}, error)

	// CompileBulkInsert, çok satırlı tek bir INSERT sorgusu üretir.
	// Her satır columns ile aynı uzunlukta olmalıdır.
	//
	//	INSERT INTO `t` (`a`, `b`) VALUES (?, ?), (?, ?)
	CompileBulkInsert(table string, columns []string, rows [][]interface{}) (string, []interface{}, error)

	// CompileBulkUpdate, bir batch'in tamamını tek geçişte yeniden yazan
	// UPDATE sorgusu üretir. Batch, primary key üzerinden hedef tabloya
	// join edilen sanal bir satır kümesi (derived table) olarak verilir:
	//
	//	UPDATE `t` JOIN (SELECT ? AS `id`, ? AS `a` UNION ALL SELECT ?, ?) AS `incoming`
	//	ON `t`.`id` = `incoming`.`id` SET `t`.`a` = `incoming`.`a`
	//
	// Her satır key + columns sırasında değer içermelidir.
	CompileBulkUpdate(table string, key string, columns []string, rows [][]interface{}) (string, []interface{}, error)

	// CompileDeleteIn, id listesine göre DELETE sorgusu üretir.
	//
	//	DELETE FROM `t` WHERE `id` IN (?, ?, ?)
	CompileDeleteIn(table string, column string, values []interface{}) (string, []interface{}, error)
}
