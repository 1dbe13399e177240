// -----------------------------------------------------------------------------
// Database Types - SQL Builder İçin Yardımcı Tipler
// -----------------------------------------------------------------------------
// Bu dosya, QueryBuilder'ın kullandığı internal struct tiplerini içerir.
// OrderClause, WhereClause, WhereGroup ve JoinClause yapıları burada tanımlanır.
// Bu sayede SQL injection gibi güvenlik açıklarına karşı daha güvenli bir yapı
// oluşturulur.
//
// Örneğin OrderClause, direction alanını enum gibi kullanarak sadece
// "ASC" ve "DESC" değerlerini kabul eder. Bu sayede kullanıcı input'u
// direkt SQL'e enjekte edilemez.
// -----------------------------------------------------------------------------

package database

// OrderDirection, ORDER BY için izin verilen yönleri temsil eder.
// Bu enum-like yapı sayesinde SQL injection riski ortadan kalkar.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// OrderClause, bir ORDER BY ifadesini güvenli bir şekilde temsil eder.
// Column ve Direction alanları ayrı tutularak, derleme zamanında
// SQL string'inin güvenli bir şekilde oluşturulması sağlanır.
//
// Örnek Kullanım:
//
//	OrderClause{Column: "products.price", Direction: OrderDesc}
//	→ SQL: ORDER BY `products`.`price` DESC
type OrderClause struct {
	Column    string
	Direction OrderDirection
}

// WhereClause, bir WHERE koşulunu güvenli bir şekilde temsil eder.
// Tüm değerler placeholder (?) olarak kullanılır, bu sayede
// prepared statement'lar ile SQL injection korunması sağlanır.
//
// Alanlar:
//   - Column: Koşul uygulanacak kolon adı (tablo alias'ı ile birlikte olabilir)
//   - Operator: Karşılaştırma operatörü (=, <, >, LIKE, IN, vb.)
//   - Value: Karşılaştırılacak değer; IN/NOT IN için []interface{}
//   - Boolean: Önceki koşulla bağlantı tipi ("AND" veya "OR")
//
// Güvenlik Notu:
// Bu yapı sayesinde tüm değerler prepared statement'lar ile bağlanır.
// Operator whitelist kontrolü Grammar katmanında yapılır.
type WhereClause struct {
	Column   string
	Operator string
	Value    interface{}
	Boolean  string // "AND" veya "OR"
}

// WhereGroup, parantez içine alınmış bir koşul kümesini temsil eder.
// Grup içindeki koşullar Conjunction ile birbirine, gruplar ise bir önceki
// gruba Boolean ile bağlanır. Filtre dilindeki "(AND kümesi) OR (OR kümesi)"
// birleşim kuralı bu yapı ile ifade edilir.
//
// Örnek Kullanım:
//
//	WhereGroup{Conjunction: "AND", Boolean: "AND", Clauses: [a, b]}
//	WhereGroup{Conjunction: "OR",  Boolean: "OR",  Clauses: [c, d]}
//	→ SQL: WHERE (a AND b) OR (c OR d)
type WhereGroup struct {
	Conjunction string // Grup içi bağlaç: "AND" veya "OR"
	Boolean     string // Bir önceki grupla bağlantı: "AND" veya "OR"
	Clauses     []WhereClause
}

// JoinType, JOIN tiplerini temsil eden enum-like yapıdır.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	CrossJoin JoinType = "CROSS"
)

// JoinClause, bir JOIN ifadesini güvenli bir şekilde temsil eder.
//
// Alanlar:
//   - Type: JOIN tipi (INNER, LEFT, RIGHT, CROSS)
//   - Table: JOIN yapılacak tablo adı
//   - First: İlk kolon (örn: "products.category_id")
//   - Operator: Karşılaştırma operatörü (genellikle "=")
//   - Second: İkinci kolon (örn: "categories.id")
//
// Örnek Kullanım:
//
//	JoinClause{
//	    Type: LeftJoin,
//	    Table: "categories",
//	    First: "products.category_id",
//	    Operator: "=",
//	    Second: "categories.id",
//	}
//	→ SQL: LEFT JOIN `categories` ON `products`.`category_id` = `categories`.`id`
type JoinClause struct {
	Type     JoinType
	Table    string
	First    string
	Operator string
	Second   string
}
