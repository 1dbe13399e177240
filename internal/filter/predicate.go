// Package filter, istemciden gelen filtre ifadesi dilini (DSL) ayrıştırır ve
// güvenli, parametrik SQL koşullarına derler.
//
// Dil: "&alan__op=değer,...*" AND kümesi, "|alan__op=değer,...*" OR kümesi.
// Parse aşamasından sonra hiçbir string-suffix incelemesi yapılmaz; her koşul
// enum alan ve operatör tag'leri taşıyan tipli bir Predicate'e dönüşür.
// Derleme aşamasında identifier'lar yalnızca kapalı bir allow-list tablosundan
// çözülür, istemci metni asla SQL identifier pozisyonuna giremez.
package filter

// Field, filtrelenebilir alanları temsil eden enum-like tiptir.
// Alan kümesi kapalıdır; schema.go'daki tablo dışında alan yoktur.
type Field string

const (
	FieldID           Field = "id"
	FieldName         Field = "name"
	FieldCategoryID   Field = "category_id"
	FieldPrice        Field = "price"
	FieldCategoryName Field = "category_name"
	FieldDescription  Field = "description"
)

// Operator, filtre dilindeki karşılaştırma operatörlerini temsil eder.
type Operator string

const (
	OpEq   Operator = "eq"
	OpNe   Operator = "ne"
	OpGt   Operator = "gt"
	OpGte  Operator = "gte"
	OpLt   Operator = "lt"
	OpLte  Operator = "lte"
	OpIn   Operator = "in"
	OpNin  Operator = "nin"
	OpLike Operator = "like"
)

// Predicate, tek bir filtre koşulunu temsil eder: alan, operatör ve parse
// sırasında tip dönüşümü yapılmış değer. in/nin için değer []interface{},
// diğer operatörler için skalardır. like değerleri parse sırasında iki
// taraftan '%' ile sarılmış halde tutulur.
type Predicate struct {
	Field    Field
	Operator Operator
	Value    interface{}
}

// Groups, parse sonucunda oluşan iki ayrık koşul kümesidir. Grup üyeliği
// parse anında metinsel önek ("&" / "|") ile belirlenir ve sonradan değişmez.
// Boş grup boş slice olarak temsil edilir; downstream mantık grup varlığını
// sadece len() ile test eder.
type Groups struct {
	And []Predicate
	Or  []Predicate
}

// IsEmpty, her iki kümenin de boş olup olmadığını döner.
func (g Groups) IsEmpty() bool {
	return len(g.And) == 0 && len(g.Or) == 0
}
