package filter

// -----------------------------------------------------------------------------
// Identifier Allow-List Şeması
// -----------------------------------------------------------------------------
// Bu dosya, filtre dilinin kapalı alan/operatör/tip şemasını içerir. Derlenen
// SQL'de identifier pozisyonuna girebilecek her tablo alias'ı ve kolon adı
// yalnızca bu sabit tablodan çözülür; istemciden gelen metin hiçbir zaman
// identifier olarak kullanılmaz, sadece anahtar olarak bu tabloda aranır.
// -----------------------------------------------------------------------------

// ValueKind, bir alanın değer tipini belirler ve parse sırasında tip
// dönüşümünü yönlendirir.
type ValueKind int

const (
	// KindPositiveInt: pozitif tamsayı (id, category_id)
	KindPositiveInt ValueKind = iota
	// KindNonNegativeFloat: sıfır veya pozitif ondalık (price)
	KindNonNegativeFloat
	// KindString: boş olmayan metin (name, category_name, description)
	KindString
)

// Tablo alias'ları. SELECT'teki FROM/JOIN tanımıyla birebir aynıdır.
const (
	aliasProducts   = "products"
	aliasCategories = "categories"
)

// fieldSpec, tek bir filtrelenebilir alanın allow-list kaydıdır: hangi tablo
// alias'ına bağlandığı, gerçek kolon adı, değer tipi ve izinli operatörler.
type fieldSpec struct {
	Alias  string
	Column string
	Kind   ValueKind
	Ops    map[Operator]bool
}

// Operatör kümeleri: sayısal alanlar sıralama operatörlerini, metin alanları
// like'ı destekler.
var (
	numericOps = map[Operator]bool{
		OpEq: true, OpNe: true, OpGt: true, OpGte: true,
		OpLt: true, OpLte: true, OpIn: true, OpNin: true,
	}
	textOps = map[Operator]bool{
		OpEq: true, OpNe: true, OpIn: true, OpNin: true, OpLike: true,
	}
)

// fieldTable, kapalı alan allow-list'idir. category_name ve description
// join'lenen categories alias'ına, diğer tüm alanlar products alias'ına
// bağlanır.
var fieldTable = map[Field]fieldSpec{
	FieldID:           {Alias: aliasProducts, Column: "id", Kind: KindPositiveInt, Ops: numericOps},
	FieldName:         {Alias: aliasProducts, Column: "name", Kind: KindString, Ops: textOps},
	FieldCategoryID:   {Alias: aliasProducts, Column: "category_id", Kind: KindPositiveInt, Ops: numericOps},
	FieldPrice:        {Alias: aliasProducts, Column: "price", Kind: KindNonNegativeFloat, Ops: numericOps},
	FieldCategoryName: {Alias: aliasCategories, Column: "name", Kind: KindString, Ops: textOps},
	FieldDescription:  {Alias: aliasCategories, Column: "description", Kind: KindString, Ops: textOps},
}

// operatorSQL, filtre operatörlerinin SQL karşılıklarını içeren sabit
// tablodur. Buradaki değerler dışında hiçbir operatör metni SQL'e yazılmaz.
var operatorSQL = map[Operator]string{
	OpEq:   "=",
	OpNe:   "!=",
	OpGt:   ">",
	OpGte:  ">=",
	OpLt:   "<",
	OpLte:  "<=",
	OpIn:   "IN",
	OpNin:  "NOT IN",
	OpLike: "LIKE",
}

// orderableColumns, orderby parametresinin alabileceği kolonların kapalı
// kümesidir (hepsi products tablosundan).
var orderableColumns = map[string]bool{
	"id":          true,
	"name":        true,
	"category_id": true,
	"price":       true,
}
