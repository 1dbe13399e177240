package filter

// -----------------------------------------------------------------------------
// Filtre İfadesi Parser'ı
// -----------------------------------------------------------------------------
// Ham filtre string'ini AND/OR predicate kümelerine ayrıştırır.
//
// Dil bilgisi:
//
//	&id__gte=3,price__lt=100*     → AND segmenti (virgülle ayrılmış atamalar)
//	|name__like=Pen*              → OR segmenti
//	id__in=[1,2,3]                → liste literal'i (in/nin)
//
// Birden fazla AND veya OR segmenti tek kümeye düzleştirilir; segment sırası
// sonucu değiştirmez. Her atama kapalı alan/operatör/tip şemasına karşı
// doğrulanır; ihlaller SQL çalışmadan önce BadRequest üretir.
// -----------------------------------------------------------------------------

import (
	"sort"
	"strconv"
	"strings"

	"regexp"

	"github.com/biyonik/product-catalog-api/internal/apperr"
)

var (
	andSegmentRegex = regexp.MustCompile(`&(.*?)\*`)
	orSegmentRegex  = regexp.MustCompile(`\|(.*?)\*`)
)

// Parse, ham filtre ifadesini iki ayrık predicate kümesine ayrıştırır.
// Boş veya hiç segment içermeyen string geçerli kabul edilir ve boş Groups
// döner. Tüm hatalar BadRequest türündedir ve sorunlu alanı isimlendirir.
func Parse(raw string) (Groups, error) {
	var groups Groups

	if strings.TrimSpace(raw) == "" {
		return groups, nil
	}

	andPreds, err := parseSegments(andSegmentRegex.FindAllStringSubmatch(raw, -1))
	if err != nil {
		return Groups{}, err
	}

	orPreds, err := parseSegments(orSegmentRegex.FindAllStringSubmatch(raw, -1))
	if err != nil {
		return Groups{}, err
	}

	// Hiç segment yakalanmadıysa ifade filtre içermiyor demektir; segment
	// dışında kalan metin yok sayılır ve sorgu filtresiz çalışır.
	groups.And = andPreds
	groups.Or = orPreds
	return groups, nil
}

// parseSegments, aynı türdeki tüm segmentleri tek bir predicate kümesine
// düzleştirir. Aynı (alan, operatör) çifti birden fazla kez geçerse son değer
// kazanır; çıktı, segment sırasından bağımsız olması için alan__op anahtarına
// göre deterministik sıralanır.
func parseSegments(matches [][]string) ([]Predicate, error) {
	set := make(map[string]Predicate)

	for _, m := range matches {
		segment := strings.TrimSpace(m[1])
		if segment == "" {
			continue
		}
		for _, item := range splitAssignments(segment) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key, pred, err := parseAssignment(item)
			if err != nil {
				return nil, err
			}
			set[key] = pred
		}
	}

	if len(set) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	preds := make([]Predicate, 0, len(keys))
	for _, k := range keys {
		preds = append(preds, set[k])
	}
	return preds, nil
}

// splitAssignments, segmenti virgüllerden böler; köşeli parantez içindeki
// virgüller (liste literal'leri) bölme noktası sayılmaz.
func splitAssignments(segment string) []string {
	var parts []string
	depth := 0
	start := 0

	for i, r := range segment {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, segment[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, segment[start:])
	return parts
}

// parseAssignment, "alan__op=değer" biçimindeki tek bir atamayı tipli bir
// Predicate'e çevirir. Dönen anahtar "alan__op" biçimindedir ve küme içi
// tekilleştirme için kullanılır.
func parseAssignment(item string) (string, Predicate, error) {
	eq := strings.Index(item, "=")
	if eq < 0 {
		return "", Predicate{}, apperr.BadRequestf("filters: %q is not a 'field__operator=value' assignment", item)
	}

	key := strings.TrimSpace(item[:eq])
	rawValue := strings.TrimSpace(item[eq+1:])

	sep := strings.LastIndex(key, "__")
	if sep <= 0 {
		return "", Predicate{}, apperr.BadRequestf("filters: %q is missing an operator suffix", key)
	}

	field := Field(key[:sep])
	op := Operator(key[sep+2:])

	spec, ok := fieldTable[field]
	if !ok {
		return "", Predicate{}, apperr.BadRequestf("filters: %q is not a filterable field", string(field))
	}

	if !spec.Ops[op] {
		if _, known := operatorSQL[op]; !known {
			return "", Predicate{}, apperr.BadRequestf("filters: %s: unknown operator %q", string(field), string(op))
		}
		return "", Predicate{}, apperr.BadRequestf("filters: %s: operator %q is not allowed for this field", string(field), string(op))
	}

	var value interface{}
	var err error

	switch op {
	case OpIn, OpNin:
		value, err = parseListLiteral(field, spec.Kind, rawValue)
	default:
		value, err = coerceScalar(field, spec.Kind, rawValue)
	}
	if err != nil {
		return "", Predicate{}, err
	}

	// like değerleri her iki taraftan wildcard ile sarılır
	if op == OpLike {
		value = "%" + value.(string) + "%"
	}

	return string(field) + "__" + string(op), Predicate{Field: field, Operator: op, Value: value}, nil
}

// parseListLiteral, "[v1,v2,...]" biçimindeki liste literal'ini öğe öğe tip
// dönüşümü yaparak []interface{} olarak döner.
func parseListLiteral(field Field, kind ValueKind, raw string) ([]interface{}, error) {
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil, apperr.BadRequestf("filters: %s: in/nin value must be a list literal like [1,2,3]", string(field))
	}

	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return nil, apperr.BadRequestf("filters: %s: in/nin list must contain at least one value", string(field))
	}

	items := strings.Split(inner, ",")
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		v, err := coerceScalar(field, kind, strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// coerceScalar, ham string değeri alanın tipine dönüştürür ve tip kısıtlarını
// (pozitiflik, boş olmama) uygular.
func coerceScalar(field Field, kind ValueKind, raw string) (interface{}, error) {
	raw = unquote(raw)

	switch kind {
	case KindPositiveInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, apperr.BadRequestf("filters: %s: %q is not a valid integer", string(field), raw)
		}
		if n <= 0 {
			return nil, apperr.BadRequestf("filters: %s: value must be a positive integer", string(field))
		}
		return n, nil

	case KindNonNegativeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperr.BadRequestf("filters: %s: %q is not a valid number", string(field), raw)
		}
		if f < 0 {
			return nil, apperr.BadRequestf("filters: %s: value must not be negative", string(field))
		}
		return f, nil

	default:
		if raw == "" {
			return nil, apperr.BadRequestf("filters: %s: value must not be empty", string(field))
		}
		return raw, nil
	}
}

// unquote, liste literal'lerinde kullanılabilen tek/çift tırnakları temizler.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
