package filter

// -----------------------------------------------------------------------------
// Sorgu Parametreleri
// -----------------------------------------------------------------------------
// Listeleme endpoint'inin query string parametrelerini (filters, limit, offset,
// orderby, asc) tipli bir Params yapısına çevirir. Tanınmayan parametreler ve
// tip hataları BadRequest üretir; SQL bu doğrulamadan önce çalışmaz.
// -----------------------------------------------------------------------------

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/biyonik/product-catalog-api/internal/apperr"
)

// Params, listeleme sorgusunun tamamen doğrulanmış parametre kümesidir.
type Params struct {
	Filters Groups // ayrıştırılmış AND/OR predicate kümeleri
	Limit   int    // sayfa boyutu (>0)
	Offset  int    // atlanacak satır sayısı (>=0)
	OrderBy string // orderableColumns içinden bir kolon adı
	Asc     bool   // true → ASC, false → DESC
}

// DefaultParams, hiçbir parametre verilmediğinde kullanılan varsayılanları
// döner: ilk 10 satır, fiyata göre azalan.
func DefaultParams() Params {
	return Params{
		Limit:   10,
		Offset:  0,
		OrderBy: "price",
		Asc:     false,
	}
}

// allowedQueryKeys, listeleme endpoint'inin tanıdığı query parametreleridir.
// Tanınmayan anahtarlar sessizce yutulmaz, BadRequest üretir.
var allowedQueryKeys = map[string]bool{
	"filters": true,
	"limit":   true,
	"offset":  true,
	"orderby": true,
	"asc":     true,
}

// ParseParams, URL query parametrelerini doğrulanmış bir Params yapısına
// çevirir. Eksik parametreler varsayılan değer alır; hatalı olanlar sorunlu
// parametreyi isimlendiren BadRequest döner.
func ParseParams(values url.Values) (Params, error) {
	params := DefaultParams()

	unknown := make([]string, 0)
	for key := range values {
		if !allowedQueryKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Params{}, apperr.BadRequestf("unknown query parameter(s): %s", strings.Join(unknown, ", "))
	}

	if raw := values.Get("filters"); raw != "" {
		groups, err := Parse(raw)
		if err != nil {
			return Params{}, err
		}
		params.Filters = groups
	}

	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, apperr.BadRequestf("limit: %q must be a positive integer", raw)
		}
		params.Limit = n
	}

	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Params{}, apperr.BadRequestf("offset: %q must be a non-negative integer", raw)
		}
		params.Offset = n
	}

	if raw := values.Get("orderby"); raw != "" {
		if !orderableColumns[raw] {
			return Params{}, apperr.BadRequestf("orderby: %q is not a sortable column", raw)
		}
		params.OrderBy = raw
	}

	if raw := values.Get("asc"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Params{}, apperr.BadRequestf("asc: %q must be a boolean", raw)
		}
		params.Asc = b
	}

	return params, nil
}

// OrderColumn, ORDER BY için alias'lı kolon adını döner. OrderBy alanı
// ParseParams'ta kapalı kümeye karşı doğrulandığından burada identifier
// üretimi güvenlidir.
func (p Params) OrderColumn() string {
	return aliasProducts + "." + p.OrderBy
}

// OrderDirection, asc bayrağının SQL karşılığını döner.
func (p Params) OrderDirection() string {
	if p.Asc {
		return "ASC"
	}
	return "DESC"
}
