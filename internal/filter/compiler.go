package filter

// -----------------------------------------------------------------------------
// Predicate → WhereClause Derleyici
// -----------------------------------------------------------------------------
// Tipli predicate'leri query builder'ın anladığı WhereClause değerlerine
// çevirir. Kolon adı ve operatör metni yalnızca schema.go'daki sabit
// tablolardan çözülür; Value her zaman bind parametresi olarak taşınır.
// -----------------------------------------------------------------------------

import (
	"fmt"

	"github.com/biyonik/product-catalog-api/pkg/database"
)

// Compile, doğrulanmış tek bir predicate'i WhereClause'a çevirir. Parse
// aşamasını atlayan tanımsız alan/operatör burada programlama hatası sayılır
// ve sınıflandırılmamış hata olarak döner.
func Compile(p Predicate) (database.WhereClause, error) {
	spec, ok := fieldTable[p.Field]
	if !ok {
		return database.WhereClause{}, fmt.Errorf("filter compile: field %q is not in the allow-list", string(p.Field))
	}

	sqlOp, ok := operatorSQL[p.Operator]
	if !ok {
		return database.WhereClause{}, fmt.Errorf("filter compile: operator %q has no SQL mapping", string(p.Operator))
	}

	if p.Operator == OpIn || p.Operator == OpNin {
		values, ok := p.Value.([]interface{})
		if !ok || len(values) == 0 {
			return database.WhereClause{}, fmt.Errorf("filter compile: %s: in/nin value must be a non-empty list", string(p.Field))
		}
	}

	return database.WhereClause{
		Column:   spec.Alias + "." + spec.Column,
		Operator: sqlOp,
		Value:    p.Value,
		Boolean:  "AND",
	}, nil
}

// CompileGroups, her iki predicate kümesini ayrı WhereClause dilimlerine
// derler. Boş kümeler boş dilim olarak döner; grup kompozisyonu (AND kümesi
// OR kümesiyle OR'lanır) query builder'ın WhereGroup mekanizmasına bırakılır.
func CompileGroups(g Groups) (and []database.WhereClause, or []database.WhereClause, err error) {
	and = make([]database.WhereClause, 0, len(g.And))
	for _, p := range g.And {
		clause, err := Compile(p)
		if err != nil {
			return nil, nil, err
		}
		and = append(and, clause)
	}

	or = make([]database.WhereClause, 0, len(g.Or))
	for _, p := range g.Or {
		clause, err := Compile(p)
		if err != nil {
			return nil, nil, err
		}
		or = append(or, clause)
	}

	return and, or, nil
}
