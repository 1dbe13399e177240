package filter

import (
	"reflect"
	"testing"
)

// TestCompile_AliasMapping tests that fields resolve to alias-qualified columns
// from the fixed schema table
func TestCompile_AliasMapping(t *testing.T) {
	cases := []struct {
		name       string
		pred       Predicate
		wantColumn string
		wantOp     string
	}{
		{
			name:       "product field",
			pred:       Predicate{Field: FieldPrice, Operator: OpGte, Value: float64(10)},
			wantColumn: "products.price",
			wantOp:     ">=",
		},
		{
			name:       "joined category name",
			pred:       Predicate{Field: FieldCategoryName, Operator: OpLike, Value: "%Office%"},
			wantColumn: "categories.name",
			wantOp:     "LIKE",
		},
		{
			name:       "joined category description",
			pred:       Predicate{Field: FieldDescription, Operator: OpEq, Value: "Stationery"},
			wantColumn: "categories.description",
			wantOp:     "=",
		},
		{
			name:       "nin with list",
			pred:       Predicate{Field: FieldID, Operator: OpNin, Value: []interface{}{int64(1), int64(2)}},
			wantColumn: "products.id",
			wantOp:     "NOT IN",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clause, err := Compile(tc.pred)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if clause.Column != tc.wantColumn {
				t.Errorf("column mismatch: got %s, want %s", clause.Column, tc.wantColumn)
			}
			if clause.Operator != tc.wantOp {
				t.Errorf("operator mismatch: got %s, want %s", clause.Operator, tc.wantOp)
			}
			if !reflect.DeepEqual(clause.Value, tc.pred.Value) {
				t.Errorf("value mismatch: got %v, want %v", clause.Value, tc.pred.Value)
			}
			if clause.Boolean != "AND" {
				t.Errorf("expected AND boolean, got %s", clause.Boolean)
			}
		})
	}
}

// TestCompile_ProgrammingErrors tests that predicates bypassing the parser fail
func TestCompile_ProgrammingErrors(t *testing.T) {
	cases := []struct {
		name string
		pred Predicate
	}{
		{name: "field not in allow-list", pred: Predicate{Field: Field("secrets"), Operator: OpEq, Value: 1}},
		{name: "operator without SQL mapping", pred: Predicate{Field: FieldID, Operator: Operator("regex"), Value: 1}},
		{name: "in with scalar value", pred: Predicate{Field: FieldID, Operator: OpIn, Value: int64(1)}},
		{name: "in with empty list", pred: Predicate{Field: FieldID, Operator: OpIn, Value: []interface{}{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compile(tc.pred); err == nil {
				t.Errorf("expected error for %+v, got nil", tc.pred)
			}
		})
	}
}

// TestCompileGroups tests that both predicate sets compile into clause slices
func TestCompileGroups(t *testing.T) {
	groups := Groups{
		And: []Predicate{
			{Field: FieldID, Operator: OpGte, Value: int64(3)},
			{Field: FieldPrice, Operator: OpLt, Value: float64(100)},
		},
		Or: []Predicate{
			{Field: FieldName, Operator: OpLike, Value: "%Pen%"},
		},
	}

	and, or, err := CompileGroups(groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(and) != 2 || len(or) != 1 {
		t.Fatalf("clause count mismatch: and=%d or=%d", len(and), len(or))
	}
	if and[0].Column != "products.id" || and[1].Column != "products.price" {
		t.Errorf("unexpected And columns: %s, %s", and[0].Column, and[1].Column)
	}
	if or[0].Column != "products.name" || or[0].Operator != "LIKE" {
		t.Errorf("unexpected Or clause: %+v", or[0])
	}
}

// TestCompileGroups_Empty tests that empty groups produce empty slices
func TestCompileGroups_Empty(t *testing.T) {
	and, or, err := CompileGroups(Groups{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(and) != 0 || len(or) != 0 {
		t.Errorf("expected empty slices, got and=%d or=%d", len(and), len(or))
	}
}
