package query

import (
	"reflect"
	"testing"
)

func TestOrderedExpressions(t *testing.T) {
	q := NewStructuredQuery(testMetadata(), 1).
		AddExpression("total_with_tax", []any{"+", []any{"expression", "subtotal"}, []any{"expression", "tax"}}).
		AddExpression("tax", []any{"*", []any{"expression", "subtotal"}, 0.07}).
		AddExpression("subtotal", []any{"-", []any{"field-id", 4}, []any{"field-id", 5}})

	ordered, err := q.OrderedExpressions()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var names []string
	for _, e := range ordered {
		names = append(names, e.Name)
	}
	expected := []string{"subtotal", "tax", "total_with_tax"}
	if !reflect.DeepEqual(expected, names) {
		t.Errorf("expected:\n %v \ngot:\n %v\n", expected, names)
	}
}

func TestOrderedExpressionsRejectsCycles(t *testing.T) {
	q := NewStructuredQuery(testMetadata(), 1).
		AddExpression("a", []any{"+", []any{"expression", "b"}, 1}).
		AddExpression("b", []any{"+", []any{"expression", "a"}, 1})

	if _, err := q.OrderedExpressions(); err == nil {
		t.Fatalf("expected a cycle error")
	}
}

func TestOrderedExpressionsIgnoresUndefinedReferences(t *testing.T) {
	q := NewStructuredQuery(testMetadata(), 1).
		AddExpression("discount_pct", []any{"*", []any{"expression", "missing"}, 100})

	ordered, err := q.OrderedExpressions()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(ordered) != 1 || ordered[0].Name != "discount_pct" {
		t.Errorf("expected only discount_pct, got %v", ordered)
	}
}
