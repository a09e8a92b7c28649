package mbql

import (
	"encoding/json"
	"fmt"
	"math"
)

/*
ParseMBQL parses a raw field reference into a [Dimension].

The raw value is a decoded-JSON clause ([]any), a [RawRef], or a bare
numeric field id (the oldest reference shape). All legacy shapes are
accepted and collapse to the canonical form on re-serialization:

	17                                      -> ["field-id", 17]
	["fk->", ["field-id", 7], ["field-id", 17]] -> ["fk->", 7, 17]
	["datetime-field", ref, "as", "month"]  -> ["datetime-field", ref, "month"]

Unrecognized shapes return an error; callers which want the permissive
nil-on-failure behaviour use [Normalize].
*/
func ParseMBQL(raw any) (*Dimension, error) {
	if id, ok := asFieldID(raw); ok {
		return NewDimension(&FieldID{ID: id}), nil
	}

	clause, ok := asClause(raw)
	if !ok {
		return nil, fmt.Errorf("cannot parse field reference from %v", raw)
	}
	if len(clause) == 0 {
		return nil, fmt.Errorf("cannot parse empty field reference clause")
	}
	head, ok := clause[0].(string)
	if !ok {
		return nil, fmt.Errorf("field reference clause must start with a string, got %v", clause[0])
	}

	switch head {
	case ClauseFieldID:
		if len(clause) != 2 {
			return nil, clauseError(head, clause)
		}
		id, ok := asFieldID(clause[1])
		if !ok {
			return nil, clauseError(head, clause)
		}
		return NewDimension(&FieldID{ID: id}), nil

	case ClauseForeignKey:
		if len(clause) != 3 {
			return nil, clauseError(head, clause)
		}
		// fk-> args may be bare ids or wrapped ["field-id", n] clauses
		fk, fkOK := asFieldArg(clause[1])
		dest, destOK := asFieldArg(clause[2])
		if !fkOK || !destOK {
			return nil, clauseError(head, clause)
		}
		return NewDimension(&ForeignKey{FkFieldID: fk, FieldID: dest}), nil

	case ClauseExpression:
		if len(clause) != 2 {
			return nil, clauseError(head, clause)
		}
		name, ok := clause[1].(string)
		if !ok || name == "" {
			return nil, clauseError(head, clause)
		}
		return NewDimension(&Expression{Name: name}), nil

	case ClauseAggregation:
		if len(clause) != 2 {
			return nil, clauseError(head, clause)
		}
		index, ok := asFieldID(clause[1])
		if !ok || index < 0 {
			return nil, clauseError(head, clause)
		}
		return NewDimension(&Aggregation{Index: index}), nil

	case ClauseFieldLiteral:
		if len(clause) != 3 {
			return nil, clauseError(head, clause)
		}
		name, nameOK := clause[1].(string)
		baseType, typeOK := clause[2].(string)
		if !nameOK || !typeOK || name == "" {
			return nil, clauseError(head, clause)
		}
		return NewDimension(&FieldLiteral{Name: name, BaseType: baseType}), nil

	case ClauseDatetimeField:
		return parseDatetimeField(clause)

	case ClauseBinningStrategy:
		return parseBinningStrategy(clause)
	}

	return nil, fmt.Errorf("unrecognized field reference clause %q", head)
}

// parseDatetimeField handles ["datetime-field", inner, unit] and the legacy
// 4-arg shape ["datetime-field", inner, "as", unit].
func parseDatetimeField(clause []any) (*Dimension, error) {
	var unit string
	switch {
	case len(clause) == 3:
		u, ok := clause[2].(string)
		if !ok {
			return nil, clauseError(ClauseDatetimeField, clause)
		}
		unit = u
	case len(clause) == 4:
		as, asOK := clause[2].(string)
		u, unitOK := clause[3].(string)
		if !asOK || as != "as" || !unitOK {
			return nil, clauseError(ClauseDatetimeField, clause)
		}
		unit = u
	default:
		return nil, clauseError(ClauseDatetimeField, clause)
	}

	inner, err := ParseMBQL(clause[1])
	if err != nil {
		return nil, err
	}
	return inner.WithTemporalUnit(unit), nil
}

// parseBinningStrategy handles ["binning-strategy", inner, strategy, param...].
func parseBinningStrategy(clause []any) (*Dimension, error) {
	if len(clause) < 3 {
		return nil, clauseError(ClauseBinningStrategy, clause)
	}
	strategy, ok := clause[2].(string)
	if !ok {
		return nil, clauseError(ClauseBinningStrategy, clause)
	}

	binning := &BinningStrategy{Strategy: strategy}
	switch strategy {
	case BinningNumBins:
		if len(clause) != 4 {
			return nil, clauseError(ClauseBinningStrategy, clause)
		}
		n, ok := asFieldID(clause[3])
		if !ok {
			return nil, clauseError(ClauseBinningStrategy, clause)
		}
		binning.NumBins = n
	case BinningBinWidth:
		if len(clause) != 4 {
			return nil, clauseError(ClauseBinningStrategy, clause)
		}
		width, ok := asNumber(clause[3])
		if !ok {
			return nil, clauseError(ClauseBinningStrategy, clause)
		}
		binning.BinWidth = width
	default:
		if len(clause) != 3 {
			return nil, clauseError(ClauseBinningStrategy, clause)
		}
	}

	inner, err := ParseMBQL(clause[1])
	if err != nil {
		return nil, err
	}
	return inner.WithBinning(binning), nil
}

// Normalize parses a raw reference and re-serializes it canonically,
// collapsing legacy shapes. It returns nil if the reference cannot be
// parsed - the caller is expected to fall back to name-based matching.
func Normalize(raw any) []any {
	if raw == nil {
		return nil
	}
	dimension, err := ParseMBQL(raw)
	if err != nil {
		return nil
	}
	return dimension.MBQL()
}

// NormalizeRef normalizes a resolved reference. RawRef values are parsed and
// re-serialized; typed references are already canonical.
func NormalizeRef(ref FieldRef) []any {
	if ref == nil {
		return nil
	}
	if raw, ok := ref.(RawRef); ok {
		return Normalize([]any(raw))
	}
	return ref.MBQL()
}

func clauseError(head string, clause []any) error {
	return fmt.Errorf("malformed %q clause %v", head, clause)
}

func asClause(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case RawRef:
		return []any(v), true
	}
	return nil, false
}

// asFieldID extracts an integer id, accepting the numeric types a decoded
// JSON payload or a programmatic caller may supply.
func asFieldID(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(id), true
	}
	return 0, false
}

// asFieldArg extracts a field id from an fk-> argument, which may be a bare
// id or a wrapped ["field-id", n] clause.
func asFieldArg(raw any) (int, bool) {
	if id, ok := asFieldID(raw); ok {
		return id, true
	}
	clause, ok := asClause(raw)
	if !ok || len(clause) != 2 {
		return 0, false
	}
	if head, ok := clause[0].(string); !ok || head != ClauseFieldID {
		return 0, false
	}
	return asFieldID(clause[1])
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
