package mbql

// Binning strategies a dimension may carry.
const (
	BinningDefault  = "default"
	BinningNumBins  = "num-bins"
	BinningBinWidth = "bin-width"
)

// BinningStrategy describes how a dimension's values are bucketed.
// NumBins is set for the "num-bins" strategy, BinWidth for "bin-width".
type BinningStrategy struct {
	Strategy string
	NumBins  int
	BinWidth float64
}

func (b *BinningStrategy) clauseArgs() []any {
	switch b.Strategy {
	case BinningNumBins:
		return []any{BinningNumBins, b.NumBins}
	case BinningBinWidth:
		return []any{BinningBinWidth, b.BinWidth}
	default:
		return []any{b.Strategy}
	}
}

/*
Dimension is the parsed, structured form of a field reference: a base
reference plus any refinements applied on top of it (temporal bucketing,
binning).

Dimensions are immutable values - the With... methods return copies. They are
produced by [ParseMBQL] and re-serialized canonically by [Dimension.MBQL],
which collapses legacy reference shapes into current ones.
*/
type Dimension struct {
	ref          FieldRef
	temporalUnit string
	binning      *BinningStrategy
}

// NewDimension returns a dimension over the given base reference with no
// refinements.
func NewDimension(ref FieldRef) *Dimension {
	return &Dimension{ref: ref}
}

// Ref returns the base field reference.
func (d *Dimension) Ref() FieldRef { return d.ref }

// TemporalUnit returns the temporal bucketing unit, or "" if unbucketed.
func (d *Dimension) TemporalUnit() string { return d.temporalUnit }

// Binning returns the binning strategy, or nil if unbinned.
func (d *Dimension) Binning() *BinningStrategy { return d.binning }

// WithTemporalUnit returns a copy of the dimension bucketed by unit.
func (d *Dimension) WithTemporalUnit(unit string) *Dimension {
	clone := *d
	clone.temporalUnit = unit
	return &clone
}

// WithBinning returns a copy of the dimension binned by strategy.
func (d *Dimension) WithBinning(binning *BinningStrategy) *Dimension {
	clone := *d
	clone.binning = binning
	return &clone
}

// MBQL returns the canonical raw clause for the dimension: the base
// reference wrapped in a datetime-field clause when a temporal unit is set,
// wrapped in a binning-strategy clause when binning is set.
func (d *Dimension) MBQL() []any {
	if d == nil || d.ref == nil {
		return nil
	}
	clause := d.ref.MBQL()
	if d.temporalUnit != "" {
		clause = []any{ClauseDatetimeField, clause, d.temporalUnit}
	}
	if d.binning != nil {
		wrapped := []any{ClauseBinningStrategy, clause}
		clause = append(wrapped, d.binning.clauseArgs()...)
	}
	return clause
}

// BaseDimension returns the dimension with all refinements stripped.
func (d *Dimension) BaseDimension() *Dimension {
	if d == nil {
		return nil
	}
	return &Dimension{ref: d.ref}
}

// IsSameBaseDimension reports whether two dimensions reference the same base
// field, ignoring temporal bucketing and binning refinements. This is a
// broader equivalence than Equal.
func (d *Dimension) IsSameBaseDimension(other *Dimension) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	return d.BaseDimension().Key() == other.BaseDimension().Key()
}

// Equal reports whether two dimensions are structurally identical,
// refinements included.
func (d *Dimension) Equal(other *Dimension) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	return d.Key() == other.Key()
}

// Key returns the canonical encoding of the dimension, suitable for use as a
// map key. Structurally equal dimensions produce byte-identical keys.
func (d *Dimension) Key() string {
	return CanonicalJSON(d.MBQL())
}

func (d *Dimension) String() string { return d.Key() }
