package fixtures

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/matrix"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// MatrixBuilder builds test approval matrices tier by tier
type MatrixBuilder struct {
	t       *testing.T
	entries []matrix.Entry
}

// NewMatrixBuilder creates an empty MatrixBuilder
func NewMatrixBuilder(t *testing.T) *MatrixBuilder {
	t.Helper()
	return &MatrixBuilder{t: t}
}

// WithTier adds a bounded tier
func (b *MatrixBuilder) WithTier(level int, designation string, upperLimit int64) *MatrixBuilder {
	b.entries = append(b.entries, matrix.Entry{
		Level:       level,
		Designation: designation,
		UpperLimit:  values.NewAmountCeiling(decimal.NewFromInt(upperLimit)),
	})
	return b
}

// WithOpenTier adds an open-ended top tier
func (b *MatrixBuilder) WithOpenTier(level int, designation string) *MatrixBuilder {
	b.entries = append(b.entries, matrix.Entry{
		Level:       level,
		Designation: designation,
		UpperLimit:  values.UnboundedCeiling(),
	})
	return b
}

// Build returns the assembled matrix
func (b *MatrixBuilder) Build() matrix.Matrix {
	return matrix.New(b.entries)
}

// StandardMatrixSet returns the three-category matrix set most engine
// tests run against. The contract matrix requires Level 2 up to 100,000,
// which pairs with RecordBuilder's default 50,000 contract memo.
func StandardMatrixSet(t *testing.T) matrix.Set {
	t.Helper()
	return matrix.Set{
		"contract": NewMatrixBuilder(t).
			WithTier(1, "Sales Manager", 10_000).
			WithTier(2, "Finance Controller", 100_000).
			WithOpenTier(3, "Finance Director").
			Build(),
		"promotional": NewMatrixBuilder(t).
			WithTier(1, "Marketing Manager", 5_000).
			WithTier(2, "Marketing Director", 50_000).
			WithOpenTier(3, "VP Marketing").
			Build(),
		"other": NewMatrixBuilder(t).
			WithTier(1, "Team Lead", 2_500).
			WithOpenTier(2, "Department Head").
			Build(),
	}
}
