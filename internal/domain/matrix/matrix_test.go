package matrix_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/matrix"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

func ceiling(limit int64) values.AmountCeiling {
	return values.NewAmountCeiling(decimal.NewFromInt(limit))
}

func threeTier() matrix.Matrix {
	// Deliberately unsorted; New must canonicalize.
	return matrix.New([]matrix.Entry{
		{Level: 3, Designation: "Finance Director", UpperLimit: values.UnboundedCeiling()},
		{Level: 1, Designation: "Sales Manager", UpperLimit: ceiling(10_000)},
		{Level: 2, Designation: "Finance Controller", UpperLimit: ceiling(100_000)},
	})
}

func TestMatrix_RequiredLevel(t *testing.T) {
	m := threeTier()

	tests := []struct {
		name      string
		amount    values.Amount
		wantLevel int
		wantOK    bool
	}{
		{name: "lowest tier", amount: values.NewAmountFromFloat(5_000), wantLevel: 1, wantOK: true},
		{name: "tier boundary is inclusive", amount: values.NewAmountFromFloat(10_000), wantLevel: 1, wantOK: true},
		{name: "just over a boundary", amount: values.NewAmountFromFloat(10_000.01), wantLevel: 2, wantOK: true},
		{name: "open-ended top tier", amount: values.NewAmountFromFloat(5_000_000), wantLevel: 3, wantOK: true},
		{name: "undefined amount", amount: values.UndefinedAmount(), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := m.RequiredLevel(tt.amount)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestMatrix_RequiredLevel_NoCoveringTier(t *testing.T) {
	m := matrix.New([]matrix.Entry{
		{Level: 1, Designation: "Sales Manager", UpperLimit: ceiling(10_000)},
	})

	_, ok := m.RequiredLevel(values.NewAmountFromFloat(20_000))
	assert.False(t, ok, "amount above every bounded tier has no required level")
}

func TestMatrix_RequiredLevel_TieBreakOnLevel(t *testing.T) {
	m := matrix.New([]matrix.Entry{
		{Level: 4, Designation: "VP Finance", UpperLimit: ceiling(50_000)},
		{Level: 2, Designation: "Controller", UpperLimit: ceiling(50_000)},
	})

	level, ok := m.RequiredLevel(values.NewAmountFromFloat(30_000))
	require.True(t, ok)
	assert.Equal(t, 2, level, "equal ceilings break ties on the smaller level")
}

func TestMatrix_ResolveDesignation(t *testing.T) {
	m := threeTier()

	tests := []struct {
		name        string
		designation string
		wantKind    matrix.ResolutionKind
		wantLevel   int
	}{
		{
			name:        "exact match ignoring case and padding",
			designation: "  finance controller ",
			wantKind:    matrix.KindLevel,
			wantLevel:   2,
		},
		{
			name:        "forward substring: tier designation inside input",
			designation: "Senior Sales Manager - West",
			wantKind:    matrix.KindLevel,
			wantLevel:   1,
		},
		{
			name:        "reverse substring: input inside tier designation",
			designation: "Controller",
			wantKind:    matrix.KindLevel,
			wantLevel:   2,
		},
		{
			name:        "absent under all three strategies",
			designation: "Regional Manager",
			wantKind:    matrix.KindNotFound,
		},
		{
			name:        "empty designation",
			designation: "   ",
			wantKind:    matrix.KindUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := m.ResolveDesignation(tt.designation)
			require.Equal(t, tt.wantKind, r.Kind())
			if level, ok := r.Level(); ok {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestMatrix_ResolveDesignation_CascadeOrder(t *testing.T) {
	// "Director" is both a forward match for one tier and a reverse match
	// for another; the forward strategy must win.
	m := matrix.New([]matrix.Entry{
		{Level: 5, Designation: "Senior Director of Operations EMEA", UpperLimit: values.UnboundedCeiling()},
		{Level: 2, Designation: "Director", UpperLimit: ceiling(10_000)},
	})

	r := m.ResolveDesignation("Director of Operations")
	level, ok := r.Level()
	require.True(t, ok)
	assert.Equal(t, 2, level, "forward substring strategy runs before reverse")
}

func TestMatrix_ResolveDesignation_EmptyMatrix(t *testing.T) {
	r := matrix.New(nil).ResolveDesignation("Finance Director")
	assert.Equal(t, matrix.KindUnresolved, r.Kind(), "no tiers means nothing was consulted")
}

func TestSet_ForCategory(t *testing.T) {
	set := matrix.Set{"contract": threeTier()}

	_, ok := set.ForCategory("contract")
	assert.True(t, ok)
	_, ok = set.ForCategory("promotional")
	assert.False(t, ok)
}
