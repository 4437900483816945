package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// Date parses an ISO date into the pointer form records carry
func Date(t *testing.T, iso string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return &d
}

// RecordBuilder builds test credit-memo records. Defaults describe a
// fully compliant contract memo: approval two business days before the CM
// by a designation that exact-matches a sufficient tier.
type RecordBuilder struct {
	t   *testing.T
	rec memo.Record
}

// NewRecordBuilder creates a RecordBuilder with compliant defaults
func NewRecordBuilder(t *testing.T) *RecordBuilder {
	t.Helper()
	return &RecordBuilder{
		t: t,
		rec: memo.Record{
			Memo:                "CM-1001",
			CustomerName:        "Acme Industrial",
			CMDate:              Date(t, "2024-01-05"),
			CreatedBy:           "Dana Whitfield",
			Amount:              values.NewAmountFromFloat(50_000),
			Reason:              "Contract settlement adjustment",
			ApprovalDate:        Date(t, "2024-01-02"),
			Approver:            "Priya Nair",
			ApproverDesignation: "Finance Controller",
		},
	}
}

func (b *RecordBuilder) WithMemo(id string) *RecordBuilder {
	b.rec.Memo = id
	return b
}

func (b *RecordBuilder) WithAmount(amount float64) *RecordBuilder {
	b.rec.Amount = values.NewAmountFromFloat(amount)
	return b
}

func (b *RecordBuilder) WithUndefinedAmount() *RecordBuilder {
	b.rec.Amount = values.UndefinedAmount()
	return b
}

func (b *RecordBuilder) WithReason(reason string) *RecordBuilder {
	b.rec.Reason = reason
	return b
}

func (b *RecordBuilder) WithCMDate(iso string) *RecordBuilder {
	b.rec.CMDate = Date(b.t, iso)
	return b
}

func (b *RecordBuilder) WithoutCMDate() *RecordBuilder {
	b.rec.CMDate = nil
	return b
}

func (b *RecordBuilder) WithApprovalDate(iso string) *RecordBuilder {
	b.rec.ApprovalDate = Date(b.t, iso)
	return b
}

func (b *RecordBuilder) WithoutApprovalDate() *RecordBuilder {
	b.rec.ApprovalDate = nil
	return b
}

func (b *RecordBuilder) WithCreatedBy(name string) *RecordBuilder {
	b.rec.CreatedBy = name
	return b
}

func (b *RecordBuilder) WithApprover(name string) *RecordBuilder {
	b.rec.Approver = name
	return b
}

func (b *RecordBuilder) WithDesignation(designation string) *RecordBuilder {
	b.rec.ApproverDesignation = designation
	return b
}

// Build returns the assembled record
func (b *RecordBuilder) Build() memo.Record {
	return b.rec
}
