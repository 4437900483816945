package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

func TestReasonClassifier_Classify(t *testing.T) {
	tests := []struct {
		name        string
		promotional []string
		contract    []string
		reason      string
		want        memo.ReasonClass
	}{
		{
			name:   "promotional keyword",
			reason: "Promotional discount for Q3 campaign",
			want:   memo.ReasonPromotional,
		},
		{
			name:   "promotion variant",
			reason: "spring promotion credit",
			want:   memo.ReasonPromotional,
		},
		{
			name:   "contract keyword",
			reason: "Contract renegotiation adjustment",
			want:   memo.ReasonContract,
		},
		{
			name:   "promotional wins when both sets match",
			reason: "promotional allowance per contract terms",
			want:   memo.ReasonPromotional,
		},
		{
			name:   "no keyword falls through to Other",
			reason: "goodwill gesture",
			want:   memo.ReasonOther,
		},
		{
			name:   "empty reason",
			reason: "",
			want:   memo.ReasonOther,
		},
		{
			name:        "custom keyword sets",
			promotional: []string{"rebate"},
			contract:    []string{"msa"},
			reason:      "credit per MSA clause 4",
			want:        memo.ReasonContract,
		},
		{
			name:        "custom sets ignore the defaults",
			promotional: []string{"rebate"},
			contract:    []string{"msa"},
			reason:      "promotional credit",
			want:        memo.ReasonOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewReasonClassifier(tt.promotional, tt.contract)
			assert.Equal(t, tt.want, c.Classify(tt.reason))
		})
	}
}
