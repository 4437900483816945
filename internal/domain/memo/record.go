package memo

import (
	"time"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// Record is a normalized credit-memo row as delivered by the ingestion
// layer. Free-text fields arrive as-is; dates and the amount are already
// coerced, with nil/undefined marking cells that failed to parse.
type Record struct {
	Memo                string
	CustomerName        string
	CMDate              *time.Time
	CreatedBy           string
	Amount              values.Amount
	Reason              string
	ApprovalDate        *time.Time
	Approver            string
	ApproverDesignation string
}
