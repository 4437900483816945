package ingest

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

func TestWriteResults(t *testing.T) {
	cmDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	approvalDate := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	required, approver, days := 2, 2, 3

	results := []memo.Result{
		{
			Record: memo.Record{
				Memo:                "CM-1001",
				CustomerName:        "Acme Industrial",
				CMDate:              &cmDate,
				CreatedBy:           "Dana Whitfield",
				Amount:              values.ParseAmount("50,000"),
				Reason:              "Contract settlement",
				ApprovalDate:        &approvalDate,
				Approver:            "Priya Nair",
				ApproverDesignation: "Finance Controller",
			},
			Outcome: memo.Outcome{
				ReasonClass:           memo.ReasonContract,
				RequiredLevel:         &required,
				ApproverLevel:         &approver,
				FinalApprover:         "Finance Controller",
				Status:                memo.StatusCompliant,
				Risk:                  memo.RiskLow,
				MissingApprovals:      memo.NoViolations,
				ViolationReason:       memo.NoViolations,
				TimelineDays:          &days,
				TimelineStatus:        "Within 5 days",
				ApprovalSequence:      memo.SequenceOrderOK,
				DesignationLevelCheck: memo.SoDOK,
				DuplicateMemo:         memo.DuplicateNo,
			},
		},
		{
			Record: memo.Record{Memo: "CM-1002"},
			Outcome: memo.Outcome{
				ReasonClass:      memo.ReasonOther,
				Status:           memo.StatusViolation,
				Risk:             memo.RiskHigh,
				MissingApprovals: "Missing amount or matrix not available",
				TimelineStatus:   memo.TimelineDatesMissing,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, resultHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "CM-1001", first[1])
	assert.Equal(t, "2024-01-02", first[3], "approval date precedes the cm date column")
	assert.Equal(t, "2024-01-05", first[4])
	assert.Equal(t, "Contract", first[6])
	assert.Equal(t, "50000", first[7])
	assert.Equal(t, "2", first[10])
	assert.Equal(t, "SOX Compliant", first[13])
	assert.Equal(t, "3", first[17])

	second := rows[2]
	assert.Equal(t, "2", second[0])
	assert.Equal(t, "", second[4], "missing dates serialize as empty cells")
	assert.Equal(t, "", second[7], "undefined amounts serialize as empty cells")
	assert.Equal(t, "", second[10], "undefined levels serialize as empty cells")
	assert.Equal(t, "SOX Violation", second[13])
}
