package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	apperrors "github.com/davidleathers/credit-memo-compliance/internal/domain/errors"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// resultHeader fixes the column order of the augmented table: the input
// columns first, then every derived field.
var resultHeader = []string{
	"Row #",
	"Memo",
	"Customer Name",
	"Date Of Approval",
	"Cm Date",
	"Reason",
	"Reason Class",
	"Amount",
	"Approver",
	"Approver Designation",
	"Required Approval Level",
	"Final Approver Level",
	"Final Approver",
	"SOX Status",
	"Risk Level",
	"Violation Reason",
	"Missing Approvals",
	"Approval Timeline (Business Days)",
	"Timeline Status",
	"Approval Sequence",
	"Designation Level Check",
	"Duplicate Memo",
}

// WriteResults emits the augmented record table as CSV, one row per
// validated memo in input order.
func WriteResults(w io.Writer, results []memo.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return apperrors.NewIngestionError("RESULTS_HEADER", "writing results header").WithCause(err)
	}

	for i, res := range results {
		row := []string{
			strconv.Itoa(i + 1),
			res.Record.Memo,
			res.Record.CustomerName,
			formatDate(res.Record.ApprovalDate),
			formatDate(res.Record.CMDate),
			res.Record.Reason,
			string(res.Outcome.ReasonClass),
			res.Record.Amount.String(),
			res.Record.Approver,
			res.Record.ApproverDesignation,
			formatLevel(res.Outcome.RequiredLevel),
			formatLevel(res.Outcome.ApproverLevel),
			res.Outcome.FinalApprover,
			string(res.Outcome.Status),
			string(res.Outcome.Risk),
			res.Outcome.ViolationReason,
			res.Outcome.MissingApprovals,
			formatLevel(res.Outcome.TimelineDays),
			res.Outcome.TimelineStatus,
			res.Outcome.ApprovalSequence,
			res.Outcome.DesignationLevelCheck,
			res.Outcome.DuplicateMemo,
		}
		if err := cw.Write(row); err != nil {
			return apperrors.NewIngestionError("RESULTS_ROW", "writing results row").WithCause(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.NewIngestionError("RESULTS_FLUSH", "flushing results").WithCause(err)
	}
	return nil
}

// SaveResults writes the augmented table to a file on disk.
func SaveResults(path string, results []memo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewIngestionError("RESULTS_CREATE", "creating results file").WithCause(err)
	}
	defer f.Close()
	return WriteResults(f, results)
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

func formatLevel(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
