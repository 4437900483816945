package validation

import (
	"fmt"
	"time"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// timelineOutcome is the final verdict after the timeline stage, plus the
// timeline bookkeeping fields appended to the record.
type timelineOutcome struct {
	Status   memo.SOXStatus
	Risk     memo.RiskLevel
	Missing  string
	Days     *int
	Timeline string
	Sequence string
}

// timelineEvaluator checks date presence, chronological order, and the
// business-day SLA. The expected order is approval first, then memo
// creation within the SLA window.
type timelineEvaluator struct {
	slaDays int
}

// Evaluate finalizes the verdict. Branches run in fixed order:
//
//   - either date missing: timeline fields flag it; a pending approval
//     verdict becomes Violation/High, an existing violation is untouched
//   - approval after CM creation: unconditional Violation/High, whatever
//     the approval stage decided
//   - in order, within SLA: confirms a pending verdict as Compliant/Low;
//     an existing violation is untouched
//   - in order, over SLA: unconditional Violation/Medium. The overwrite
//     can downgrade an already-High approval violation.
func (e timelineEvaluator) Evaluate(cmDate, approvalDate *time.Time, approval approvalOutcome) timelineOutcome {
	if cmDate == nil || approvalDate == nil {
		out := timelineOutcome{
			Status:   approval.Status,
			Risk:     approval.Risk,
			Missing:  approval.Missing,
			Timeline: memo.TimelineDatesMissing,
			Sequence: memo.SequenceDatesMissing,
		}
		if approval.Compliant {
			out.Status = memo.StatusViolation
			out.Risk = memo.RiskHigh
			out.Missing = "Timeline: Dates missing"
		}
		return out
	}

	if approvalDate.After(*cmDate) {
		days := businessDaysBetween(*cmDate, *approvalDate)
		return timelineOutcome{
			Status:   memo.StatusViolation,
			Risk:     memo.RiskHigh,
			Missing:  "Approval Date: Approved after CM creation",
			Days:     &days,
			Timeline: memo.TimelineAfterCM,
			Sequence: memo.SequenceAfterCM,
		}
	}

	days := businessDaysBetween(*approvalDate, *cmDate)
	if days <= e.slaDays {
		out := timelineOutcome{
			Status:   approval.Status,
			Risk:     approval.Risk,
			Missing:  approval.Missing,
			Days:     &days,
			Timeline: fmt.Sprintf("Within %d days", e.slaDays),
			Sequence: memo.SequenceOrderOK,
		}
		if approval.Compliant {
			out.Status = memo.StatusCompliant
			out.Risk = memo.RiskLow
		}
		return out
	}

	return timelineOutcome{
		Status:   memo.StatusViolation,
		Risk:     memo.RiskMedium,
		Missing:  fmt.Sprintf("Timeline: CM created %d days after SLA threshold", days-e.slaDays),
		Days:     &days,
		Timeline: fmt.Sprintf("Over %d days", e.slaDays),
		Sequence: memo.SequenceSLAViolated,
	}
}

// businessDaysBetween counts weekday calendar dates in the closed interval
// [start, end] minus one: same weekday date yields 0, each full weekend is
// skipped, and an interval containing only weekend dates yields -1. Time of
// day is ignored.
func businessDaysBetween(start, end time.Time) int {
	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count - 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
