package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/matrix"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// approvalOutcome is the tentative verdict of the approval-level stage.
// Pending marks a record whose approval level is sufficient: the verdict
// fields stay neutral and the timeline stage makes the final call.
// Compliant mirrors Pending and is the flag the timeline stage branches on.
type approvalOutcome struct {
	Pending   bool
	Compliant bool
	Status    memo.SOXStatus
	Risk      memo.RiskLevel
	Missing   string
}

// approvalEvaluator compares the required level against the resolved
// approver level. Precedence is fixed; the first matching rule wins.
type approvalEvaluator struct {
	// missing approval levels at or above this count escalate risk to High
	missingLevelsForHigh int
}

// Evaluate applies the approval-compliance precedence:
//
//  1. amount or matrix unavailable (no required level)  -> Violation, High
//  2. designation missing (resolution never consulted)  -> Violation, High
//  3. designation consulted but not found               -> Violation, High
//  4. approver level sufficient                         -> Pending
//  5. approver level short                              -> Violation, Medium/High
//
// The designation argument is the record's raw text, used verbatim in the
// not-found message.
func (e approvalEvaluator) Evaluate(required *int, res matrix.Resolution, designation string) approvalOutcome {
	if required == nil {
		return approvalOutcome{
			Status:  memo.StatusViolation,
			Risk:    memo.RiskHigh,
			Missing: "Missing amount or matrix not available",
		}
	}

	switch res.Kind() {
	case matrix.KindUnresolved:
		return approvalOutcome{
			Status:  memo.StatusViolation,
			Risk:    memo.RiskHigh,
			Missing: "Approver designation missing",
		}
	case matrix.KindNotFound:
		return approvalOutcome{
			Status:  memo.StatusViolation,
			Risk:    memo.RiskHigh,
			Missing: fmt.Sprintf("Designation '%s' not found in matrix", designation),
		}
	}

	level, _ := res.Level()
	if level >= *required {
		return approvalOutcome{
			Pending:   true,
			Compliant: true,
			Missing:   memo.NoViolations,
		}
	}

	missing := make([]string, 0, *required-level)
	for l := level + 1; l <= *required; l++ {
		missing = append(missing, strconv.Itoa(l))
	}
	risk := memo.RiskMedium
	if len(missing) >= e.missingLevelsForHigh {
		risk = memo.RiskHigh
	}
	return approvalOutcome{
		Status:  memo.StatusViolation,
		Risk:    risk,
		Missing: fmt.Sprintf("Level %s Missing", strings.Join(missing, "–")),
	}
}
