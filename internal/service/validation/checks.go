package validation

import (
	"strings"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// markDuplicates is the whole-set pass that runs before per-record
// evaluation. Memo identifiers are compared exactly (case-sensitive);
// every occurrence of a repeated identifier is flagged, not just the
// later ones.
func markDuplicates(records []memo.Record) []bool {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Memo]++
	}

	flags := make([]bool, len(records))
	for i, r := range records {
		flags[i] = counts[r.Memo] > 1
	}
	return flags
}

// checkSeparationOfDuties flags records whose creator and approver are the
// same person after trimming and case-folding. Blank identities on either
// side pass: an absent name is not evidence of self-approval.
func checkSeparationOfDuties(createdBy, approver string) string {
	creator := strings.TrimSpace(createdBy)
	appr := strings.TrimSpace(approver)
	if creator != "" && appr != "" && strings.EqualFold(creator, appr) {
		return memo.SoDViolation
	}
	return memo.SoDOK
}
