package validation

import (
	"strings"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// aggregateViolations derives the structured violation summary for a
// record. Two sources contribute at most one entry each, in order: the
// Missing Approvals message (classified by substring into a missing-level,
// SLA, or generic approval issue) and the approval sequence (SLA breach or
// out-of-order approval). Messages join with " | "; an empty list reports
// "None" with a zero count.
func aggregateViolations(status memo.SOXStatus, missing, sequence, timelineStatus string) (string, int) {
	var reasons []string

	if status == memo.StatusViolation && missing != "" && missing != memo.NoViolations {
		switch {
		case strings.Contains(missing, "Level"):
			reasons = append(reasons, "Missing Approval: "+missing)
		case strings.Contains(missing, "Timeline"):
			reasons = append(reasons, "SLA Breach: "+missing)
		default:
			reasons = append(reasons, "Approval Issue: "+missing)
		}
	}

	switch {
	case strings.Contains(sequence, memo.SequenceSLAViolated):
		reasons = append(reasons, "SLA Exceeded: "+timelineStatus)
	case strings.Contains(sequence, memo.TimelineAfterCM):
		reasons = append(reasons, "Approval After CM Creation")
	}

	if len(reasons) == 0 {
		return memo.NoViolations, 0
	}
	return strings.Join(reasons, " | "), len(reasons)
}
