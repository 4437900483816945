package validation

import (
	"strings"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
)

// Default keyword sets for reason classification
var (
	DefaultPromotionalKeywords = []string{"promotional", "promotion"}
	DefaultContractKeywords    = []string{"contract"}
)

// ReasonClassifier maps a memo's free-text reason to its policy category
// by case-insensitive substring search over two keyword sets. Promotional
// keywords are checked first, so a reason matching both sets classifies as
// Promotional. The classifier is pure and never fails: anything that
// matches neither set is Other.
type ReasonClassifier struct {
	promotional []string
	contract    []string
}

// NewReasonClassifier builds a classifier, falling back to the default
// keyword sets when a list is empty. Keywords are normalized to lower case.
func NewReasonClassifier(promotional, contract []string) ReasonClassifier {
	if len(promotional) == 0 {
		promotional = DefaultPromotionalKeywords
	}
	if len(contract) == 0 {
		contract = DefaultContractKeywords
	}
	return ReasonClassifier{
		promotional: lowerAll(promotional),
		contract:    lowerAll(contract),
	}
}

// Classify returns the policy category for a reason text
func (c ReasonClassifier) Classify(reason string) memo.ReasonClass {
	text := strings.ToLower(reason)
	if containsAny(text, c.promotional) {
		return memo.ReasonPromotional
	}
	if containsAny(text, c.contract) {
		return memo.ReasonContract
	}
	return memo.ReasonOther
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
