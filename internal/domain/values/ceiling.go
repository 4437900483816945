package values

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountCeiling is the inclusive upper bound of an approval-matrix tier.
// An unbounded ceiling represents an open-ended top tier ("Above 50,000",
// an "up to" phrase with no parseable number, or an unparseable range).
type AmountCeiling struct {
	limit     decimal.Decimal
	unbounded bool
}

// NewAmountCeiling creates a bounded ceiling
func NewAmountCeiling(limit decimal.Decimal) AmountCeiling {
	return AmountCeiling{limit: limit}
}

// UnboundedCeiling returns the open-ended ceiling
func UnboundedCeiling() AmountCeiling {
	return AmountCeiling{unbounded: true}
}

var (
	digitsAndDots = regexp.MustCompile(`[^\d.]`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseAmountCeiling parses an amount-range cell into its upper bound.
// Recognized shapes, checked in order:
//   - "Up to 10,000"        -> 10000
//   - "10,001 – 50,000"     -> 50000 (en dash or hyphen)
//   - "Above 50,000"        -> unbounded
//   - anything else         -> the last number in the text, else unbounded
func ParseAmountCeiling(raw string) AmountCeiling {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	low := strings.ToLower(s)

	if strings.HasPrefix(low, "up to") {
		tail := low[len("up to"):]
		return ceilingFromDigits(digitsAndDots.ReplaceAllString(tail, ""))
	}

	if sep := rangeSeparator(s); sep != "" {
		parts := strings.Split(s, sep)
		right := parts[len(parts)-1]
		return ceilingFromDigits(digitsAndDots.ReplaceAllString(right, ""))
	}

	if strings.HasPrefix(low, "above") {
		return UnboundedCeiling()
	}

	nums := numberPattern.FindAllString(s, -1)
	if len(nums) == 0 {
		return UnboundedCeiling()
	}
	return ceilingFromDigits(nums[len(nums)-1])
}

// rangeSeparator prefers the en dash when both appear in the cell.
func rangeSeparator(s string) string {
	if strings.Contains(s, "–") {
		return "–"
	}
	if strings.Contains(s, "-") {
		return "-"
	}
	return ""
}

func ceilingFromDigits(digits string) AmountCeiling {
	if digits == "" {
		return UnboundedCeiling()
	}
	limit, err := decimal.NewFromString(digits)
	if err != nil {
		return UnboundedCeiling()
	}
	return NewAmountCeiling(limit)
}

// Unbounded reports whether the ceiling is open-ended
func (c AmountCeiling) Unbounded() bool {
	return c.unbounded
}

// Limit returns the bound and whether one exists
func (c AmountCeiling) Limit() (decimal.Decimal, bool) {
	return c.limit, !c.unbounded
}

// Covers reports whether an amount falls at or under the ceiling
func (c AmountCeiling) Covers(amount decimal.Decimal) bool {
	if c.unbounded {
		return true
	}
	return c.limit.GreaterThanOrEqual(amount)
}

// Less orders ceilings ascending with unbounded last. Two unbounded
// ceilings compare equal.
func (c AmountCeiling) Less(other AmountCeiling) bool {
	if c.unbounded {
		return false
	}
	if other.unbounded {
		return true
	}
	return c.limit.LessThan(other.limit)
}

// String returns the bound as a plain decimal, or "Unlimited"
func (c AmountCeiling) String() string {
	if c.unbounded {
		return "Unlimited"
	}
	return c.limit.String()
}
