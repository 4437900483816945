package matrix

import (
	"sort"
	"strings"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// Entry is one tier of an approval matrix: the minimum approver level and
// the designation that holds it, valid for amounts up to UpperLimit
// inclusive.
type Entry struct {
	Level       int
	Designation string
	UpperLimit  values.AmountCeiling
}

// Matrix is the ordered tier list for a single policy category. Entries are
// kept sorted ascending by upper limit, then by level, so the first entry
// covering an amount is always the cheapest qualifying tier. A Matrix is
// immutable once built.
type Matrix struct {
	entries []Entry
}

// New builds a Matrix from tier entries, sorting them into canonical order
func New(entries []Entry) Matrix {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].UpperLimit.Less(sorted[j].UpperLimit) {
			return true
		}
		if sorted[j].UpperLimit.Less(sorted[i].UpperLimit) {
			return false
		}
		return sorted[i].Level < sorted[j].Level
	})
	return Matrix{entries: sorted}
}

// Entries returns the tiers in canonical order
func (m Matrix) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Empty reports whether the matrix has no tiers
func (m Matrix) Empty() bool {
	return len(m.entries) == 0
}

// RequiredLevel resolves the minimum approval level for an amount: among
// tiers whose upper limit covers the amount, the one with the smallest
// limit (ties broken by smallest level). Returns false when the amount is
// undefined or no tier covers it.
func (m Matrix) RequiredLevel(amount values.Amount) (int, bool) {
	if !amount.Defined() {
		return 0, false
	}
	for _, e := range m.entries {
		if e.UpperLimit.Covers(amount.Value()) {
			return e.Level, true
		}
	}
	return 0, false
}

// ResolveDesignation locates a free-text approver designation in the
// matrix through a case-insensitive three-strategy cascade:
//
//  1. exact match against a tier's designation
//  2. forward substring: the tier's designation occurs inside the input
//  3. reverse substring: the input occurs inside the tier's designation
//
// The first matching tier of the first matching strategy wins. An empty
// designation or an empty matrix resolves to Unresolved; a populated
// matrix that fails all three strategies resolves to NotFound.
func (m Matrix) ResolveDesignation(designation string) Resolution {
	input := strings.ToLower(strings.TrimSpace(designation))
	if input == "" || m.Empty() {
		return Unresolved()
	}

	for _, e := range m.entries {
		if strings.ToLower(strings.TrimSpace(e.Designation)) == input {
			return ResolvedLevel(e.Level)
		}
	}
	for _, e := range m.entries {
		if strings.Contains(input, strings.ToLower(strings.TrimSpace(e.Designation))) {
			return ResolvedLevel(e.Level)
		}
	}
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(strings.TrimSpace(e.Designation)), input) {
			return ResolvedLevel(e.Level)
		}
	}
	return NotFound()
}

// Set maps policy-category keys ("promotional", "contract", "other") to
// their matrices. Categories whose matrix failed to load are simply absent.
type Set map[string]Matrix

// ForCategory returns the matrix for a category key, if one was loaded
func (s Set) ForCategory(key string) (Matrix, bool) {
	m, ok := s[key]
	return m, ok
}
