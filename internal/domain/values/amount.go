package values

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a credit-memo amount with explicit presence handling.
// Source cells are frequently blank or non-numeric; those parse to an
// undefined Amount rather than an error, and the rule engine turns the
// absence into a compliance violation downstream.
type Amount struct {
	value   decimal.Decimal
	defined bool
}

// NewAmount creates a defined Amount from a decimal value
func NewAmount(value decimal.Decimal) Amount {
	return Amount{value: value, defined: true}
}

// NewAmountFromFloat creates a defined Amount from a float64
// Note: Use with caution due to floating point precision issues
func NewAmountFromFloat(value float64) Amount {
	return NewAmount(decimal.NewFromFloat(value))
}

// UndefinedAmount returns the zero Amount with no value present
func UndefinedAmount() Amount {
	return Amount{}
}

// ParseAmount parses a raw amount cell. Thousands separators and a leading
// dollar sign are tolerated; anything else that fails decimal parsing
// yields an undefined Amount.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return UndefinedAmount()
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return UndefinedAmount()
	}
	return NewAmount(value)
}

// Defined reports whether the amount carries a value
func (a Amount) Defined() bool {
	return a.defined
}

// Value returns the decimal amount; zero when undefined
func (a Amount) Value() decimal.Decimal {
	return a.value
}

// String returns the plain decimal representation, or "" when undefined
func (a Amount) String() string {
	if !a.defined {
		return ""
	}
	return a.value.String()
}
