package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in hundredths (centavos). It mirrors the
// DECIMAL(10,2) column it is stored in.
type Amount int64

// maxAmount is the largest value DECIMAL(10,2) can hold.
const maxAmount Amount = 99999999_99

// ParseAmount parses a decimal string such as "50", "50.5" or "50.00".
// More than two fractional digits, signs other than a leading '-', and
// exponents are rejected.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidInput)
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !digitsOnly(whole) || (hasFrac && (frac == "" || !digitsOnly(frac))) {
		return 0, fmt.Errorf("%w: malformed amount %q", ErrInvalidInput, s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: amount %q has more than two decimal places", ErrInvalidInput, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q out of range", ErrInvalidInput, s)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)

	a := Amount(units*100 + cents)
	if units > int64(maxAmount/100) || a > maxAmount {
		return 0, fmt.Errorf("%w: amount %q out of range", ErrInvalidInput, s)
	}
	if neg {
		a = -a
	}
	return a, nil
}

// Cents returns the amount in hundredths.
func (a Amount) Cents() int64 { return int64(a) }

// String renders the amount with exactly two decimals.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a JSON number with two decimals, e.g. 50.00.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
