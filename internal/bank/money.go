package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input such as "12", "12.5" or "$1,200.05" into
// cents. At most two decimal places are accepted. Zero, and values too
// large to hold in cents, are rejected with ErrBadAmount.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("parse amount: %w", ErrBadAmount)
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrBadAmount)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrBadAmount)
	}
	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("parse amount %q: %w", s, ErrBadAmount)
		}
	}
	total := units*100 + cents
	if total == 0 {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrBadAmount)
	}
	return total, nil
}

// FormatAmount renders cents as dollars with two decimals, e.g. "$12.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
