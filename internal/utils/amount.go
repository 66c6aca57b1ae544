package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmountMinor converts free-form operator input like "5", "5.2" or
// "$5.25" into currency minor units (cents). Parsing is done on the decimal
// string itself so values never round-trip through floating point.
func ParseAmountMinor(input string) (int64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount %q", input)
	}

	whole := s
	frac := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has sub-cent precision", input)
	}
	// Pad fractional part to exactly two digits
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", input, err)
	}

	return dollars*100 + cents, nil
}
