// Package amountparse normalizes numeric tokens found in OCR text into
// decimal values. OCR output mixes separator conventions ("1,234.56",
// "1.234,56", "1'234.50", "1 234,56"); parsing is strict about the cases
// that cannot be disambiguated.
package amountparse

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber indicates the token cannot be read as a monetary amount.
var ErrNotANumber = errors.New("token is not a numeric amount")

// ErrAmbiguousFormat indicates the digit grouping cannot be resolved
// between thousands-separator and decimal-separator conventions.
var ErrAmbiguousFormat = errors.New("ambiguous digit grouping")

// tokenRegex matches numeric tokens, allowing dot, comma, apostrophe and
// space as interior separators.
var tokenRegex = regexp.MustCompile(`\d(?:[\d.,'\x{202f}\x{00a0} ]*\d)?`)

// FindTokens returns the numeric tokens in a line, in order of appearance.
func FindTokens(line string) []string {
	matches := tokenRegex.FindAllString(line, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}

// Parse converts a numeric token into a non-negative decimal value.
//
// Rules, in order:
//   - apostrophes and interior spaces are grouping separators and are dropped;
//   - when both '.' and ',' appear, the later one is the decimal separator;
//   - a single separator followed by exactly three digits is grouping
//     (a two-minor-unit amount never carries three decimals);
//   - a single separator followed by one or two digits is the decimal mark;
//   - repeated occurrences of one separator are grouping;
//   - anything else is rejected as ambiguous.
func Parse(token string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("'", "", " ", "", "\u202f", "", "\u00a0", "").Replace(strings.TrimSpace(token))
	if cleaned == "" {
		return decimal.Zero, ErrNotANumber
	}
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return decimal.Zero, ErrNotANumber
		}
	}
	if strings.HasPrefix(cleaned, ".") || strings.HasPrefix(cleaned, ",") ||
		strings.HasSuffix(cleaned, ".") || strings.HasSuffix(cleaned, ",") {
		return decimal.Zero, ErrNotANumber
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	var normalized string
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Both present: the later separator is the decimal mark.
		if lastDot > lastComma {
			normalized = strings.ReplaceAll(cleaned, ",", "")
		} else {
			normalized = strings.ReplaceAll(strings.ReplaceAll(cleaned, ".", ""), ",", ".")
		}
	case lastDot >= 0:
		normalized = resolveSingleSeparator(cleaned, ".")
	case lastComma >= 0:
		normalized = resolveSingleSeparator(cleaned, ",")
	default:
		normalized = cleaned
	}
	if normalized == "" {
		return decimal.Zero, ErrAmbiguousFormat
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return value, nil
}

// resolveSingleSeparator handles tokens containing only one separator kind.
// Returns "" when the grouping is ambiguous.
func resolveSingleSeparator(cleaned, sep string) string {
	parts := strings.Split(cleaned, sep)
	if len(parts) > 2 {
		// "1,234,567" or "12,34,567" (lakh grouping): all grouping.
		return strings.Join(parts, "")
	}

	head, tail := parts[0], parts[1]
	switch len(tail) {
	case 1, 2:
		// "42,50" / "7.5": decimal mark.
		return head + "." + tail
	case 3:
		// "1,234": grouping, provided the head looks like a leading group.
		if len(head) >= 1 && len(head) <= 3 {
			return head + tail
		}
		// "1234,567" could be 1234.567 or a mangled 1,234,567.
		return ""
	default:
		// Four or more digits after a lone separator is no known convention.
		return ""
	}
}

// FractionDigits returns how many decimal places the value carries.
func FractionDigits(value decimal.Decimal) int {
	if exp := value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}
