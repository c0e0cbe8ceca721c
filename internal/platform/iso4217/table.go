// Package iso4217 holds the immutable ISO 4217 reference table used across
// the service. The table is initialised once at package load and is safe for
// concurrent readers.
package iso4217

import (
	"regexp"
	"sort"
	"strings"
)

// codes is the set of recognized 3-letter ISO 4217 currency codes.
var codes = map[string]struct{}{
	"AED": {}, "AFN": {}, "ALL": {}, "AMD": {}, "ANG": {}, "AOA": {}, "ARS": {}, "AUD": {}, "AWG": {}, "AZN": {},
	"BAM": {}, "BBD": {}, "BDT": {}, "BGN": {}, "BHD": {}, "BIF": {}, "BMD": {}, "BND": {}, "BOB": {}, "BRL": {},
	"BSD": {}, "BTN": {}, "BWP": {}, "BYN": {}, "BZD": {},
	"CAD": {}, "CDF": {}, "CHF": {}, "CLP": {}, "CNY": {}, "COP": {}, "CRC": {}, "CUP": {}, "CVE": {}, "CZK": {},
	"DJF": {}, "DKK": {}, "DOP": {}, "DZD": {},
	"EGP": {}, "ERN": {}, "ETB": {}, "EUR": {},
	"FJD": {}, "FKP": {},
	"GBP": {}, "GEL": {}, "GGP": {}, "GHS": {}, "GIP": {}, "GMD": {}, "GNF": {}, "GTQ": {}, "GYD": {},
	"HKD": {}, "HNL": {}, "HRK": {}, "HTG": {}, "HUF": {},
	"IDR": {}, "ILS": {}, "IMP": {}, "INR": {}, "IQD": {}, "IRR": {}, "ISK": {},
	"JEP": {}, "JMD": {}, "JOD": {}, "JPY": {},
	"KES": {}, "KGS": {}, "KHR": {}, "KMF": {}, "KPW": {}, "KRW": {}, "KWD": {}, "KYD": {}, "KZT": {},
	"LAK": {}, "LBP": {}, "LKR": {}, "LRD": {}, "LSL": {}, "LYD": {},
	"MAD": {}, "MDL": {}, "MGA": {}, "MKD": {}, "MMK": {}, "MNT": {}, "MOP": {}, "MRU": {}, "MUR": {}, "MVR": {},
	"MWK": {}, "MXN": {}, "MYR": {}, "MZN": {},
	"NAD": {}, "NGN": {}, "NIO": {}, "NOK": {}, "NPR": {}, "NZD": {},
	"OMR": {},
	"PAB": {}, "PEN": {}, "PGK": {}, "PHP": {}, "PKR": {}, "PLN": {}, "PYG": {},
	"QAR": {},
	"RON": {}, "RSD": {}, "RUB": {}, "RWF": {},
	"SAR": {}, "SBD": {}, "SCR": {}, "SDG": {}, "SEK": {}, "SGD": {}, "SHP": {}, "SLL": {}, "SOS": {}, "SPL": {},
	"SRD": {}, "STN": {}, "SYP": {}, "SZL": {},
	"THB": {}, "TJS": {}, "TMT": {}, "TND": {}, "TOP": {}, "TRY": {}, "TTD": {}, "TVD": {}, "TWD": {}, "TZS": {},
	"UAH": {}, "UGX": {}, "USD": {}, "UYU": {}, "UZS": {},
	"VEF": {}, "VES": {}, "VND": {}, "VUV": {},
	"WST": {},
	"XAF": {}, "XCD": {}, "XDR": {}, "XOF": {}, "XPF": {},
	"YER": {},
	"ZAR": {}, "ZMW": {}, "ZWD": {},
}

// symbolCodes maps currency symbols to the codes they can stand for.
// Ambiguous symbols ("$", "£", "kr") map to every plausible code; the
// extractor resolves the ambiguity with company-currency priority.
var symbolCodes = map[string][]string{
	"$":  {"USD", "AUD", "CAD", "NZD", "HKD", "SGD", "MXN", "ARS", "CLP", "COP"},
	"€":  {"EUR"},
	"£":  {"GBP", "FKP", "GIP", "IMP", "JEP", "SHP"},
	"¥":  {"JPY", "CNY"},
	"₹":  {"INR"},
	"₨":  {"PKR", "LKR", "NPR", "MUR", "SCR"},
	"₱":  {"PHP"},
	"₩":  {"KRW"},
	"₽":  {"RUB"},
	"₴":  {"UAH"},
	"₦":  {"NGN"},
	"₡":  {"CRC"},
	"₪":  {"ILS"},
	"₺":  {"TRY"},
	"₵":  {"GHS"},
	"₸":  {"KZT"},
	"₮":  {"MNT"},
	"₾":  {"GEL"},
	"₼":  {"AZN"},
	"₫":  {"VND"},
	"៛":  {"KHR"},
	"₭":  {"LAK"},
	"₲":  {"PYG"},
	"﷼":  {"IRR", "OMR", "QAR", "SAR", "YER"},
	"Fr": {"CHF", "CDF", "BIF", "DJF", "GNF", "KMF", "RWF"},
	"R$": {"BRL"},
	"kr": {"SEK", "NOK", "DKK", "ISK"},
	"Kč": {"CZK"},
	"zł": {"PLN"},
	"lei": {"RON"},
	"Ft": {"HUF"},
}

// zeroDecimal lists currencies with no minor unit.
var zeroDecimal = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "ISK": {}, "JPY": {}, "KMF": {}, "KRW": {},
	"PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// displayNames covers the currencies we render by name; everything else
// falls back to the code itself.
var displayNames = map[string]string{
	"CHF": "Swiss Franc",
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"INR": "Indian Rupee",
	"JPY": "Japanese Yen",
	"CNY": "Chinese Yuan",
	"PKR": "Pakistani Rupee",
	"BDT": "Bangladeshi Taka",
	"NGN": "Nigerian Naira",
	"THB": "Thai Baht",
	"VND": "Vietnamese Dong",
}

var (
	codeRegex     *regexp.Regexp
	sortedCodes   []string
	codeToSymbol  map[string]string
	symbolRegexes map[string]*regexp.Regexp
)

func init() {
	sortedCodes = make([]string, 0, len(codes))
	for code := range codes {
		sortedCodes = append(sortedCodes, code)
	}
	sort.Strings(sortedCodes)

	// One alternation with word boundaries, so "INCH" never matches "INR".
	codeRegex = regexp.MustCompile(`\b(` + strings.Join(sortedCodes, "|") + `)\b`)

	codeToSymbol = make(map[string]string)
	for symbol, symCodes := range symbolCodes {
		for _, code := range symCodes {
			if _, ok := codeToSymbol[code]; !ok {
				codeToSymbol[code] = symbol
			}
		}
	}
	// "$" is the canonical symbol for dollar currencies regardless of map order.
	for _, code := range symbolCodes["$"] {
		codeToSymbol[code] = "$"
	}
	codeToSymbol["EUR"] = "€"
	codeToSymbol["GBP"] = "£"
	codeToSymbol["JPY"] = "¥"
	codeToSymbol["CHF"] = "Fr"

	symbolRegexes = make(map[string]*regexp.Regexp)
	for symbol := range symbolCodes {
		if letterSymbol(symbol) {
			symbolRegexes[symbol] = regexp.MustCompile(`\b` + regexp.QuoteMeta(symbol) + `\b`)
		}
	}
}

// Codes returns all recognized currency codes in sorted order.
func Codes() []string {
	out := make([]string, len(sortedCodes))
	copy(out, sortedCodes)
	return out
}

// IsValid reports whether code is a member of the ISO 4217 set.
// Unrecognized codes are rejected, never guessed.
func IsValid(code string) bool {
	_, ok := codes[strings.ToUpper(code)]
	return ok
}

// Precision returns the minor unit count for a currency code.
func Precision(code string) int {
	if IsZeroDecimal(code) {
		return 0
	}
	return 2
}

// IsZeroDecimal reports whether the currency has no minor unit (e.g. JPY).
func IsZeroDecimal(code string) bool {
	_, ok := zeroDecimal[strings.ToUpper(code)]
	return ok
}

// DisplayName returns a human readable name for the code, falling back to
// the code itself.
func DisplayName(code string) string {
	if name, ok := displayNames[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// SymbolFor returns a display symbol for the code, falling back to the code.
func SymbolFor(code string) string {
	if sym, ok := codeToSymbol[strings.ToUpper(code)]; ok {
		return sym
	}
	return strings.ToUpper(code)
}

// letterSymbol matches symbols spelled with plain letters ("Fr", "kr", "lei").
// Those need word boundaries; a bare substring check would fire on any text.
func letterSymbol(symbol string) bool {
	for _, r := range symbol {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// DetectCurrencies returns the distinct currency codes suggested by the
// text, via ISO codes first and then currency symbols. The result is sorted
// for determinism.
func DetectCurrencies(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, match := range codeRegex.FindAllString(strings.ToUpper(text), -1) {
		seen[match] = struct{}{}
	}

	for symbol, symCodes := range symbolCodes {
		var found bool
		if re, ok := symbolRegexes[symbol]; ok {
			found = re.MatchString(text)
		} else {
			found = strings.Contains(text, symbol)
		}
		if found {
			for _, code := range symCodes {
				seen[code] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	detected := make([]string, 0, len(seen))
	for code := range seen {
		detected = append(detected, code)
	}
	sort.Strings(detected)
	return detected
}
