package service

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// MinPhoneDigits is the shortest normalized number accepted for sending
const MinPhoneDigits = 9

// knownCountryCodes are dialing codes of the Arabic-speaking region. A number
// starting with one of them is treated as already international.
var knownCountryCodes = []string{
	"966", "971", "20", "249", "967", "962", "965", "974", "973", "968",
	"964", "212", "213", "216", "218", "970", "961", "963", "222",
}

// localRule maps a national number with a trunk prefix and exact length to
// its international form by replacing the leading zero with a country code.
type localRule struct {
	prefix string
	length int
	code   func(country string) string
}

func fixedCode(code string) func(string) string {
	return func(string) string { return code }
}

// localRules are evaluated in order; the first match wins
var localRules = []localRule{
	{prefix: "01", length: 11, code: fixedCode("20")},  // Egypt
	{prefix: "09", length: 10, code: fixedCode("249")}, // Sudan
	{prefix: "07", length: 9, code: fixedCode("967")},  // Yemen
	{prefix: "07", length: 10, code: fixedCode("962")}, // Jordan
	{prefix: "05", length: 10, code: saudiOrEmirati},   // KSA / UAE
}

func saudiOrEmirati(country string) string {
	if isUAE(country) {
		return "971"
	}
	return "966"
}

func isUAE(country string) bool {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "UAE", "AE", "ARE":
		return true
	default:
		return false
	}
}

var (
	nonDigits    = regexp.MustCompile(`[^0-9]`)
	arabicDigits = strings.NewReplacer(
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
		"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
		"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
		"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	)
)

// NormalizePhone converts a raw phone number into "+<digits>" form. Numbers
// already carrying a known country code pass through untouched; otherwise
// the regional local-format rules apply. The result is "" when no digits remain.
func NormalizePhone(phone, country string) string {
	raw := nonDigits.ReplaceAllString(arabicDigits.Replace(phone), "")
	if raw == "" {
		return ""
	}

	if lo.ContainsBy(knownCountryCodes, func(code string) bool { return strings.HasPrefix(raw, code) }) {
		return "+" + raw
	}

	for _, rule := range localRules {
		if strings.HasPrefix(raw, rule.prefix) && len(raw) == rule.length {
			return "+" + rule.code(country) + raw[1:]
		}
	}

	return "+" + raw
}

// PhoneDigits strips the leading "+" used by NormalizePhone
func PhoneDigits(e164 string) string {
	return strings.TrimPrefix(e164, "+")
}

// ValidPhoneDigits reports whether digits are long enough to be dialable
func ValidPhoneDigits(digits string) bool {
	return digits != "" && len(digits) >= MinPhoneDigits
}
