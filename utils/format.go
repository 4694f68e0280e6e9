package utils

import "strings"

// Input formatters for the checkout form. These reshape what the user typed
// for display only; they check nothing (no Luhn, no date validity).

const (
	maxPhoneDigits  = 13
	maxCardDigits   = 16
	maxExpiryDigits = 4
)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone groups digits as "(xxx) xxx-xxxx"; partial input yields the
// longest valid prefix of that shape.
func FormatPhone(input string) string {
	d := digitsOnly(input)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// FormatCardNumber spaces card digits into groups of 4.
func FormatCardNumber(input string) string {
	d := digitsOnly(input)
	if len(d) > maxCardDigits {
		d = d[:maxCardDigits]
	}
	var groups []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		groups = append(groups, d[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiry reshapes expiry digits into "MM/YY".
func FormatExpiry(input string) string {
	d := digitsOnly(input)
	if len(d) > maxExpiryDigits {
		d = d[:maxExpiryDigits]
	}
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}
