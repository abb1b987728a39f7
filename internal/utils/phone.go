package utils

import "strings"

// NormalizePhone reduces a phone number to its canonical comparison form:
// every non-digit character is removed, then any leading zeros.
//
// "0349-1234567", "+92 349 1234567" and "00923491234567" do not all
// collapse to one value; only formatting and trunk zeros are ignored,
// country codes are not inferred.
//
// The result is idempotent: NormalizePhone(NormalizePhone(x)) == NormalizePhone(x).
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}
