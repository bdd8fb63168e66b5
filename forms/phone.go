package forms

import (
	"regexp"
	"strings"
)

// saudiMobileRe is the sole acceptance predicate for a local mobile number:
// exactly nine digits, first digit 5.
var saudiMobileRe = regexp.MustCompile(`^5\d{8}$`)

const arabicZero, arabicNine = '٠', '٩'

// NormalizeSaudiPhone reduces an arbitrary user-typed phone string to the
// 9-digit local form. Arabic-Indic digits are mapped to ASCII, separators and
// the leading "+" are stripped, and a 00966/966/0 prefix is dropped. The
// result is not guaranteed to be valid; callers must check IsValidSaudiMobile.
func NormalizeSaudiPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= arabicZero && r <= arabicNine:
			b.WriteRune('0' + (r - arabicZero))
		}
	}

	n := b.String()
	switch {
	case strings.HasPrefix(n, "00966"):
		n = n[5:]
	case strings.HasPrefix(n, "966"):
		n = n[3:]
	case strings.HasPrefix(n, "0"):
		n = n[1:]
	}
	return n
}

// IsValidSaudiMobile reports whether local is a normalized Saudi mobile
// number.
func IsValidSaudiMobile(local string) bool {
	return saudiMobileRe.MatchString(local)
}

// FormatE164 renders a normalized local number in E.164 form. +966 is the
// only country code this system ever produces.
func FormatE164(local string) string {
	return "+966" + local
}
