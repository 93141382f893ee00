package paysdk

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonDigit = regexp.MustCompile(`\D`)

// Expiry sanitizer rule set, applied in order. The exact chain governs the
// live-typing behavior of an MM/YY field and must stay stable.
var (
	expiryDisallowed  = regexp.MustCompile(`[^0-9/]`)
	expiryInsertSlash = regexp.MustCompile(`^([0-9]{2})(.{1,2})$`)
	expiryTrailingSep = regexp.MustCompile(`/([0-9]+)/`)
	expirySlashRun    = regexp.MustCompile(`/+`)
	expiryExtraDigit  = regexp.MustCompile(`([0-9]{2})[0-9]$`)
)

func stripNonDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// FormatCardNumber strips non-digits, classifies the number, truncates it to
// the network's maximum digit length, and applies the network's grouping.
// An optional allow-list restricts which networks classification considers.
func FormatCardNumber(raw string, allowed ...CardNetwork) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}
	ct := ClassifyCardType(digits, allowed...)
	if ct.MaxLength > 0 && len(digits) > ct.MaxLength {
		digits = digits[:ct.MaxLength]
	}
	return ct.Format(digits)
}

// FormatCardCVC strips everything but digits. Length is not enforced here;
// the field validator owns that rule.
func FormatCardCVC(raw string) string {
	return stripNonDigits(raw)
}

// FormatCardExpiry sanitizes an MM/YY field as keystrokes arrive:
//
//  1. drop every character except digits and '/'
//  2. insert the separator after two leading digits
//  3. collapse a duplicated separator trailing a value
//  4. collapse any run of slashes
//  5. truncate a third digit typed into the two-digit year segment
func FormatCardExpiry(raw string) string {
	s := expiryDisallowed.ReplaceAllString(raw, "")
	s = expiryInsertSlash.ReplaceAllString(s, "$1/$2")
	s = expiryTrailingSep.ReplaceAllString(s, "/$1")
	s = expirySlashRun.ReplaceAllString(s, "/")
	s = expiryExtraDigit.ReplaceAllString(s, "$1")
	return s
}

// BuildCardExpiry splits an MM/YY string into its month and year parts.
// Missing parts default to the empty string.
func BuildCardExpiry(expiry string) CardExpiry {
	month, year, _ := strings.Cut(expiry, "/")
	return CardExpiry{Month: month, Year: year}
}

// IsExpired reports whether a card expiry is in the past. The expiry is
// interpreted as the second calendar day of the month after the stated
// expiry month: one day of grace beyond "first of next month" to tolerate
// timezone skew. The two-digit year is expanded with the current century.
func IsExpired(year, month string) bool {
	return isExpiredAt(year, month, time.Now())
}

func isExpiredAt(year, month string, now time.Time) bool {
	m, err := strconv.Atoi(month)
	if err != nil {
		return true
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return true
	}
	century := now.Year() - now.Year()%100
	cutoff := time.Date(century+y, time.Month(m)+1, 2, 0, 0, 0, 0, time.UTC)
	return cutoff.Before(now)
}

// formatEveryFour groups digits 4-4-4-4 with a trailing partial group.
func formatEveryFour(digits string) string {
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// formatFourSixRest groups digits 4-6-rest, producing the 4-6-4 (14 digit),
// 4-6-5 (15 digit), and 4-6-6 (16 digit) spacings.
func formatFourSixRest(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	if len(digits) <= 10 {
		return digits[:4] + " " + digits[4:]
	}
	return digits[:4] + " " + digits[4:10] + " " + digits[10:]
}
