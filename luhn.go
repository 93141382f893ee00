package paysdk

// LuhnValid reports whether digits passes the mod-10 Luhn checksum: every
// second digit from the right is doubled (minus nine when it overflows) and
// the total must divide by ten. The input must already be stripped of
// non-digits; an empty string is invalid, as is any non-digit byte.
func LuhnValid(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		n := int(c - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}
