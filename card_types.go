package paysdk

import "regexp"

// CardNetwork identifies a card scheme.
type CardNetwork string

// Networks the classifier can recognize.
const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkJCB        CardNetwork = "jcb"
	NetworkMaestro    CardNetwork = "maestro"
	NetworkDiners     CardNetwork = "diners"
	NetworkUnknown    CardNetwork = "unknown"
)

// CardType bundles a network's prefix pattern with its formatting and
// length rules.
type CardType struct {
	Network CardNetwork
	// Pattern matches the leading digits that place a number in this
	// network.
	Pattern *regexp.Regexp
	// Format applies the network's digit grouping for display.
	Format func(digits string) string
	// MinLength and MaxLength bound the digit count of a complete number.
	MinLength int
	MaxLength int
	// MaxFieldLength bounds the formatted value, spaces included.
	MaxFieldLength int
	// MinCVVLength and MaxCVVLength bound the security code.
	MinCVVLength int
	MaxCVVLength int
}

// cardTypes is evaluated in this exact order. Some prefix ranges overlap
// (Maestro shares 5-series prefixes that a loose Mastercard range check
// would also accept), so classification is first-match-wins, not best-match.
var cardTypes = []CardType{
	{
		Network:        NetworkVisa,
		Pattern:        regexp.MustCompile(`^4`),
		Format:         formatEveryFour,
		MinLength:      16,
		MaxLength:      19,
		MaxFieldLength: 23,
		MinCVVLength:   3,
		MaxCVVLength:   3,
	},
	{
		Network:        NetworkMastercard,
		Pattern:        regexp.MustCompile(`^(5[1-5]|2[2-7])`),
		Format:         formatEveryFour,
		MinLength:      16,
		MaxLength:      16,
		MaxFieldLength: 19,
		MinCVVLength:   3,
		MaxCVVLength:   3,
	},
	{
		Network:        NetworkAmex,
		Pattern:        regexp.MustCompile(`^3[47]`),
		Format:         formatFourSixRest,
		MinLength:      15,
		MaxLength:      15,
		MaxFieldLength: 17,
		MinCVVLength:   4,
		MaxCVVLength:   4,
	},
	{
		Network:        NetworkJCB,
		Pattern:        regexp.MustCompile(`^35(2[89]|[3-8])`),
		Format:         formatEveryFour,
		MinLength:      16,
		MaxLength:      19,
		MaxFieldLength: 23,
		MinCVVLength:   3,
		MaxCVVLength:   3,
	},
	{
		Network:        NetworkMaestro,
		Pattern:        regexp.MustCompile(`^(5018|5020|5038|5893|6304|6759|676[1-3])`),
		Format:         formatEveryFour,
		MinLength:      12,
		MaxLength:      19,
		MaxFieldLength: 23,
		MinCVVLength:   3,
		MaxCVVLength:   3,
	},
	{
		Network:        NetworkDiners,
		Pattern:        regexp.MustCompile(`^3(0[0-5]|[689])`),
		Format:         formatFourSixRest,
		MinLength:      14,
		MaxLength:      16,
		MaxFieldLength: 18,
		MinCVVLength:   3,
		MaxCVVLength:   3,
	},
}

// unknownCardType is the sentinel returned for unmatched or empty input.
var unknownCardType = CardType{
	Network:        NetworkUnknown,
	Format:         formatEveryFour,
	MinLength:      16,
	MaxLength:      19,
	MaxFieldLength: 23,
	MinCVVLength:   3,
	MaxCVVLength:   4,
}

// ClassifyCardType strips non-digits from raw and returns the first network
// in priority order whose prefix pattern matches, or the unknown sentinel.
// When allowed is non-empty, networks absent from it are skipped entirely.
func ClassifyCardType(raw string, allowed ...CardNetwork) CardType {
	digits := stripNonDigits(raw)
	if digits == "" {
		return unknownCardType
	}
	for _, ct := range cardTypes {
		if len(allowed) > 0 && !networkAllowed(allowed, ct.Network) {
			continue
		}
		if ct.Pattern.MatchString(digits) {
			return ct
		}
	}
	return unknownCardType
}

func networkAllowed(allowed []CardNetwork, network CardNetwork) bool {
	for _, n := range allowed {
		if n == network {
			return true
		}
	}
	return false
}
