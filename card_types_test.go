package paysdk

import "testing"

func TestClassifyCardType(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw     string
		allowed []CardNetwork
		want    CardNetwork
	}{
		"visa":                    {raw: "4111111111111111", want: NetworkVisa},
		"visa single digit":       {raw: "4", want: NetworkVisa},
		"mastercard 5 series":     {raw: "5555555555554444", want: NetworkMastercard},
		"mastercard 2 series":     {raw: "2221000000000009", want: NetworkMastercard},
		"amex":                    {raw: "378282246310005", want: NetworkAmex},
		"jcb":                     {raw: "3530111333300000", want: NetworkJCB},
		"diners":                  {raw: "30569309025904", want: NetworkDiners},
		"maestro beats 5-series":  {raw: "5018000000000000", want: NetworkMaestro},
		"maestro 6759":            {raw: "6759000000000000", want: NetworkMaestro},
		"formatted input":         {raw: "4111 1111 1111 1111", want: NetworkVisa},
		"unmatched prefix":        {raw: "9999999999999999", want: NetworkUnknown},
		"empty input":             {raw: "", want: NetworkUnknown},
		"letters only":            {raw: "abcdef", want: NetworkUnknown},
		"allow-list hit":          {raw: "4111111111111111", allowed: []CardNetwork{NetworkVisa}, want: NetworkVisa},
		"allow-list miss":         {raw: "5555555555554444", allowed: []CardNetwork{NetworkVisa}, want: NetworkUnknown},
		"allow-list skips winner": {raw: "5018000000000000", allowed: []CardNetwork{NetworkMastercard}, want: NetworkUnknown},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyCardType(tt.raw, tt.allowed...)
			if got.Network != tt.want {
				t.Fatalf("ClassifyCardType(%q) = %s, want %s", tt.raw, got.Network, tt.want)
			}
		})
	}
}

func TestClassificationPriorityIsTableOrder(t *testing.T) {
	t.Parallel()

	// 5018 sits in Maestro's prefix list; a loose Mastercard range check
	// could also claim the 5 series. First match in table order must win.
	got := ClassifyCardType("5018000000000000")
	if got.Network != NetworkMaestro {
		t.Fatalf("expected maestro, got %s", got.Network)
	}
}

func TestUnknownSentinelRules(t *testing.T) {
	t.Parallel()

	ct := ClassifyCardType("")
	if ct.Network != NetworkUnknown {
		t.Fatalf("expected unknown sentinel, got %s", ct.Network)
	}
	if ct.MinCVVLength != 3 || ct.MaxCVVLength != 4 {
		t.Fatalf("unexpected CVV bounds %d-%d", ct.MinCVVLength, ct.MaxCVVLength)
	}
	if ct.Format == nil {
		t.Fatal("unknown sentinel must still format")
	}
}
