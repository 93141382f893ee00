package paysdk

import "testing"

func TestLuhnValid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		digits string
		want   bool
	}{
		"visa test number":       {digits: "4111111111111111", want: true},
		"visa stripe test":       {digits: "4242424242424242", want: true},
		"mastercard test number": {digits: "5555555555554444", want: true},
		"amex test number":       {digits: "378282246310005", want: true},
		"jcb test number":        {digits: "3530111333300000", want: true},
		"maestro range number":   {digits: "5018000000000009", want: true},
		"single digit mutation":  {digits: "4111111111111112", want: false},
		"corrupted digit":        {digits: "4111111111111161", want: false},
		"empty string":           {digits: "", want: false},
		"non digit input":        {digits: "4111 1111", want: false},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := LuhnValid(tt.digits); got != tt.want {
				t.Fatalf("LuhnValid(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestLuhnValidRejectsEverySingleDigitMutation(t *testing.T) {
	t.Parallel()

	const valid = "4111111111111111"
	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[i] == d {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			if LuhnValid(mutated) {
				t.Fatalf("LuhnValid(%q) = true after mutating digit %d", mutated, i)
			}
		}
	}
}
