package paysdk

import "testing"

func TestShouldValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		trigger ValidationTrigger
		current string
		want    bool
	}{
		"change with clean field skips": {trigger: TriggerChange, current: "", want: false},
		"change with prior error runs":  {trigger: TriggerChange, current: "Invalid card number", want: true},
		"blur always runs":              {trigger: TriggerBlur, current: "", want: true},
		"submit always runs":            {trigger: TriggerSubmit, current: "", want: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := shouldValidate(tt.trigger, tt.current); got != tt.want {
				t.Fatalf("shouldValidate(%q, %q) = %v, want %v", tt.trigger, tt.current, got, tt.want)
			}
		})
	}
}

func TestValidateCardNumber(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		trigger ValidationTrigger
		current string
		value   string
		want    string
	}{
		"valid number":            {trigger: TriggerSubmit, value: "4111 1111 1111 1111", want: ""},
		"empty on submit":         {trigger: TriggerSubmit, value: "", want: msgCardNumberMissing},
		"empty on blur":           {trigger: TriggerBlur, value: "", want: msgCardNumberMissing},
		"too short":               {trigger: TriggerSubmit, value: "4111 1111", want: msgCardNumberInvalid},
		"checksum failure":        {trigger: TriggerSubmit, value: "4111111111111112", want: msgCardNumberInvalid},
		"change without error":    {trigger: TriggerChange, value: "4", want: ""},
		"change clearing error":   {trigger: TriggerChange, current: msgCardNumberInvalid, value: "4111111111111111", want: ""},
		"change keeping error":    {trigger: TriggerChange, current: msgCardNumberInvalid, value: "4111", want: msgCardNumberInvalid},
		"change mid-typing clean": {trigger: TriggerChange, value: "4111 1111 11", want: ""},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateCardNumber(tt.trigger, tt.current, tt.value); got != tt.want {
				t.Fatalf("ValidateCardNumber(%q, %q, %q) = %q, want %q", tt.trigger, tt.current, tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateCardName(t *testing.T) {
	t.Parallel()

	if got := ValidateCardName(TriggerSubmit, "", "  "); got != msgCardNameMissing {
		t.Fatalf("blank name = %q, want %q", got, msgCardNameMissing)
	}
	if got := ValidateCardName(TriggerSubmit, "", "A Cardholder"); got != "" {
		t.Fatalf("valid name = %q, want empty", got)
	}
	if got := ValidateCardName(TriggerChange, "", ""); got != "" {
		t.Fatalf("clean change = %q, want empty", got)
	}
}

func TestValidateCardExpiry(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value string
		want  string
	}{
		"valid future":       {value: "12/40", want: ""},
		"single digit month": {value: "1/40", want: ""},
		"empty":              {value: "", want: msgCardExpiryMissing},
		"month only":         {value: "12", want: msgCardExpiryInvalid},
		"month thirteen":     {value: "13/40", want: msgCardExpiryInvalid},
		"month zero":         {value: "0/40", want: msgCardExpiryInvalid},
		"four digit year":    {value: "12/2040", want: msgCardExpiryInvalid},
		"expired":            {value: "10/12", want: msgCardExpired},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateCardExpiry(TriggerSubmit, "", tt.value); got != tt.want {
				t.Fatalf("ValidateCardExpiry(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateCardCVV(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value      string
		cardNumber string
		want       string
	}{
		"three digits default":      {value: "123", cardNumber: "4111111111111111", want: ""},
		"four digits default":       {value: "1234", cardNumber: "4111111111111111", want: msgCardCVVInvalid},
		"four digits amex":          {value: "1234", cardNumber: "378282246310005", want: ""},
		"three digits amex":         {value: "123", cardNumber: "378282246310005", want: msgCardCVVInvalid},
		"empty":                     {value: "", cardNumber: "4111111111111111", want: msgCardCVVMissing},
		"three digits unknown card": {value: "123", cardNumber: "", want: ""},
		"two digits":                {value: "12", cardNumber: "4111111111111111", want: msgCardCVVInvalid},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateCardCVV(TriggerSubmit, "", tt.value, tt.cardNumber); got != tt.want {
				t.Fatalf("ValidateCardCVV(%q, card %q) = %q, want %q", tt.value, tt.cardNumber, got, tt.want)
			}
		})
	}
}

func TestValidateAllInputs(t *testing.T) {
	t.Parallel()

	t.Run("empty form reports every field", func(t *testing.T) {
		t.Parallel()
		errs := ValidateAllInputs(CardDetails{})
		want := ValidationErrors{
			FieldCardNumber: msgCardNumberMissing,
			FieldCardName:   msgCardNameMissing,
			FieldCardExpiry: msgCardExpiryMissing,
			FieldCardCVV:    msgCardCVVMissing,
		}
		if len(errs) != len(want) {
			t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
		}
		for field, msg := range want {
			if errs[field] != msg {
				t.Fatalf("errs[%s] = %q, want %q", field, errs[field], msg)
			}
		}
	})

	t.Run("valid form reports nothing", func(t *testing.T) {
		t.Parallel()
		errs := ValidateAllInputs(CardDetails{
			Name:         "A Cardholder",
			Number:       "4111 1111 1111 1111",
			Expiry:       CardExpiry{Month: "12", Year: "40"},
			SecurityCode: "123",
		})
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("single bad field reports only itself", func(t *testing.T) {
		t.Parallel()
		errs := ValidateAllInputs(CardDetails{
			Name:         "A Cardholder",
			Number:       "4111 1111 1111 1111",
			Expiry:       CardExpiry{Month: "10", Year: "12"},
			SecurityCode: "123",
		})
		if len(errs) != 1 || errs[FieldCardExpiry] != msgCardExpired {
			t.Fatalf("expected only expired expiry, got %v", errs)
		}
	})
}
