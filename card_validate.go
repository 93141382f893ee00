package paysdk

import (
	"regexp"
	"strings"
)

// ValidationTrigger identifies what prompted a field validation pass.
type ValidationTrigger string

const (
	TriggerChange ValidationTrigger = "change"
	TriggerBlur   ValidationTrigger = "blur"
	TriggerSubmit ValidationTrigger = "submit"
)

// FieldKey names a card input field in a [ValidationErrors] map.
type FieldKey string

const (
	FieldCardNumber FieldKey = "card_number"
	FieldCardName   FieldKey = "card_name"
	FieldCardExpiry FieldKey = "card_expiry"
	FieldCardCVV    FieldKey = "card_cvv"
)

// ValidationErrors maps field keys to human-readable messages. An empty map
// (or all-empty values) means the input is submittable.
type ValidationErrors map[FieldKey]string

// User-facing validation messages. These are fixed strings; the integrating
// layer renders them verbatim.
const (
	msgCardNumberMissing = "Please enter a card number"
	msgCardNumberInvalid = "Invalid card number"
	msgCardNameMissing   = "Please enter the name on the card"
	msgCardExpiryMissing = "Please enter the card expiry"
	msgCardExpiryInvalid = "Invalid expiry date"
	msgCardExpired       = "Card has expired"
	msgCardCVVMissing    = "Please enter the security code"
	msgCardCVVInvalid    = "Invalid security code"
)

// expiryShape accepts M/YY and MM/YY with months 1-9 or 01-12.
var expiryShape = regexp.MustCompile(`^(0[1-9]|1[0-2]|[1-9])/[0-9]{2}$`)

// shouldValidate implements the activation rule: live edits only re-check
// fields that already carry an error (so corrections are reflected
// immediately), while blur and submit always validate (so first-time errors
// do not flash mid-typing).
func shouldValidate(trigger ValidationTrigger, current string) bool {
	return current != "" || trigger == TriggerBlur || trigger == TriggerSubmit
}

// ValidateCardNumber checks that the number reaches sixteen digits and
// passes the Luhn checksum. It returns an empty string when valid.
func ValidateCardNumber(trigger ValidationTrigger, current, value string) string {
	if !shouldValidate(trigger, current) {
		return ""
	}
	digits := stripNonDigits(value)
	if digits == "" {
		return msgCardNumberMissing
	}
	if len(digits) < 16 || !LuhnValid(digits) {
		return msgCardNumberInvalid
	}
	return ""
}

// ValidateCardName requires a non-empty cardholder name.
func ValidateCardName(trigger ValidationTrigger, current, value string) string {
	if !shouldValidate(trigger, current) {
		return ""
	}
	if strings.TrimSpace(value) == "" {
		return msgCardNameMissing
	}
	return ""
}

// ValidateCardExpiry requires an M/YY or MM/YY value naming a month that has
// not yet passed the expiry grace window.
func ValidateCardExpiry(trigger ValidationTrigger, current, value string) string {
	if !shouldValidate(trigger, current) {
		return ""
	}
	if value == "" {
		return msgCardExpiryMissing
	}
	if !expiryShape.MatchString(value) {
		return msgCardExpiryInvalid
	}
	expiry := BuildCardExpiry(value)
	if IsExpired(expiry.Year, expiry.Month) {
		return msgCardExpired
	}
	return ""
}

// ValidateCardCVV requires exactly four digits for Amex cards and exactly
// three for every other network; cardNumber supplies the network context.
func ValidateCardCVV(trigger ValidationTrigger, current, value, cardNumber string) string {
	if !shouldValidate(trigger, current) {
		return ""
	}
	code := stripNonDigits(value)
	if code == "" {
		return msgCardCVVMissing
	}
	want := 3
	if ClassifyCardType(cardNumber).Network == NetworkAmex {
		want = 4
	}
	if len(code) != want {
		return msgCardCVVInvalid
	}
	return ""
}

// ValidateField dispatches to the validator for one field kind.
func ValidateField(field FieldKey, trigger ValidationTrigger, current string, details CardDetails) string {
	switch field {
	case FieldCardNumber:
		return ValidateCardNumber(trigger, current, details.Number)
	case FieldCardName:
		return ValidateCardName(trigger, current, details.Name)
	case FieldCardExpiry:
		return ValidateCardExpiry(trigger, current, details.Expiry.String())
	case FieldCardCVV:
		return ValidateCardCVV(trigger, current, details.SecurityCode, details.Number)
	default:
		return ""
	}
}

// ValidateAllInputs runs every field validator in submit mode against a
// fresh error state and returns only the non-empty entries. An empty result
// means the form is submittable. This is the submission gate: the controller
// calls it before any remote submission and aborts, without a network call,
// when it reports anything.
func ValidateAllInputs(details CardDetails) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range []FieldKey{FieldCardNumber, FieldCardName, FieldCardExpiry, FieldCardCVV} {
		if msg := ValidateField(field, TriggerSubmit, "", details); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
