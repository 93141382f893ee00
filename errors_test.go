package paysdk

import (
	"encoding/json"
	"testing"
)

func TestErrorEnvelope(t *testing.T) {
	t.Parallel()

	envelope := NewPaymentFailedError("payment failed",
		WithErrorCode("Card Declined"),
		WithGatewayCode("05"),
	)
	if envelope.Type != ErrorTypePaymentFailed {
		t.Fatalf("type = %s", envelope.Type)
	}
	if envelope.Error() != "payment failed" {
		t.Fatalf("Error() = %q", envelope.Error())
	}
	if envelope.ErrorCode != "Card Declined" || envelope.GatewayCode != "05" {
		t.Fatalf("codes = %q/%q", envelope.ErrorCode, envelope.GatewayCode)
	}
}

func TestErrorOptionsIgnoreEmptyCodes(t *testing.T) {
	t.Parallel()

	envelope := NewServerError("server error",
		WithErrorCode(""),
		WithGatewayCode(""),
	)
	if envelope.ErrorCode != "" || envelope.GatewayCode != "" {
		t.Fatalf("empty codes must stay empty, got %q/%q", envelope.ErrorCode, envelope.GatewayCode)
	}
}

func TestErrorFieldErrors(t *testing.T) {
	t.Parallel()

	fieldErrs := ValidationErrors{FieldCardNumber: msgCardNumberInvalid}
	envelope := NewValidationError("invalid card details", WithFieldErrors(fieldErrs))
	if got := envelope.FieldErrors(); got[FieldCardNumber] != msgCardNumberInvalid {
		t.Fatalf("FieldErrors() = %v", got)
	}

	var nilEnvelope *Error
	if nilEnvelope.FieldErrors() != nil {
		t.Fatal("nil envelope must report nil field errors")
	}
	if nilEnvelope.Error() != "" {
		t.Fatal("nil envelope must render as an empty message")
	}
}

func TestErrorJSONShape(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(NewTimeoutError("timed out", WithErrorCode("408")))
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if decoded["type"] != "TIMEOUT" || decoded["message"] != "timed out" || decoded["errorCode"] != "408" {
		t.Fatalf("unexpected shape: %v", decoded)
	}
	if _, ok := decoded["gatewayCode"]; ok {
		t.Fatal("empty gatewayCode must be omitted")
	}
}
