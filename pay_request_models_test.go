package paysdk

import (
	"encoding/json"
	"testing"
)

func TestPayRequestStatusTerminal(t *testing.T) {
	t.Parallel()

	terminal := []PayRequestStatus{
		PayRequestStatusSuccess,
		PayRequestStatusFailed,
		PayRequestStatusVoided,
	}
	for _, status := range terminal {
		if !status.Terminal() {
			t.Errorf("%s must be terminal", status)
		}
	}
	open := []PayRequestStatus{
		PayRequestStatusAwaitingPaymentInput,
		PayRequestStatusAwaitingAuthentication,
		PayRequestStatusProcessing,
	}
	for _, status := range open {
		if status.Terminal() {
			t.Errorf("%s must not be terminal", status)
		}
	}
}

func TestCardExpiryString(t *testing.T) {
	t.Parallel()

	if got := (CardExpiry{}).String(); got != "" {
		t.Fatalf("empty expiry = %q, want empty", got)
	}
	if got := (CardExpiry{Month: "09", Year: "30"}).String(); got != "09/30" {
		t.Fatalf("expiry = %q, want 09/30", got)
	}
	if got := (CardExpiry{Month: "09"}).String(); got != "09/" {
		t.Fatalf("partial expiry = %q, want 09/", got)
	}
}

func TestWalletOptionUnion(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"status": "AWAITING_PAYMENT_INPUT",
		"isLive": false,
		"walletPaymentOptions": [
			{"type": "APPLE_PAY", "merchantIdentifier": "merchant.example", "supportedNetworks": ["visa"]},
			{"type": "GOOGLE_PAY", "merchantId": "gp-123", "merchantName": "Example Shop"}
		]
	}`)
	var pr PayRequest
	if err := json.Unmarshal(raw, &pr); err != nil {
		t.Fatalf("unmarshal pay request: %v", err)
	}
	if len(pr.WalletPaymentOptions) != 2 {
		t.Fatalf("got %d wallet options, want 2", len(pr.WalletPaymentOptions))
	}

	first, err := pr.WalletPaymentOptions[0].WalletType()
	if err != nil || first != WalletOptionTypeApplePay {
		t.Fatalf("first wallet type = %q, %v", first, err)
	}
	apple, err := pr.WalletPaymentOptions[0].AsApplePayOption()
	if err != nil {
		t.Fatalf("AsApplePayOption: %v", err)
	}
	if apple.MerchantIdentifier != "merchant.example" {
		t.Fatalf("merchantIdentifier = %q", apple.MerchantIdentifier)
	}
	if len(apple.SupportedNetworks) != 1 || apple.SupportedNetworks[0] != NetworkVisa {
		t.Fatalf("supportedNetworks = %v", apple.SupportedNetworks)
	}

	google, err := pr.WalletPaymentOptions[1].AsGooglePayOption()
	if err != nil {
		t.Fatalf("AsGooglePayOption: %v", err)
	}
	if google.MerchantID != "gp-123" || google.MerchantName != "Example Shop" {
		t.Fatalf("google option = %+v", google)
	}
}

func TestWalletOptionMerge(t *testing.T) {
	t.Parallel()

	var option WalletOption
	if err := option.FromGooglePayOption(GooglePayOption{
		Type:       WalletOptionTypeGooglePay,
		MerchantID: "gp-123",
	}); err != nil {
		t.Fatalf("FromGooglePayOption: %v", err)
	}
	if err := option.MergeGooglePayOption(GooglePayOption{
		Type:         WalletOptionTypeGooglePay,
		MerchantID:   "gp-123",
		MerchantName: "Example Shop",
	}); err != nil {
		t.Fatalf("MergeGooglePayOption: %v", err)
	}
	merged, err := option.AsGooglePayOption()
	if err != nil {
		t.Fatalf("AsGooglePayOption: %v", err)
	}
	if merged.MerchantName != "Example Shop" || merged.MerchantID != "gp-123" {
		t.Fatalf("merged option = %+v", merged)
	}
}
