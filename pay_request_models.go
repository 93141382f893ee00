package paysdk

import (
	"encoding/json"

	"github.com/oapi-codegen/runtime"
)

// PayRequestStatus defines model for PayRequest.Status.
type PayRequestStatus string

// Defines values for PayRequestStatus.
const (
	PayRequestStatusAwaitingPaymentInput   PayRequestStatus = "AWAITING_PAYMENT_INPUT"
	PayRequestStatusAwaitingAuthentication PayRequestStatus = "AWAITING_AUTHENTICATION"
	PayRequestStatusProcessing             PayRequestStatus = "PROCESSING"
	PayRequestStatusSuccess                PayRequestStatus = "SUCCESS"
	PayRequestStatusFailed                 PayRequestStatus = "FAILED"
	PayRequestStatusVoided                 PayRequestStatus = "VOIDED"
)

// Terminal reports whether no further status transitions are expected.
func (s PayRequestStatus) Terminal() bool {
	return s == PayRequestStatusSuccess || s == PayRequestStatusFailed || s == PayRequestStatusVoided
}

// ThreeDSStatus defines model for ThreeDSecure.Status.
type ThreeDSStatus string

// Defines values for ThreeDSStatus.
const (
	ThreeDSStatusAwaitingMethod    ThreeDSStatus = "AWAITING_3DS_METHOD"
	ThreeDSStatusAwaitingAuth      ThreeDSStatus = "AWAITING_AUTH"
	ThreeDSStatusAwaitingChallenge ThreeDSStatus = "AWAITING_CHALLENGE"
	ThreeDSStatusSuccess           ThreeDSStatus = "SUCCESS"
	ThreeDSStatusFailed            ThreeDSStatus = "FAILED"
)

// ThreeDSecure is the step-up authentication sub-record of a pay request.
type ThreeDSecure struct {
	Status       ThreeDSStatus `json:"status"`
	MethodURL    string        `json:"methodURL,omitempty"`
	ChallengeURL string        `json:"challengeURL,omitempty"`
}

// Amount is a minor-unit money value.
type Amount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PayRequest is the remote-sourced snapshot of one payment attempt, created
// server-side and keyed by an opaque pay secret. The SDK only reads and
// re-fetches it; server state is never mutated locally.
type PayRequest struct {
	Origin               string           `json:"origin,omitempty"`
	Status               PayRequestStatus `json:"status"`
	Capture              bool             `json:"capture,omitempty"`
	Total                *Amount          `json:"total,omitempty"`
	ThreeDSecure         *ThreeDSecure    `json:"threeDSecure,omitempty"`
	ErrorCode            string           `json:"errorCode,omitempty"`
	GatewayCode          string           `json:"gatewayCode,omitempty"`
	SupportedNetworks    []CardNetwork    `json:"supportedNetworks,omitempty"`
	WalletPaymentOptions []WalletOption   `json:"walletPaymentOptions,omitempty"`
	IsLive               bool             `json:"isLive"`
}

// CardExpiry holds the two-digit month and year segments of a card expiry.
type CardExpiry struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// String renders the expiry back into the MM/YY field shape.
func (e CardExpiry) String() string {
	if e.Month == "" && e.Year == "" {
		return ""
	}
	return e.Month + "/" + e.Year
}

// CardDetails is the card input collected by the integrating layer. It is
// owned and mutated by that layer; the controller reads it at submit time
// and clears it once the payment reaches a terminal outcome.
type CardDetails struct {
	Name         string     `json:"nameOnCard"`
	Number       string     `json:"number"`
	Expiry       CardExpiry `json:"expiry"`
	SecurityCode string     `json:"securityCode"`
}

// WalletOptionType defines model for the wallet union discriminator.
type WalletOptionType string

// Defines values for WalletOptionType.
const (
	WalletOptionTypeApplePay  WalletOptionType = "APPLE_PAY"
	WalletOptionTypeGooglePay WalletOptionType = "GOOGLE_PAY"
)

// WalletOption defines model for PayRequest.walletPaymentOptions.Item.
// Rendering wallet sheets is the integrating layer's concern; the SDK only
// carries the configuration through.
type WalletOption struct {
	union json.RawMessage
}

// ApplePayOption defines model for ApplePayOption.
type ApplePayOption struct {
	Type               WalletOptionType `json:"type"`
	MerchantIdentifier string           `json:"merchantIdentifier"`
	SupportedNetworks  []CardNetwork    `json:"supportedNetworks,omitempty"`
}

// GooglePayOption defines model for GooglePayOption.
type GooglePayOption struct {
	Type              WalletOptionType `json:"type"`
	MerchantID        string           `json:"merchantId"`
	MerchantName      string           `json:"merchantName,omitempty"`
	SupportedNetworks []CardNetwork    `json:"supportedNetworks,omitempty"`
}

// AsApplePayOption returns the union data inside the WalletOption as an ApplePayOption
func (t WalletOption) AsApplePayOption() (ApplePayOption, error) {
	var body ApplePayOption
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromApplePayOption overwrites any union data inside the WalletOption as the provided ApplePayOption
func (t *WalletOption) FromApplePayOption(v ApplePayOption) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeApplePayOption performs a merge with any union data inside the WalletOption, using the provided ApplePayOption
func (t *WalletOption) MergeApplePayOption(v ApplePayOption) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// AsGooglePayOption returns the union data inside the WalletOption as a GooglePayOption
func (t WalletOption) AsGooglePayOption() (GooglePayOption, error) {
	var body GooglePayOption
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromGooglePayOption overwrites any union data inside the WalletOption as the provided GooglePayOption
func (t *WalletOption) FromGooglePayOption(v GooglePayOption) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeGooglePayOption performs a merge with any union data inside the WalletOption, using the provided GooglePayOption
func (t *WalletOption) MergeGooglePayOption(v GooglePayOption) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// WalletType reads the union discriminator without committing to a variant.
func (t WalletOption) WalletType() (WalletOptionType, error) {
	var probe struct {
		Type WalletOptionType `json:"type"`
	}
	err := json.Unmarshal(t.union, &probe)
	return probe.Type, err
}

// MarshalJSON serializes the underlying union for WalletOption.
func (t WalletOption) MarshalJSON() ([]byte, error) {
	b, err := t.union.MarshalJSON()
	return b, err
}

// UnmarshalJSON loads union data for WalletOption.
func (t *WalletOption) UnmarshalJSON(b []byte) error {
	err := t.union.UnmarshalJSON(b)
	return err
}
