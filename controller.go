package paysdk

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// PayController drives one pay request through its lifecycle: initialization
// against a pay secret, guarded card submission, status polling, the 3-D
// Secure method/auth/challenge phases, and a terminal outcome. All state is
// owned by the controller instance and mutated only by its own transition
// steps; supplying a new pay secret via [PayController.InitPaySheet] resets
// everything.
//
// At most one submission is in flight at a time, and results arriving for a
// pay secret that has since been replaced are discarded rather than applied.
type PayController struct {
	client  *Client
	device  ThreeDSDeviceInfo
	allowed []CardNetwork

	mu    sync.Mutex
	state lifecycleState
}

// lifecycleState is the controller-owned mirror of the remote payment. The
// payRequest field is always either nil or the most recent successfully
// fetched snapshot, never a partially-applied value.
type lifecycleState struct {
	paySecret           string
	payRequest          *PayRequest
	isSubmitting        bool
	isPayRequestReady   bool
	isPayRequestLoading bool
	tyroError           *Error
	threeDSCheck        ThreeDSCheck
}

// NewPayController builds a controller over client.
func NewPayController(client *Client, opts ...ControllerOption) *PayController {
	if client == nil {
		panic("paysdk: client is required")
	}
	cfg := controllerConfig{
		device: defaultDeviceInfo(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &PayController{
		client:  client,
		device:  cfg.device,
		allowed: cfg.supportedNetworks,
	}
}

// InitPaySheet fetches and verifies the pay request scoped by paySecret.
// The snapshot must match the client's live/sandbox mode and must not have
// already been paid. On failure the typed error is recorded and the sheet
// stays unready.
func (p *PayController) InitPaySheet(ctx context.Context, paySecret string) error {
	if paySecret == "" {
		envelope := NewInitializationError("pay secret is required")
		p.mu.Lock()
		p.state = lifecycleState{tyroError: envelope}
		p.mu.Unlock()
		return envelope
	}

	p.mu.Lock()
	p.state = lifecycleState{paySecret: paySecret, isPayRequestLoading: true}
	p.mu.Unlock()

	snapshot, err := p.client.FetchPayRequest(ctx, paySecret)
	if err != nil {
		envelope := NewInitializationError("failed to fetch the pay request", WithErrorCode(errorCodeOf(err)))
		p.fail(paySecret, envelope)
		return envelope
	}
	if snapshot.IsLive != p.client.LiveMode() {
		envelope := NewEnvironmentMismatchError("pay request environment does not match the client mode")
		p.fail(paySecret, envelope)
		return envelope
	}
	if snapshot.Status == PayRequestStatusSuccess {
		envelope := NewAlreadyProcessedError("pay request has already been paid")
		p.fail(paySecret, envelope)
		return envelope
	}

	p.apply(paySecret, func(s *lifecycleState) {
		s.payRequest = snapshot
		s.isPayRequestReady = true
		s.isPayRequestLoading = false
	})
	return nil
}

// SubmitPayForm validates details locally, submits them, and polls the
// gateway to a terminal outcome, driving 3DS step-up when required. It
// returns [ErrSubmitInFlight] while a previous submission is unresolved;
// every other failure is a typed [Error] that is also recorded on the
// controller. On a terminal outcome the entered details are cleared.
func (p *PayController) SubmitPayForm(ctx context.Context, details *CardDetails) error {
	p.mu.Lock()
	if p.state.isSubmitting {
		p.mu.Unlock()
		return ErrSubmitInFlight
	}
	if p.state.paySecret == "" {
		envelope := NewInitializationError("pay secret is required before submitting")
		p.state.tyroError = envelope
		p.mu.Unlock()
		return envelope
	}
	if !p.state.isPayRequestReady {
		envelope := NewInitializationError("pay sheet is not initialized")
		p.state.tyroError = envelope
		p.mu.Unlock()
		return envelope
	}
	secret := p.state.paySecret
	snapshot := p.state.payRequest
	p.state.isSubmitting = true
	p.state.tyroError = nil
	p.state.threeDSCheck = ThreeDSCheck{}
	p.mu.Unlock()

	envelope := p.submit(ctx, secret, snapshot, details)
	p.apply(secret, func(s *lifecycleState) {
		s.isSubmitting = false
		s.tyroError = envelope
	})
	if envelope != nil {
		return envelope
	}
	return nil
}

// submit runs the local gates and the remote submission pipeline. Local
// validation failures return before any network call is made.
func (p *PayController) submit(ctx context.Context, secret string, snapshot *PayRequest, details *CardDetails) *Error {
	if fieldErrs := ValidateAllInputs(*details); len(fieldErrs) > 0 {
		return NewValidationError("invalid card details", WithFieldErrors(fieldErrs))
	}

	allowed := p.allowed
	if len(allowed) == 0 && snapshot != nil {
		allowed = snapshot.SupportedNetworks
	}
	if len(allowed) > 0 {
		cardType := ClassifyCardType(details.Number)
		if cardType.Network != NetworkUnknown && !networkAllowed(allowed, cardType.Network) {
			return NewUnsupportedCardTypeError(fmt.Sprintf("%s cards are not supported for this payment", cardType.Network))
		}
	}

	if err := p.client.SubmitPayRequest(ctx, secret, *details); err != nil {
		if envelope, ok := asEnvelope(err); ok {
			return envelope
		}
		return NewSubmissionFailedError("failed to submit the pay request")
	}

	result, err := p.client.PollPayCompletion(ctx, secret)
	if err != nil {
		return NewServerError("failed to retrieve the pay request status", WithErrorCode(errorCodeOf(err)))
	}
	return p.resolveStatus(ctx, secret, result, details)
}

// resolveStatus dispatches on a polled snapshot's overall status. It is
// shared by the initial poll, the frictionless 3DS outcome, and the
// challenge outcome.
func (p *PayController) resolveStatus(ctx context.Context, secret string, snapshot *PayRequest, details *CardDetails) *Error {
	switch snapshot.Status {
	case PayRequestStatusProcessing:
		// The window for synchronous completion elapsed.
		return NewTimeoutError("timed out waiting for the payment to complete")
	case PayRequestStatusSuccess:
		p.finish(secret, snapshot, details)
		return nil
	case PayRequestStatusFailed, PayRequestStatusVoided:
		p.finish(secret, snapshot, details)
		return NewPaymentFailedError("payment failed",
			WithErrorCode(snapshot.ErrorCode),
			WithGatewayCode(snapshot.GatewayCode),
		)
	case PayRequestStatusAwaitingAuthentication:
		return p.runThreeDS(ctx, secret, details)
	default:
		return NewUnknownStatusError(fmt.Sprintf("pay request returned unknown status %q", snapshot.Status))
	}
}

// runThreeDS drives the step-up sub-protocol: wait for the method phase,
// send the device fingerprint, and wait for the authentication outcome.
func (p *PayController) runThreeDS(ctx context.Context, secret string, details *CardDetails) *Error {
	if _, err := p.client.PollThreeDSMethodResult(ctx, secret); err != nil {
		return NewServerError("failed to retrieve the 3DS method result", WithErrorCode(errorCodeOf(err)))
	}
	if err := p.client.SubmitThreeDSAuth(ctx, secret, p.device); err != nil {
		return NewServerError("failed to submit the 3DS authentication request", WithErrorCode(errorCodeOf(err)))
	}

	auth, err := p.client.PollThreeDSAuthResult(ctx, secret)
	if err != nil {
		return NewTimeoutError("timed out waiting for the 3DS authentication result")
	}
	if auth.ThreeDSecure != nil &&
		auth.ThreeDSecure.Status == ThreeDSStatusAwaitingChallenge &&
		auth.ThreeDSecure.ChallengeURL != "" {
		return p.runChallenge(ctx, secret, auth, details)
	}
	if auth.Status == PayRequestStatusAwaitingAuthentication {
		// The attempt budget ran out before the frictionless outcome landed.
		return NewTimeoutError("timed out waiting for the 3DS authentication result")
	}
	// Frictionless outcome: the auth snapshot already carries the final status.
	return p.resolveStatus(ctx, secret, auth, details)
}

// runChallenge exposes the challenge URL for an embedded browser view and
// waits, on the long cadence, for the final outcome.
func (p *PayController) runChallenge(ctx context.Context, secret string, auth *PayRequest, details *CardDetails) *Error {
	if !p.apply(secret, func(s *lifecycleState) {
		s.payRequest = auth
		s.threeDSCheck = ThreeDSCheck{Active: true, URL: auth.ThreeDSecure.ChallengeURL}
	}) {
		// A newer Init/Submit cycle owns the lifecycle now.
		return nil
	}

	result, err := p.client.PollThreeDSChallengeResult(ctx, secret)
	// The embedded view is torn down whatever the outcome.
	p.apply(secret, func(s *lifecycleState) {
		s.threeDSCheck = ThreeDSCheck{}
	})
	if err != nil {
		return NewTimeoutError("timed out waiting for the 3DS challenge result")
	}
	if result.ThreeDSecure != nil && result.ThreeDSecure.Status == ThreeDSStatusFailed {
		p.finish(secret, result, details)
		return NewPaymentFailedError("payment failed",
			WithErrorCode(result.ErrorCode),
			WithGatewayCode(result.GatewayCode),
		)
	}
	if result.Status == PayRequestStatusAwaitingAuthentication {
		return NewTimeoutError("timed out waiting for the 3DS challenge result")
	}
	return p.resolveStatus(ctx, secret, result, details)
}

// finish records a terminal snapshot and clears the entered card details.
func (p *PayController) finish(secret string, snapshot *PayRequest, details *CardDetails) {
	if p.apply(secret, func(s *lifecycleState) {
		s.payRequest = snapshot
		s.threeDSCheck = ThreeDSCheck{}
	}) {
		*details = CardDetails{}
	}
}

// apply mutates state only while secret still owns the lifecycle. Results
// arriving for a superseded secret are discarded, which approximates
// cancellation of polls the controller cannot abort mid-flight.
func (p *PayController) apply(secret string, fn func(*lifecycleState)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.paySecret != secret {
		return false
	}
	fn(&p.state)
	return true
}

// fail records an initialization failure for secret.
func (p *PayController) fail(secret string, envelope *Error) {
	p.apply(secret, func(s *lifecycleState) {
		s.isPayRequestLoading = false
		s.tyroError = envelope
	})
}

// PayRequest returns the most recent successfully fetched snapshot, or nil.
func (p *PayController) PayRequest() *PayRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.payRequest
}

// TyroError returns the current error envelope, or nil.
func (p *PayController) TyroError() *Error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.tyroError
}

// IsSubmitting reports whether a submission is in flight.
func (p *PayController) IsSubmitting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.isSubmitting
}

// IsPayRequestReady reports whether initialization succeeded.
func (p *PayController) IsPayRequestReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.isPayRequestReady
}

// IsPayRequestLoading reports whether initialization is fetching.
func (p *PayController) IsPayRequestLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.isPayRequestLoading
}

// ThreeDSCheck returns the challenge view state.
func (p *PayController) ThreeDSCheck() ThreeDSCheck {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.threeDSCheck
}

// WalletOptions returns the wallet configuration carried by the snapshot.
func (p *PayController) WalletOptions() []WalletOption {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.payRequest == nil {
		return nil
	}
	return p.state.payRequest.WalletPaymentOptions
}

// HasPayRequestCompleted reports whether the payment reached a terminal
// status.
func (p *PayController) HasPayRequestCompleted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.payRequest != nil && p.state.payRequest.Status.Terminal()
}

// asEnvelope unwraps a typed envelope from an error chain.
func asEnvelope(err error) (*Error, bool) {
	var envelope *Error
	if errors.As(err, &envelope) {
		return envelope, true
	}
	return nil, false
}

// errorCodeOf extracts the code carried by an envelope in err's chain.
func errorCodeOf(err error) string {
	if envelope, ok := asEnvelope(err); ok {
		return envelope.ErrorCode
	}
	return ""
}
