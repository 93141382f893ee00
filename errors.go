package paysdk

import "errors"

// ErrSubmitInFlight is returned by [PayController.SubmitPayForm] when a
// previous submission has not resolved yet. The in-flight cycle's state is
// left untouched.
var ErrSubmitInFlight = errors.New("paysdk: a submission is already in flight")

// ErrorType classifies an [Error] envelope.
type ErrorType string

const (
	ErrorTypeInitialization      ErrorType = "INITIALIZATION_ERROR"  // Lifecycle not initialized, or the pay secret is missing.
	ErrorTypeEnvironmentMismatch ErrorType = "ENVIRONMENT_MISMATCH"  // Pay request live/sandbox flag disagrees with the client mode.
	ErrorTypeAlreadyProcessed    ErrorType = "ALREADY_PROCESSED"     // Pay request fetched during init is already successful.
	ErrorTypeValidation          ErrorType = "VALIDATION_ERROR"      // Local field validation failed; never reached the network.
	ErrorTypeUnsupportedCardType ErrorType = "UNSUPPORTED_CARD_TYPE" // Classified network is not in the allow-list.
	ErrorTypeSubmissionFailed    ErrorType = "SUBMISSION_FAILED"     // Submission PATCH was not accepted.
	ErrorTypeServer              ErrorType = "SERVER_ERROR"          // A poll's fetch failed or the pay secret was rejected.
	ErrorTypeTimeout             ErrorType = "TIMEOUT"               // A poll exhausted its attempts without resolving.
	ErrorTypePaymentFailed       ErrorType = "PAYMENT_FAILED"        // Terminal FAILED/VOIDED status or failed 3DS outcome.
	ErrorTypeUnknownStatus       ErrorType = "UNKNOWN_STATUS"        // Snapshot status outside the known enumeration.
)

// Error is the uniform envelope surfaced to the integrating layer. The most
// recent envelope fully replaces the previous one and is cleared at the
// start of every Init or Submit cycle.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	// ErrorCode carries the snapshot's error code or, for transport-level
	// failures, the HTTP status code.
	ErrorCode string `json:"errorCode,omitempty"`
	// GatewayCode carries the acquirer's decline code when the gateway
	// reports one.
	GatewayCode string `json:"gatewayCode,omitempty"`

	fieldErrors ValidationErrors
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// FieldErrors returns the per-field validation messages attached to a
// validation envelope, or nil for every other kind.
func (e *Error) FieldErrors() ValidationErrors {
	if e == nil {
		return nil
	}
	return e.fieldErrors
}

type errorOption func(*Error)

// WithErrorCode attaches the remote snapshot's error code or an HTTP status.
// Empty codes are ignored.
func WithErrorCode(code string) errorOption {
	return func(er *Error) {
		if code != "" {
			er.ErrorCode = code
		}
	}
}

// WithGatewayCode attaches the acquirer decline code. Empty codes are ignored.
func WithGatewayCode(code string) errorOption {
	return func(er *Error) {
		if code != "" {
			er.GatewayCode = code
		}
	}
}

// WithFieldErrors attaches per-field validation messages.
func WithFieldErrors(errs ValidationErrors) errorOption {
	return func(er *Error) {
		er.fieldErrors = errs
	}
}

// NewInitializationError reports a lifecycle that is not initialized or a
// missing pay secret.
func NewInitializationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeInitialization, message, opts...)
}

// NewEnvironmentMismatchError reports a live/sandbox disagreement between
// the fetched pay request and the client configuration.
func NewEnvironmentMismatchError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeEnvironmentMismatch, message, opts...)
}

// NewAlreadyProcessedError reports a pay request that was already completed
// before initialization.
func NewAlreadyProcessedError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeAlreadyProcessed, message, opts...)
}

// NewValidationError reports failed local field validation.
func NewValidationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeValidation, message, opts...)
}

// NewUnsupportedCardTypeError reports a recognized network outside the
// allow-list.
func NewUnsupportedCardTypeError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeUnsupportedCardType, message, opts...)
}

// NewSubmissionFailedError reports a submission the gateway did not accept.
func NewSubmissionFailedError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeSubmissionFailed, message, opts...)
}

// NewServerError reports a failed fetch or a rejected pay secret.
func NewServerError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeServer, message, opts...)
}

// NewTimeoutError reports a poll that exhausted its attempt budget.
func NewTimeoutError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeTimeout, message, opts...)
}

// NewPaymentFailedError reports a terminal failed or voided payment.
func NewPaymentFailedError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypePaymentFailed, message, opts...)
}

// NewUnknownStatusError reports a snapshot status outside the known
// enumeration.
func NewUnknownStatusError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeUnknownStatus, message, opts...)
}

func newError(typ ErrorType, message string, opts ...errorOption) *Error {
	envelope := &Error{
		Type:    typ,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(envelope)
	}
	return envelope
}
