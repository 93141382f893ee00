// Package paysdk drives a Tyro pay request through its full lifecycle:
// local card validation, submission to the pay gateway, optional 3-D Secure
// step-up authentication, and a terminal success or failure outcome.
//
// # Card input
//
// [FormatCardNumber], [FormatCardExpiry], and [FormatCardCVC] sanitize raw
// field input as the user types, grouping digits per network and keeping an
// MM/YY expiry well formed keystroke by keystroke. [ClassifyCardType] maps
// a number prefix to its [CardNetwork] in fixed priority order.
// [ValidateAllInputs] is the submission gate: the controller never issues a
// network call while any field validator reports an error.
//
// # Lifecycle
//
// Build a [Client] with [NewClient] and hand it to [NewPayController].
// [PayController.InitPaySheet] fetches and verifies the pay request scoped
// by a pay secret; [PayController.SubmitPayForm] validates the entered
// [CardDetails], submits them, and polls the gateway until the request is
// terminal, driving the 3-D Secure method/auth/challenge phases when the
// gateway asks for step-up. When a challenge is required the controller
// exposes the challenge URL through [PayController.ThreeDSCheck] so the
// integrating layer can render it in an embedded browser view.
//
// Every failure surfaces as a typed [Error] envelope; the controller never
// lets a remote-call fault propagate uncaught.
package paysdk
