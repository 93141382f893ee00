package paysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tyro/paysdk/signature"
)

// Base URLs selected by the client's live/sandbox mode.
const (
	defaultLiveBaseURL    = "https://pay.connect.tyro.com"
	defaultSandboxBaseURL = "https://pay.sandbox.connect.tyro.com"
)

// Remote resource paths. The pay secret travels as a header, never in the
// path or query.
const (
	payRequestPath  = "/pay/client/requests"
	paySubmitPath   = "/connect/pay/client/requests"
	threeDSAuthPath = "/pay/client/3dsecure/auth"
)

// Default poll cadences. Timeouts are attempt-count based, not wall-clock
// based: interval times maxAttempts bounds each poll.
var defaultPollTuning = pollTuning{
	// Fast feedback right after submit.
	initial: pollSpec{interval: 2 * time.Second, maxAttempts: 10},
	// The 3DS method iframe is expected to load quickly.
	method: pollSpec{interval: 2 * time.Second, maxAttempts: 10},
	// Covers both the frictionless and the challenge-required branches.
	auth: pollSpec{interval: 2 * time.Second, maxAttempts: 30},
	// The cardholder may spend minutes inside an external challenge view.
	challenge: pollSpec{interval: 5 * time.Second, maxAttempts: 120},
}

type pollTuning struct {
	initial   pollSpec
	method    pollSpec
	auth      pollSpec
	challenge pollSpec
}

// Client exposes the typed operations over the remote pay request resource:
// fetching the current snapshot, submitting card details, starting 3-D
// Secure authentication, and the derived status pollers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	liveMode   bool
	signer     *signature.Signer
	logger     *slog.Logger
	clock      func() time.Time
	tuning     pollTuning
}

// NewClient builds a [Client]. Without options it talks to the sandbox
// gateway with a default http.Client.
func NewClient(opts ...ClientOption) *Client {
	cfg := clientConfig{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clock:      time.Now,
		tuning:     defaultPollTuning,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.baseURL == "" {
		if cfg.liveMode {
			cfg.baseURL = defaultLiveBaseURL
		} else {
			cfg.baseURL = defaultSandboxBaseURL
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    cfg.baseURL,
		httpClient: cfg.httpClient,
		liveMode:   cfg.liveMode,
		signer:     cfg.signer,
		logger:     cfg.logger,
		clock:      cfg.clock,
		tuning:     cfg.tuning,
	}
}

// LiveMode reports whether the client targets the live gateway.
func (c *Client) LiveMode() bool {
	return c.liveMode
}

// FetchPayRequest retrieves the current snapshot for the pay request scoped
// by secret. Any non-200 response is a hard failure carrying the HTTP
// status code; a rejected secret is never retried.
func (c *Client) FetchPayRequest(ctx context.Context, secret string) (*PayRequest, error) {
	req, err := c.newRequest(ctx, http.MethodGet, payRequestPath, secret, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paysdk: fetch pay request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := responseSnippet(resp)
		c.logger.Debug("pay request fetch rejected", "status", resp.StatusCode, "body", snippet)
		return nil, NewServerError(
			fmt.Sprintf("pay request fetch returned %s", resp.Status),
			WithErrorCode(strconv.Itoa(resp.StatusCode)),
		)
	}
	var snapshot PayRequest
	if err := decodeJSON(resp.Body, &snapshot); err != nil {
		return nil, fmt.Errorf("paysdk: decode pay request: %w", err)
	}
	return &snapshot, nil
}

// SubmitPayRequest submits the entered card details for processing. The
// gateway acknowledges an accepted submission with 202; any other status is
// a submission failure carrying that status code.
func (c *Client) SubmitPayRequest(ctx context.Context, secret string, details CardDetails) error {
	body := newSubmission(details)
	if err := body.Validate(); err != nil {
		return fmt.Errorf("paysdk: submit payload: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPatch, paySubmitPath, secret, body)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paysdk: submit pay request: %w", err)
	}
	defer drainBody(resp)
	if resp.StatusCode != http.StatusAccepted {
		c.logger.Debug("pay request submission rejected", "status", resp.StatusCode)
		return NewSubmissionFailedError(
			fmt.Sprintf("pay request submission returned %s", resp.Status),
			WithErrorCode(strconv.Itoa(resp.StatusCode)),
		)
	}
	return nil
}

// SubmitThreeDSAuth posts the device fingerprint that starts the 3DS method
// phase. The response body is not interpreted; callers re-poll the pay
// request to observe the resulting state.
func (c *Client) SubmitThreeDSAuth(ctx context.Context, secret string, device ThreeDSDeviceInfo) error {
	req, err := c.newRequest(ctx, http.MethodPost, threeDSAuthPath, secret, device)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paysdk: submit 3ds auth: %w", err)
	}
	defer drainBody(resp)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewServerError(
			fmt.Sprintf("3ds auth request returned %s", resp.Status),
			WithErrorCode(strconv.Itoa(resp.StatusCode)),
		)
	}
	return nil
}

// PollPayCompletion waits for a submitted payment to complete synchronously
// or hand off to 3DS authentication.
func (c *Client) PollPayCompletion(ctx context.Context, secret string) (*PayRequest, error) {
	return c.pollPayRequest(ctx, secret, c.tuning.initial, func(pr *PayRequest) bool {
		return pr.Status == PayRequestStatusSuccess ||
			pr.Status == PayRequestStatusFailed ||
			pr.Status == PayRequestStatusAwaitingAuthentication
	})
}

// PollThreeDSMethodResult waits for the 3DS method phase to finish.
func (c *Client) PollThreeDSMethodResult(ctx context.Context, secret string) (*PayRequest, error) {
	return c.pollPayRequest(ctx, secret, c.tuning.method, func(pr *PayRequest) bool {
		return pr.ThreeDSecure != nil && pr.ThreeDSecure.Status == ThreeDSStatusAwaitingAuth
	})
}

// PollThreeDSAuthResult waits for the authentication outcome: a terminal
// overall status (frictionless) or a pending challenge.
func (c *Client) PollThreeDSAuthResult(ctx context.Context, secret string) (*PayRequest, error) {
	return c.pollPayRequest(ctx, secret, c.tuning.auth, func(pr *PayRequest) bool {
		if pr.Status == PayRequestStatusSuccess || pr.Status == PayRequestStatusFailed {
			return true
		}
		return pr.ThreeDSecure != nil && pr.ThreeDSecure.Status == ThreeDSStatusAwaitingChallenge
	})
}

// PollThreeDSChallengeResult waits, on the long challenge cadence, for the
// final outcome after the cardholder is sent to the challenge view.
func (c *Client) PollThreeDSChallengeResult(ctx context.Context, secret string) (*PayRequest, error) {
	return c.pollPayRequest(ctx, secret, c.tuning.challenge, func(pr *PayRequest) bool {
		if pr.Status == PayRequestStatusSuccess || pr.Status == PayRequestStatusFailed {
			return true
		}
		return pr.ThreeDSecure != nil && pr.ThreeDSecure.Status == ThreeDSStatusFailed
	})
}

func (c *Client) pollPayRequest(ctx context.Context, secret string, spec pollSpec, cond PollCondition) (*PayRequest, error) {
	attempt := 0
	return pollForResult(ctx, func(ctx context.Context) (*PayRequest, error) {
		attempt++
		c.logger.Debug("polling pay request", "attempt", attempt, "maxAttempts", spec.maxAttempts)
		return c.FetchPayRequest(ctx, secret)
	}, cond, spec)
}

func (c *Client) newRequest(ctx context.Context, method, path, secret string, body any) (*http.Request, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("paysdk: marshal request body: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("paysdk: build request: %w", err)
	}
	req.Header.Set("Pay-Secret", secret)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("SDK-Version", Version)
	req.Header.Set("Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	if c.signer != nil && body != nil {
		ts := c.clock()
		sig, err := c.signer.Sign(ts, payload)
		if err != nil {
			return nil, fmt.Errorf("paysdk: sign request: %w", err)
		}
		req.Header.Set("Signature", sig)
		req.Header.Set("Timestamp", ts.UTC().Format(time.RFC3339Nano))
	}
	return req, nil
}
