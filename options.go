package paysdk

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tyro/paysdk/signature"
)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	liveMode   bool
	signer     *signature.Signer
	logger     *slog.Logger
	clock      func() time.Time
	tuning     pollTuning
}

// ClientOption customizes a [Client].
type ClientOption func(*clientConfig)

// WithBaseURL overrides the gateway base URL derived from the client mode.
func WithBaseURL(baseURL string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient supplies the http.Client used for every remote call.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	if httpClient == nil {
		panic("paysdk: http client must not be nil")
	}
	return func(cfg *clientConfig) {
		cfg.httpClient = httpClient
	}
}

// WithLiveMode targets the live gateway instead of the sandbox. The fetched
// pay request's own live flag must agree or initialization fails with an
// environment mismatch.
func WithLiveMode() ClientOption {
	return func(cfg *clientConfig) {
		cfg.liveMode = true
	}
}

// WithRequestSigner signs every mutating request with Signature and
// Timestamp headers.
func WithRequestSigner(signer signature.Signer) ClientOption {
	return func(cfg *clientConfig) {
		cfg.signer = &signer
	}
}

// WithLogger enables debug logging of polls and rejected responses.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// clientWithClock provides deterministic time in tests.
func clientWithClock(fn func() time.Time) ClientOption {
	return func(cfg *clientConfig) {
		cfg.clock = fn
	}
}

// withPollTuning shortens poll cadences in tests.
func withPollTuning(tuning pollTuning) ClientOption {
	return func(cfg *clientConfig) {
		cfg.tuning = tuning
	}
}

type controllerConfig struct {
	device            ThreeDSDeviceInfo
	supportedNetworks []CardNetwork
}

// ControllerOption customizes a [PayController].
type ControllerOption func(*controllerConfig)

// WithDeviceInfo supplies the real browser fingerprint collected by the
// integrating layer for 3DS authentication.
func WithDeviceInfo(device ThreeDSDeviceInfo) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.device = device
	}
}

// WithSupportedNetworks restricts which card networks the controller will
// submit, overriding the allow-list carried by the pay request snapshot.
func WithSupportedNetworks(networks ...CardNetwork) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.supportedNetworks = networks
	}
}
