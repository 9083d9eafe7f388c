package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"modhub/internal/domain"
	"modhub/internal/logging"
	"modhub/internal/metrics"
	codecsvc "modhub/internal/services/codec"
	keysvc "modhub/internal/services/keys"
	signersvc "modhub/internal/services/signer"
	tokensvc "modhub/internal/services/token"
	"modhub/internal/store"
	"modhub/internal/verifier"
)

const defaultHTTPTimeout = 15 * time.Second

// Wire bundles all stores, services, and clients.
type Wire struct {
	Config Config

	KeyStore *store.KeyFileStore
	Secrets  domain.SecretStore

	Keys   *keysvc.Service
	Signer domain.SignerService
	Codec  domain.CodecService
	Tokens domain.TokenService

	Verifier *verifier.Client // nil when no verifier URL is configured
	HTTP     *http.Client

	Registry *prometheus.Registry
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// NewWire constructs the dependency graph from cfg. log may be nil.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	// File-based stores
	keyStore := store.NewKeyFileStore(cfg.Home)
	secrets := store.NewSecretFileStore(cfg.Home)

	// Services
	signer := signersvc.New(rec)
	keys := keysvc.New(secrets, cfg.Network, rec, log.With("component", "keys"))

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	var vc *verifier.Client
	if cfg.VerifierURL != "" {
		vc = verifier.NewClient(cfg.VerifierURL, httpClient)
	}

	return &Wire{
		Config:   cfg,
		KeyStore: keyStore,
		Secrets:  secrets,
		Keys:     keys,
		Signer:   signer,
		Codec:    codecsvc.New(rec),
		Tokens:   tokensvc.New(signer, rec),
		Verifier: vc,
		HTTP:     httpClient,
		Registry: reg,
		Metrics:  rec,
		Logger:   log,
	}, nil
}

// VerifierServer builds the HTTP verifier over the wired services.
func (w *Wire) VerifierServer() *verifier.Server {
	limiter := verifier.NewRateLimiter(w.Config.RateLimit.RPS, w.Config.RateLimit.Burst)
	return verifier.NewServer(w.Tokens, w.Signer, limiter, w.Metrics, w.Registry, w.Logger.With("component", "verifier"))
}
