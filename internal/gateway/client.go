// Package gateway is the typed client for the remote storefront API: one
// thin wrapper per backend resource, sharing bearer-token attachment, local
// input validation, and a uniform error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/credential"
	"github.com/tirtanusa/storefront-go/internal/metrics"
	"github.com/tirtanusa/storefront-go/pkg/logger"
)

// Config carries the dependencies a Client needs. BaseURL is resolved once;
// the Client never re-reads configuration.
type Config struct {
	// BaseURL is the API root including the /api prefix.
	BaseURL string
	// HTTPClient is the transport; timeouts live here. Defaults to a
	// 15-second client.
	HTTPClient *http.Client
	// Credentials provides the bearer token and is cleared when an
	// authenticated call gets a backend 401/403 (forced logout).
	Credentials *credential.Store
	Logger      *zerolog.Logger
}

// Client is shared by all resource wrappers. It is safe for concurrent use.
type Client struct {
	baseURL  string
	hc       *http.Client
	creds    *credential.Store
	log      zerolog.Logger
	validate *validator.Validate
}

// New builds a Client. Credentials are required; every other field has a
// working default.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	var log zerolog.Logger
	if cfg.Logger != nil {
		log = *cfg.Logger
	} else {
		log = logger.Get()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		hc:       hc,
		creds:    cfg.Credentials,
		log:      log.With().Str("component", "gateway").Logger(),
		validate: validator.New(),
	}
}

// requestSpec describes one call through the shared request path.
type requestSpec struct {
	method string
	path   string
	body   any
	// authRequired makes the call fail locally with an unauthenticated
	// error when no token is stored, before any network I/O.
	authRequired bool
	// enveloped marks endpoints that wrap payloads in
	// {success|status, data, message}; a 2xx without the success marker
	// is still a failure.
	enveloped bool
}

// envelope is the wire wrapper used by the cart endpoints.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ok reports whether the envelope carries its success marker.
func (e *envelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	return e.Status == "success" || e.Status == "ok"
}

// errorBody is the shape backend errors arrive in. Both field names occur
// across endpoints.
type errorBody struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (b *errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// do runs one request and decodes the response into out (which may be nil).
// All failures come back as *apierror.Error.
func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	resource := resourceLabel(spec.path)
	start := time.Now()

	err := c.roundTrip(ctx, spec, out)

	outcome := "ok"
	if err != nil {
		outcome = string(apierror.KindOf(err))
	}
	metrics.APIRequestsTotal.WithLabelValues(resource, outcome).Inc()
	metrics.APIRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	return err
}

func (c *Client) roundTrip(ctx context.Context, spec requestSpec, out any) error {
	var token string
	if c.creds != nil {
		token, _ = c.creds.Load()
	}
	if spec.authRequired && token == "" {
		return apierror.Unauthenticated("")
	}

	var body io.Reader
	if spec.body != nil {
		raw, err := json.Marshal(spec.body)
		if err != nil {
			return apierror.Validationf("encode request: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, c.baseURL+spec.path, body)
	if err != nil {
		return apierror.Validationf("build request: %v", err)
	}
	if spec.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return apierror.Transport(err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return apierror.Transport(err)
	}

	// Only an authenticated call can have its credential rejected. A 401
	// from login/register means the attempt failed, not that the stored
	// session (if any) is invalid, so it falls through to the generic
	// remote-error path below.
	if spec.authRequired &&
		(res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden) {
		return c.forceLogout(res.StatusCode, raw)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.text()
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", res.StatusCode)
		}
		return apierror.Remote(msg, fmt.Errorf("status %d", res.StatusCode))
	}

	payload := raw
	if spec.enveloped {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return apierror.Remote("malformed response envelope", err)
		}
		if !env.ok() {
			msg := env.Message
			if msg == "" {
				msg = "backend reported failure"
			}
			return apierror.Remote(msg, nil)
		}
		payload = env.Data
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apierror.Remote("malformed response body", err)
	}
	return nil
}

// forceLogout implements the AUTHENTICATED→ANONYMOUS transition on a backend
// token rejection: the credential store is cleared so every subsequent
// predicate fails closed.
func (c *Client) forceLogout(status int, raw []byte) error {
	if c.creds != nil {
		c.creds.Clear()
	}
	metrics.ForcedLogoutsTotal.Inc()

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	c.log.Warn().Int("status", status).Str("backend_message", eb.text()).
		Msg("token rejected by backend, credentials cleared")
	return apierror.Unauthorized(eb.text(), fmt.Errorf("status %d", status))
}

// resourceLabel maps a request path to its metrics resource label.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
