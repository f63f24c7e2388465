// Package addresslookup implements the postal-code lookup port against
// a ViaCEP-compatible HTTP service.
package addresslookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/address"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ViaCEPClient resolves postal codes against a ViaCEP-compatible API
type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *telemetry.Metrics
}

// Option configures a ViaCEPClient
type Option func(*ViaCEPClient)

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *ViaCEPClient) {
		c.logger = logger
	}
}

// WithMetrics wires lookup instrumentation
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(c *ViaCEPClient) {
		c.metrics = metrics
	}
}

// NewViaCEPClient creates a lookup client from configuration
func NewViaCEPClient(cfg *config.LookupConfig, opts ...Option) *ViaCEPClient {
	c := &ViaCEPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// viaCEPResponse is the wire shape of a ViaCEP answer. Erro is kept
// raw because the service has answered both `true` and `"true"`.
type viaCEPResponse struct {
	CEP          string          `json:"cep"`
	Street       string          `json:"logradouro"`
	Neighborhood string          `json:"bairro"`
	City         string          `json:"localidade"`
	State        string          `json:"uf"`
	Erro         json.RawMessage `json:"erro"`
}

func (r *viaCEPResponse) notFound() bool {
	return strings.Trim(string(r.Erro), `"`) == "true"
}

// Resolve implements address.Lookup. Failures come back as typed
// address.LookupError values so the caller can distinguish a postal
// code that does not exist from a service that did not answer.
func (c *ViaCEPClient) Resolve(ctx context.Context, postalCode string) (*address.Address, error) {
	start := time.Now()
	result, err := c.resolve(ctx, postalCode)
	c.record(ctx, err, time.Since(start))
	return result, err
}

func (c *ViaCEPClient) resolve(ctx context.Context, postalCode string) (*address.Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, postalCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, address.NewLookupError(address.LookupNetwork, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, address.NewLookupError(address.LookupTimeout,
				"postal code service did not answer in time")
		}
		c.logger.Warn("postal code lookup failed",
			zap.String("postal_code", postalCode),
			zap.Error(err))
		return nil, address.NewLookupError(address.LookupNetwork, err.Error())
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for malformed codes and 200 with erro for
	// unknown ones.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, address.NewLookupError(address.LookupNotFound,
			"postal code "+postalCode+" is malformed")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, address.NewLookupError(address.LookupNetwork,
			fmt.Sprintf("postal code service answered %d", resp.StatusCode))
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, address.NewLookupError(address.LookupNetwork,
			"postal code service answered with an unreadable body")
	}
	if payload.notFound() {
		return nil, address.NewLookupError(address.LookupNotFound,
			"postal code "+postalCode+" does not exist")
	}

	return &address.Address{
		Street:       strings.ToUpper(payload.Street),
		Neighborhood: strings.ToUpper(payload.Neighborhood),
		City:         strings.ToUpper(payload.City),
		State:        strings.ToUpper(payload.State),
		PostalCode:   postalCode,
	}, nil
}

func (c *ViaCEPClient) record(ctx context.Context, err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if lookupErr, ok := err.(*address.LookupError); ok {
		outcome = string(lookupErr.Kind)
	} else if err != nil {
		outcome = string(address.LookupNetwork)
	}
	c.metrics.RecordLookup(ctx, outcome, elapsed)
}

func isTimeout(err error) bool {
	type timeout interface {
		Timeout() bool
	}
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		unwrapper, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = unwrapper.Unwrap()
	}
	return false
}
