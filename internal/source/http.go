package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

const (
	// TypesEndpoint is the management API path listing adapter types.
	TypesEndpoint = "/api/v1/management/protocol-adapters/types"

	// maxBodySize caps the response body read.
	maxBodySize = 32 << 20
)

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// HTTPFetcher loads adapter types from a running management API.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewHTTPFetcher creates an HTTPFetcher. A zero timeout leaves requests bounded by ctx only.
func NewHTTPFetcher(baseURL string, timeout time.Duration, log logger.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// Fetch performs GET <base>/api/v1/management/protocol-adapters/types.
func (h *HTTPFetcher) Fetch(ctx context.Context) (*schema.AdapterTypeList, error) {
	endpoint, err := url.JoinPath(h.baseURL, TypesEndpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "build url from %q", h.baseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")

	h.logger.Debug("fetching adapter types", "url", endpoint)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "GET %s", endpoint),
			"Is the adapter server running? Set source.url or use --file",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "GET %s: %s", endpoint, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", endpoint)
	}

	h.logger.Debug("adapter types fetched", "bytes", len(data))

	return Decode(data, endpoint)
}
