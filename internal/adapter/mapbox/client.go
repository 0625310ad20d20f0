package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/addressforge/address-normalizer/internal/observability"
)

// defaultTypes is the full set of provider place kinds, used when the caller
// supplies no filter and on every reverse lookup.
const defaultTypes = "postcode,district,place,locality,neighborhood,address,poi"

// DefaultBaseURL is the production Mapbox Geocoding API endpoint.
const DefaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// Client implements domain.Geocoder using the Mapbox Geocoding API.
type Client struct {
	token       string
	httpClient  *http.Client
	baseURL     string
	mapper      *mapper
	metrics     *observability.Metrics
	diagnostics *observability.Diagnostics
	logger      *slog.Logger
}

// NewClient creates a Mapbox geocoding client over the given reference data.
// An empty baseURL selects the production endpoint.
func NewClient(token, baseURL string, timeout time.Duration, data domain.GeoData, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		mapper:      newMapper(data, metrics),
		metrics:     metrics,
		diagnostics: observability.NewDiagnostics(logger),
		logger:      logger,
	}
}

// SearchPlaces resolves a free-text query into canonical addresses.
func (c *Client) SearchPlaces(ctx context.Context, query string, opts domain.SearchOptions) (domain.SearchResult, error) {
	params := url.Values{
		"access_token": {c.token},
	}
	types := defaultTypes
	if opts.Filter != "" {
		types = opts.Filter
	}
	params.Set("types", types)
	if opts.Country != "" {
		params.Set("country", strings.ToUpper(opts.Country))
	}

	status, body, err := c.doRequest(ctx, query, params, cmdSearchPlaces)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return c.resolveSearchResponse(status, body)
}

// ReverseGeocode resolves a coordinate into the nearest canonical address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (domain.LookupResult, error) {
	// Mapbox uses lng,lat order.
	coord := fmt.Sprintf("%.6f,%.6f", lng, lat)
	params := url.Values{
		"access_token": {c.token},
		"types":        {defaultTypes},
		"limit":        {"1"},
	}

	status, body, err := c.doRequest(ctx, coord, params, cmdReverseGeocode)
	if err != nil {
		return domain.LookupResult{}, err
	}
	return c.resolveReverseResponse(status, body)
}

// Geocode returns the record as-is: Mapbox search results already carry
// coordinates, so no second provider call is needed.
func (c *Client) Geocode(_ context.Context, address domain.Address) (domain.LookupResult, error) {
	return domain.LookupResult{Address: &address, Success: true}, nil
}

// doRequest issues one GET against the provider and returns the raw status
// and body. Transport-level problems are the only errors; provider HTTP
// failures come back as a status for the resolvers to classify.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, command string) (int, []byte, error) {
	fullURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, url.PathEscape(endpoint), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s request: %w", command, err)
	}
	defer resp.Body.Close()
	c.metrics.APIDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", command, err)
	}
	return resp.StatusCode, body, nil
}

// resolveSearchResponse turns a raw search response into a SearchResult.
func (c *Client) resolveSearchResponse(status int, body []byte) (domain.SearchResult, error) {
	if status != http.StatusOK {
		code, internal := c.classifyAndRecord(cmdSearchPlaces, status, body)
		return domain.SearchResult{FailureCode: code, IsInternalFailure: internal}, nil
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}

	if len(resp.Features) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues(cmdSearchPlaces, "empty").Inc()
		return domain.SearchResult{Addresses: []domain.Address{}, Success: true}, nil
	}

	c.metrics.GeocodeRequests.WithLabelValues(cmdSearchPlaces, "success").Inc()
	return domain.SearchResult{
		Addresses: c.mapper.mapFeatures(resp.Features),
		Success:   true,
	}, nil
}

// resolveReverseResponse turns a raw reverse-lookup response into a
// LookupResult. A feature that cannot be normalized leaves Address nil with
// Success true: the provider found something at the coordinate, it just
// could not produce a valid canonical address.
func (c *Client) resolveReverseResponse(status int, body []byte) (domain.LookupResult, error) {
	if status != http.StatusOK {
		code, internal := c.classifyAndRecord(cmdReverseGeocode, status, body)
		return domain.LookupResult{FailureCode: code, IsInternalFailure: internal}, nil
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.LookupResult{}, fmt.Errorf("decode reverse response: %w", err)
	}

	if len(resp.Features) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues(cmdReverseGeocode, "empty").Inc()
		return domain.LookupResult{Success: true}, nil
	}

	c.metrics.GeocodeRequests.WithLabelValues(cmdReverseGeocode, "success").Inc()
	result := domain.LookupResult{Success: true}
	if addr, ok := c.mapper.mapFeature(resp.Features[0]); ok {
		result.Address = &addr
	}
	return result, nil
}

// classifyAndRecord classifies a provider failure, counts it, and records the
// raw diagnostics for offline research.
func (c *Client) classifyAndRecord(command string, status int, body []byte) (domain.FailureCode, bool) {
	var eb errorBody
	_ = json.Unmarshal(body, &eb) // classification works without a message

	code, internal := classifyFailure(status, eb.Message)
	c.metrics.GeocodeRequests.WithLabelValues(command, "provider_failure").Inc()
	c.metrics.ProviderFailures.WithLabelValues(string(code)).Inc()
	c.diagnostics.Record(string(code), command, status, eb.Message)
	return code, internal
}
