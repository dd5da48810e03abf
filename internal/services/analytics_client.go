package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"messaging-dashboard/internal/models"
	"messaging-dashboard/internal/utils"

	"go.uber.org/zap"
)

// AnalyticsPath is the endpoint the dashboard reads from.
const AnalyticsPath = "/api/analytics/"

// ErrFetchFailed covers every way a fetch can fail: transport errors,
// non-2xx responses and undecodable bodies.
var ErrFetchFailed = errors.New("analytics fetch failed")

const (
	maxBodyBytes   = 1 << 20
	maxSnippetRune = 200
)

// AnalyticsFetcher retrieves the aggregated analytics payload.
type AnalyticsFetcher interface {
	FetchAnalytics(ctx context.Context) (*models.AnalyticsPayload, error)
}

// AnalyticsClient fetches analytics over HTTP from the messaging API.
type AnalyticsClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewAnalyticsClient creates a client for baseURL. A zero timeout leaves the
// call bounded only by the caller's context.
func NewAnalyticsClient(baseURL string, timeout time.Duration, logger *zap.Logger) *AnalyticsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("analytics_client"),
	}
}

// FetchAnalytics issues GET /api/analytics/ and decodes the payload. Every
// failure is logged and returned wrapped in ErrFetchFailed.
func (c *AnalyticsClient) FetchAnalytics(ctx context.Context) (*models.AnalyticsPayload, error) {
	url := c.baseURL + AnalyticsPath

	payload, err := c.fetch(ctx, url)
	if err != nil {
		c.logger.Warn("analytics fetch failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return payload, nil
}

func (c *AnalyticsClient) fetch(ctx context.Context, url string) (*models.AnalyticsPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchFailed, resp.StatusCode, utils.Snippet(body, maxSnippetRune))
	}

	var payload models.AnalyticsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailed, err)
	}
	return &payload, nil
}
