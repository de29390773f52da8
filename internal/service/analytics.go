package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"portfolio-admin/pkg/circuitbreaker"
)

// AnalyticsClient fetches the visitor total from the external analytics
// endpoint. The breaker keeps a dead endpoint from slowing every
// dashboard load down to the full timeout.
type AnalyticsClient struct {
	url        string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewAnalyticsClient(url string, logger *zap.Logger) *AnalyticsClient {
	return &AnalyticsClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cb:     circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
		logger: logger,
	}
}

type analyticsResponse struct {
	TotalVisitors int `json:"totalVisitors"`
}

// TotalVisitors returns the visitor count, or an error the caller is
// expected to degrade on (the dashboard shows 0 rather than failing).
func (c *AnalyticsClient) TotalVisitors(ctx context.Context) (int, error) {
	if c.url == "" {
		return 0, fmt.Errorf("analytics endpoint not configured")
	}

	var total int
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("analytics endpoint returned status %d", resp.StatusCode)
		}

		var body analyticsResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("failed to decode analytics response: %w", err)
		}
		total = body.TotalVisitors
		return nil
	})
	if err != nil {
		c.logger.Warn("Analytics fetch failed", zap.Error(err))
		return 0, err
	}
	return total, nil
}
