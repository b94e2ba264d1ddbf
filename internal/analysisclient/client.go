// Package analysisclient calls the analysis microservice from the backend.
//
// Requests go through a circuit breaker so a down analysis service degrades
// the affected endpoints quickly instead of tying up backend connections.
package analysisclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/mockview/mockview/internal/domain"
	"github.com/mockview/mockview/internal/errors"
	"github.com/mockview/mockview/internal/metrics"
)

// Client implements domain.AnalysisService over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

var _ domain.AnalysisService = (*Client)(nil)

// New creates a client for the analysis service at baseURL.
func New(baseURL string) *Client {
	settings := gobreaker.Settings{
		Name:    "analysis-service",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(_ string, _, to gobreaker.State) {
			metrics.AnalysisClientBreakerState.Set(float64(to))
		},
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

type sentimentRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// AnalyzeSentiment scores a transcript chunk through the analysis service.
func (c *Client) AnalyzeSentiment(ctx context.Context, sessionID uuid.UUID, text, timestamp string) (*domain.SentimentAnalysis, error) {
	body := sentimentRequest{SessionID: sessionID.String(), Text: text, Timestamp: timestamp}

	var result domain.SentimentAnalysis
	if err := c.post(ctx, "/analyze/sentiment", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SessionSummary fetches the aggregated analysis history for a session.
func (c *Client) SessionSummary(ctx context.Context, sessionID uuid.UUID) (*domain.SessionSummary, error) {
	var result domain.SessionSummary
	if err := c.get(ctx, "/sessions/"+sessionID.String()+"/summary", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.InternalError("failed to marshal analysis request", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	endpoint := endpointLabel(path)

	_, err := c.breaker.Execute(func() (any, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("create analysis request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.AnalysisClientRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, fmt.Errorf("send analysis request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read analysis response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			metrics.AnalysisClientRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, fmt.Errorf("analysis service returned %d: %s", resp.StatusCode, string(respBody))
		}

		if err := json.Unmarshal(respBody, out); err != nil {
			return nil, fmt.Errorf("unmarshal analysis response: %w", err)
		}

		metrics.AnalysisClientRequestsTotal.WithLabelValues(endpoint, "success").Inc()
		return nil, nil
	})
	if err != nil {
		return errors.ExternalError("analysis service unavailable", err)
	}
	return nil
}

// endpointLabel keeps session IDs out of metric labels.
func endpointLabel(path string) string {
	if strings.HasPrefix(path, "/sessions/") {
		return "summary"
	}
	return strings.TrimPrefix(path, "/analyze/")
}
