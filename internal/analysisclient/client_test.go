package analysisclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mockview/mockview/internal/errors"
)

func TestAnalyzeSentiment(t *testing.T) {
	sessionID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze/sentiment", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req sentimentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, sessionID.String(), req.SessionID)
		assert.Equal(t, "great answer", req.Text)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": req.Timestamp,
			"score": map[string]any{
				"sentiment": 0.5,
				"category":  "positive",
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.AnalyzeSentiment(context.Background(), sessionID, "great answer", "00:42")
	require.NoError(t, err)
	assert.Equal(t, "00:42", result.Timestamp)
	assert.Equal(t, 0.5, result.Score.Sentiment)
}

func TestSessionSummary(t *testing.T) {
	sessionID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/"+sessionID.String()+"/summary", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id": sessionID.String(),
			"sentiment":  map[string]any{"trend": "improving"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	summary, err := client.SessionSummary(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID.String(), summary.SessionID)
}

func TestAnalyzeSentiment_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.AnalyzeSentiment(context.Background(), uuid.New(), "text", "00:00")
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, apperrors.TypeExternal, structured.Type)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.AnalyzeSentiment(ctx, uuid.New(), "text", "00:00")
		require.Error(t, err)
	}

	server.Close()
	// breaker is open now: fails fast without reaching the (closed) server
	_, err := client.AnalyzeSentiment(ctx, uuid.New(), "text", "00:00")
	require.Error(t, err)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "sentiment", endpointLabel("/analyze/sentiment"))
	assert.Equal(t, "summary", endpointLabel("/sessions/abc/summary"))
}
