package interviewer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mockview/mockview/internal/domain"
	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/metrics"
)

const (
	// maxTranscriptTurns bounds the prompt size on long sessions.
	maxTranscriptTurns = 20

	defaultTimeout = 30 * time.Second
)

// Client implements domain.InterviewerService against an OpenAI-compatible
// chat-completion endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ domain.InterviewerService = (*Client)(nil)

// NewClient creates an interviewer client. An empty apiKey is valid: the
// client then always answers from the fallback table.
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(1), 3),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Respond returns the interviewer's next line. The API path is rate limited
// and any failure degrades to the fallback table for the session's current
// phase.
func (c *Client) Respond(ctx context.Context, session *domain.Session, transcript []*domain.TranscriptEntry) (string, error) {
	phase := phaseOf(transcript)

	if c.apiKey == "" {
		metrics.InterviewerRequestsTotal.WithLabelValues("fallback").Inc()
		return fallbackResponse(phase, len(transcript)), nil
	}

	reply, err := c.complete(ctx, session, transcript)
	if err != nil {
		logging.WithError(err).Warn("chat completion failed, using fallback",
			"session_id", session.ID, "phase", string(phase))
		metrics.InterviewerRequestsTotal.WithLabelValues("fallback").Inc()
		return fallbackResponse(phase, len(transcript)), nil
	}

	metrics.InterviewerRequestsTotal.WithLabelValues("api").Inc()
	return reply, nil
}

func (c *Client) complete(ctx context.Context, session *domain.Session, transcript []*domain.TranscriptEntry) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.InterviewerRequestDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    buildMessages(session, transcript),
		Temperature: 0.7,
		MaxTokens:   512,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.InterviewerRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.InterviewerRequestsTotal.WithLabelValues("error").Inc()
		var errResp struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("chat API error (%d): %s - %s", resp.StatusCode, errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("chat API error (%d)", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	reply := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("chat API returned empty reply")
	}
	return reply, nil
}

// buildMessages maps the transcript onto chat roles: the interviewer speaks
// as the assistant, the candidate as the user.
func buildMessages(session *domain.Session, transcript []*domain.TranscriptEntry) []chatMessage {
	messages := []chatMessage{{
		Role:    "system",
		Content: systemPrompt(session),
	}}

	start := 0
	if len(transcript) > maxTranscriptTurns {
		start = len(transcript) - maxTranscriptTurns
	}
	for _, entry := range transcript[start:] {
		role := "user"
		if entry.Speaker == domain.SpeakerInterviewer {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: entry.Text})
	}
	return messages
}

func systemPrompt(session *domain.Session) string {
	return fmt.Sprintf(
		"You are a professional interviewer conducting a %s mock interview for a %s position. "+
			"Ask one question at a time, follow up on the candidate's answers, and keep responses under three sentences.",
		session.Difficulty, session.Role)
}
