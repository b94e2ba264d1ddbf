package analysisserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mockview/mockview/internal/analysis"
	"github.com/mockview/mockview/internal/domain"
	apperrors "github.com/mockview/mockview/internal/errors"
	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/metrics"
)

type analyzeRequest struct {
	SessionID string  `json:"session_id"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	Duration  float64 `json:"duration"`
	ImageData string  `json:"image_data"`
}

type sentimentResponse struct {
	Timestamp string               `json:"timestamp"`
	Score     analysis.ScoreResult `json:"score"`
}

type voiceResponse struct {
	Timestamp string               `json:"timestamp"`
	Voice     analysis.VoiceResult `json:"voice"`
}

type facialResponse struct {
	Timestamp string                `json:"timestamp"`
	Facial    analysis.FacialResult `json:"facial"`
}

type comprehensiveResponse struct {
	Timestamp string                `json:"timestamp"`
	Score     analysis.ScoreResult  `json:"score"`
	Voice     analysis.VoiceResult  `json:"voice"`
	Facial    analysis.FacialResult `json:"facial"`
}

func (s *Server) handleHealth(c echo.Context) error {
	redisOK := true
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		redisOK = s.redis.Ping(ctx) == nil
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  "OK",
		"message": "analysis server is running",
		"services": map[string]bool{
			"sentiment": true,
			"voice":     true,
			"facial":    true,
			"history":   redisOK,
		},
	})
}

func (s *Server) handleSentiment(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Text == "" {
		return apperrors.ValidationError("text is required")
	}

	start := time.Now()
	score := analysis.ScoreText(req.Text)
	metrics.AnalysisDuration.WithLabelValues("sentiment").Observe(time.Since(start).Seconds())
	metrics.AnalysisRequestsTotal.WithLabelValues("sentiment", "success").Inc()
	metrics.SentimentCategoriesTotal.WithLabelValues(string(score.Category)).Inc()

	s.recordSample(c.Request().Context(), req, domain.ScoreSample{
		Timestamp: req.Timestamp,
		Score:     &domain.SentimentSample{Sentiment: score.Sentiment, Confidence: score.Confidence},
	})

	return c.JSON(http.StatusOK, sentimentResponse{Timestamp: req.Timestamp, Score: score})
}

func (s *Server) handleVoice(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Text == "" {
		return apperrors.ValidationError("text is required")
	}

	start := time.Now()
	voice := analysis.AnalyzeVoice(req.Text, req.Duration)
	metrics.AnalysisDuration.WithLabelValues("voice").Observe(time.Since(start).Seconds())
	metrics.AnalysisRequestsTotal.WithLabelValues("voice", "success").Inc()

	s.recordSample(c.Request().Context(), req, domain.ScoreSample{Timestamp: req.Timestamp, Voice: &voice})

	return c.JSON(http.StatusOK, voiceResponse{Timestamp: req.Timestamp, Voice: voice})
}

func (s *Server) handleFacial(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Timestamp == "" {
		return apperrors.ValidationError("timestamp is required")
	}

	facial := s.facial.Analyze(req.ImageData != "")
	metrics.AnalysisRequestsTotal.WithLabelValues("facial", "success").Inc()

	s.recordSample(c.Request().Context(), req, domain.ScoreSample{Timestamp: req.Timestamp, Facial: &facial})

	return c.JSON(http.StatusOK, facialResponse{Timestamp: req.Timestamp, Facial: facial})
}

func (s *Server) handleComprehensive(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Text == "" || req.Timestamp == "" {
		return apperrors.ValidationError("text and timestamp are required")
	}

	score := analysis.ScoreText(req.Text)
	voice := analysis.AnalyzeVoice(req.Text, req.Duration)
	facial := s.facial.Analyze(req.ImageData != "")
	metrics.AnalysisRequestsTotal.WithLabelValues("comprehensive", "success").Inc()

	s.recordSample(c.Request().Context(), req, domain.ScoreSample{
		Timestamp: req.Timestamp,
		Score:     &domain.SentimentSample{Sentiment: score.Sentiment, Confidence: score.Confidence},
		Voice:     &voice,
		Facial:    &facial,
	})

	return c.JSON(http.StatusOK, comprehensiveResponse{
		Timestamp: req.Timestamp,
		Score:     score,
		Voice:     voice,
		Facial:    facial,
	})
}

func (s *Server) handleSummary(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid session id")
	}

	samples, err := s.scores.History(c.Request().Context(), sessionID)
	if err != nil {
		return apperrors.InternalError("failed to read score history", err)
	}

	var (
		scores []analysis.ScoreResult
		voices []analysis.VoiceResult
		facial []analysis.FacialResult
	)
	for _, sample := range samples {
		if sample.Score != nil {
			scores = append(scores, analysis.ScoreResult{Sentiment: sample.Score.Sentiment, Confidence: sample.Score.Confidence})
		}
		if sample.Voice != nil {
			voices = append(voices, *sample.Voice)
		}
		if sample.Facial != nil {
			facial = append(facial, *sample.Facial)
		}
	}

	return c.JSON(http.StatusOK, domain.SessionSummary{
		SessionID: sessionID.String(),
		Sentiment: analysis.SummarizeScores(scores),
		Voice:     analysis.SummarizeVoice(voices),
		Facial:    analysis.SummarizeFacial(facial),
	})
}

func (s *Server) handleResetHistory(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid session id")
	}

	if err := s.scores.Reset(c.Request().Context(), sessionID); err != nil {
		return apperrors.InternalError("failed to reset score history", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// recordSample appends an analysis result to the session's history. Requests
// without a session_id are one-off and leave no history; a store failure
// only costs the summary a data point, never the response.
func (s *Server) recordSample(ctx context.Context, req analyzeRequest, sample domain.ScoreSample) {
	if req.SessionID == "" || s.scores == nil {
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return
	}

	if err := s.scores.Append(ctx, sessionID, sample); err != nil {
		logging.WithSession(sessionID.String()).Warn("failed to record score sample", "error", err)
	}
}
