package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockview/mockview/internal/domain"
)

func TestScoreStore_AppendAndHistory(t *testing.T) {
	client := setupTestClient(t)
	store := NewScoreStore(client.Underlying(), 500, time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, store.Append(ctx, sessionID, domain.ScoreSample{Timestamp: "00:10", Score: &domain.SentimentSample{Sentiment: 0.5, Confidence: 0.2}}))
	require.NoError(t, store.Append(ctx, sessionID, domain.ScoreSample{Timestamp: "00:20", Score: &domain.SentimentSample{Sentiment: -0.3, Confidence: 0.1}}))

	history, err := store.History(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "00:10", history[0].Timestamp)
	require.NotNil(t, history[0].Score)
	assert.Equal(t, 0.5, history[0].Score.Sentiment)
	require.NotNil(t, history[1].Score)
	assert.Equal(t, -0.3, history[1].Score.Sentiment)
}

func TestScoreStore_EmptyHistory(t *testing.T) {
	client := setupTestClient(t)
	store := NewScoreStore(client.Underlying(), 500, time.Hour)

	history, err := store.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestScoreStore_CapsHistory(t *testing.T) {
	client := setupTestClient(t)
	store := NewScoreStore(client.Underlying(), 3, time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	for i := 0; i < 5; i++ {
		sample := domain.ScoreSample{Timestamp: fmt.Sprintf("00:%02d", i), Score: &domain.SentimentSample{Sentiment: float64(i)}}
		require.NoError(t, store.Append(ctx, sessionID, sample))
	}

	history, err := store.History(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// oldest entries trimmed away
	assert.Equal(t, "00:02", history[0].Timestamp)
	assert.Equal(t, "00:04", history[2].Timestamp)
}

func TestScoreStore_Reset(t *testing.T) {
	client := setupTestClient(t)
	store := NewScoreStore(client.Underlying(), 500, time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, store.Append(ctx, sessionID, domain.ScoreSample{Timestamp: "00:10", Score: &domain.SentimentSample{Sentiment: 0.5}}))
	require.NoError(t, store.Reset(ctx, sessionID))

	history, err := store.History(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestScoreStore_SkipsCorruptEntries(t *testing.T) {
	client := setupTestClient(t)
	store := NewScoreStore(client.Underlying(), 500, time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, store.Append(ctx, sessionID, domain.ScoreSample{Timestamp: "00:10", Score: &domain.SentimentSample{Sentiment: 0.5}}))
	require.NoError(t, client.Underlying().RPush(ctx, scoreKey(sessionID), "not json").Err())

	history, err := store.History(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "00:10", history[0].Timestamp)
}
