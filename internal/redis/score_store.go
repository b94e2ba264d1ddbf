package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mockview/mockview/internal/domain"
)

// ScoreStore implements domain.ScoreStore with a capped Redis list per
// session. New samples are appended to the tail and the list is trimmed
// to the newest maxSamples entries; the key expires ttl after the last
// append so abandoned sessions clean themselves up.
type ScoreStore struct {
	rdb        *goredis.Client
	maxSamples int
	ttl        time.Duration
}

var _ domain.ScoreStore = (*ScoreStore)(nil)

func NewScoreStore(rdb *goredis.Client, maxSamples int, ttl time.Duration) *ScoreStore {
	return &ScoreStore{rdb: rdb, maxSamples: maxSamples, ttl: ttl}
}

func (s *ScoreStore) Append(ctx context.Context, sessionID uuid.UUID, sample domain.ScoreSample) error {
	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal score sample: %w", err)
	}

	key := scoreKey(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, int64(-s.maxSamples), -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append score sample: %w", err)
	}
	return nil
}

func (s *ScoreStore) History(ctx context.Context, sessionID uuid.UUID) ([]domain.ScoreSample, error) {
	raw, err := s.rdb.LRange(ctx, scoreKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read score history: %w", err)
	}

	samples := make([]domain.ScoreSample, 0, len(raw))
	for _, item := range raw {
		var sample domain.ScoreSample
		if err := json.Unmarshal([]byte(item), &sample); err != nil {
			// skip corrupt entries rather than failing the whole history
			continue
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (s *ScoreStore) Reset(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, scoreKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to reset score history: %w", err)
	}
	return nil
}

func scoreKey(sessionID uuid.UUID) string {
	return "scores:" + sessionID.String()
}
