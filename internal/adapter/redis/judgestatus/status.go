// Package judgestatus publishes the live phase of judging runs to Redis
// for pollers.
package judgestatus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
)

const statusKeyPrefix = "judge:status:"

var _ secondary.JudgeStatusPort = (*StatusRepository)(nil)

// StatusRepository implements the JudgeStatusPort with Redis. Phases are
// transient; they expire after the configured TTL.
type StatusRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewStatusRepository creates a new Redis judge status repository
func NewStatusRepository(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *StatusRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StatusRepository{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

// SetPhase records the live phase of a submission
func (r *StatusRepository) SetPhase(ctx context.Context, submissionID uuid.UUID, phase secondary.JudgePhase) error {
	key := statusKeyPrefix + submissionID.String()
	if err := r.redisClient.Set(ctx, key, string(phase), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set judge phase: %w", err)
	}
	return nil
}

// GetPhase returns the live phase, or "" when nothing is recorded
func (r *StatusRepository) GetPhase(ctx context.Context, submissionID uuid.UUID) (secondary.JudgePhase, error) {
	key := statusKeyPrefix + submissionID.String()
	val, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get judge phase: %w", err)
	}
	return secondary.JudgePhase(val), nil
}
