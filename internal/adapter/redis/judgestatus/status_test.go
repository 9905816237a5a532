package judgestatus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fcv-judge.net/internal/adapter/logging"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
)

func newTestRepository(t *testing.T) (*StatusRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStatusRepository(client, logging.NewNopLogger(), time.Minute), mr
}

func TestSetAndGetPhase(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.SetPhase(ctx, id, secondary.PhaseRunning))

	phase, err := repo.GetPhase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, secondary.PhaseRunning, phase)

	require.NoError(t, repo.SetPhase(ctx, id, secondary.PhaseCompleted))
	phase, err = repo.GetPhase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, secondary.PhaseCompleted, phase)
}

func TestGetPhaseUnknownSubmission(t *testing.T) {
	repo, _ := newTestRepository(t)

	phase, err := repo.GetPhase(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, secondary.JudgePhase(""), phase)
}

func TestPhaseExpires(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.SetPhase(ctx, id, secondary.PhasePending))
	mr.FastForward(2 * time.Minute)

	phase, err := repo.GetPhase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, secondary.JudgePhase(""), phase)
}

func TestPhasesAreKeyedPerSubmission(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, repo.SetPhase(ctx, first, secondary.PhaseRunning))
	require.NoError(t, repo.SetPhase(ctx, second, secondary.PhaseFailed))

	phase, err := repo.GetPhase(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, secondary.PhaseRunning, phase)
}
