package secondary

import (
	"context"

	"github.com/google/uuid"
)

// JudgePhase is the live, transient state of an in-flight judging run,
// published for pollers. Distinct from the persisted verdict.
type JudgePhase string

const (
	PhasePending   JudgePhase = "PENDING"
	PhaseRunning   JudgePhase = "RUNNING"
	PhaseCompleted JudgePhase = "COMPLETED"
	PhaseFailed    JudgePhase = "FAILED"
)

// JudgeStatusPort publishes the live phase of a submission being judged.
// Best-effort: the pipeline tolerates failures here.
type JudgeStatusPort interface {
	SetPhase(ctx context.Context, submissionID uuid.UUID, phase JudgePhase) error

	// GetPhase returns the live phase, or "" when nothing is recorded
	// (expired or never set).
	GetPhase(ctx context.Context, submissionID uuid.UUID) (JudgePhase, error)
}
