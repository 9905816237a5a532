package judge

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/domain"
)

// IJudgeService is the top-level submission pipeline
type IJudgeService interface {
	// SubmitCode judges code against a question's active test cases and
	// persists the outcome atomically. Returns the judged submission and
	// its per-case results. Validation failures reject before any
	// executor call and persist nothing.
	SubmitCode(ctx context.Context, userID string, questionID uuid.UUID, code string, language string) (*domain.Submission, []domain.TestCaseResult, error)

	// RunCode executes code once against caller-supplied input. Same
	// execution path as judging but bypasses the verdict engine and
	// persistence; the raw outcome is returned for immediate display.
	RunCode(ctx context.Context, userID string, questionID uuid.UUID, code string, language string, customInput string) (*domain.ExecutionOutcome, error)

	// GetSubmission retrieves a stored submission with its results
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, []domain.TestCaseResult, error)

	// GetJudgePhase reports the live phase of an in-flight judging run
	GetJudgePhase(ctx context.Context, submissionID uuid.UUID) (secondary.JudgePhase, error)
}
