package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/domain"
)

// SubmissionPort persists judged submissions
type SubmissionPort interface {
	// SaveSubmission writes the submission and its per-case results as a
	// single atomic unit. Either everything is committed or nothing is.
	SaveSubmission(ctx context.Context, submission *domain.Submission, results []domain.TestCaseResult) error

	// GetSubmission retrieves a stored submission by ID. Returns nil when
	// not found.
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// GetSubmissionResults retrieves the stored per-case results for a
	// submission, in test case order.
	GetSubmissionResults(ctx context.Context, submissionID uuid.UUID) ([]domain.TestCaseResult, error)
}
