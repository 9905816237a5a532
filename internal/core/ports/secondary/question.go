package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/domain"
)

// QuestionPort is the read side of the question store. The judging
// pipeline never mutates questions or test cases.
type QuestionPort interface {
	// GetQuestionWithActiveTestCases retrieves a question together with
	// its active test cases in stored order. Returns nil when the
	// question does not exist.
	GetQuestionWithActiveTestCases(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
}
