package verdict

import (
	"gitlab.com/fcv-judge.net/internal/domain"
)

// IVerdictService reduces per-case results into one submission verdict
type IVerdictService interface {
	// Decide computes the verdict, score and aggregate resource figures
	// for a result set. totalCases is the number of active test cases the
	// question has; points is the question's full score. Pure and
	// idempotent: the same inputs always produce the same summary.
	Decide(results []domain.TestCaseResult, totalCases int, points int) domain.JudgeSummary
}
