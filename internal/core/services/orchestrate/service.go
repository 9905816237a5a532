package orchestrate

import (
	"context"

	"gitlab.com/fcv-judge.net/internal/domain"
)

// IOrchestratorService drives the execution client across the test cases
// of one submission
type IOrchestratorService interface {
	// Run executes the code once per test case in stored order and
	// collects the per-case results. Iteration stops early on a
	// compilation or runtime error, so the returned list may be shorter
	// than testCases. The only error returned is the context's when the
	// run is cancelled; partial results are discarded in that case.
	Run(ctx context.Context, code string, language domain.Language, testCases []domain.TestCase) ([]domain.TestCaseResult, error)
}
