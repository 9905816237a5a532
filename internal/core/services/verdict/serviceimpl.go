package verdict

import (
	"gitlab.com/fcv-judge.net/internal/domain"
)

var _ IVerdictService = (*VerdictService)(nil)

// VerdictService implements the verdict reduction rules
type VerdictService struct{}

// NewVerdictService creates a new verdict service
func NewVerdictService() *VerdictService {
	return &VerdictService{}
}

// Decide reduces the collected results into a submission-level summary.
// Program-level failures (compile, runtime) dominate; otherwise the first
// failing case in stored order names the verdict and passed cases earn a
// proportional floor-rounded score.
func (s *VerdictService) Decide(results []domain.TestCaseResult, totalCases int, points int) domain.JudgeSummary {
	summary := domain.JudgeSummary{Verdict: domain.VerdictInternalError}
	if len(results) == 0 {
		summary.Message = "judging produced no results"
		return summary
	}

	for _, r := range results {
		if r.TimeMs > summary.TimeMs {
			summary.TimeMs = r.TimeMs
		}
		if r.MemoryKB > summary.MemoryKB {
			summary.MemoryKB = r.MemoryKB
		}
	}

	for _, r := range results {
		if r.Status == domain.StatusCompilationError {
			summary.Verdict = domain.VerdictCompilationError
			summary.Message = r.ErrorMessage
			return summary
		}
	}
	for _, r := range results {
		if r.Status == domain.StatusRuntimeError {
			summary.Verdict = domain.VerdictRuntimeError
			summary.Message = r.ErrorMessage
			return summary
		}
	}

	// The orchestrator only truncates on the statuses handled above, so a
	// short list here means something went wrong mid-run.
	if len(results) < totalCases {
		summary.Message = "not all test cases were executed"
		return summary
	}

	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}

	if passed == totalCases {
		summary.Verdict = domain.VerdictAccepted
		summary.Score = points
		return summary
	}

	for _, r := range results {
		if !r.Passed {
			summary.Verdict = r.Status.Verdict()
			summary.Message = r.ErrorMessage
			break
		}
	}
	if totalCases > 0 {
		summary.Score = points * passed / totalCases
	}
	return summary
}
