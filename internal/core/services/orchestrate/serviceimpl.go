package orchestrate

import (
	"context"
	"strings"
	"time"

	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/domain"
)

var _ IOrchestratorService = (*OrchestratorService)(nil)

// wallMargin mirrors the wall-clock headroom the execution client grants
// on top of the CPU limit; the client-side deadline must sit above it.
const wallMargin = 2 * time.Second

// OrchestratorService implements per-test-case orchestration
type OrchestratorService struct {
	executor   secondary.CodeExecutor
	logger     primary.Logger
	caseMargin time.Duration
}

// NewOrchestratorService creates a new orchestrator. caseMargin is added
// on top of a case's wall limit for the client-side deadline.
func NewOrchestratorService(executor secondary.CodeExecutor, logger primary.Logger, caseMargin time.Duration) *OrchestratorService {
	if caseMargin <= 0 {
		caseMargin = time.Second
	}
	return &OrchestratorService{
		executor:   executor,
		logger:     logger,
		caseMargin: caseMargin,
	}
}

// Run executes the submission against each test case in order
func (s *OrchestratorService) Run(ctx context.Context, code string, language domain.Language, testCases []domain.TestCase) ([]domain.TestCaseResult, error) {
	results := make([]domain.TestCaseResult, 0, len(testCases))

	for _, tc := range testCases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome := s.runCase(ctx, code, language, tc)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := buildResult(tc, outcome)
		results = append(results, result)

		// A compile failure or crash belongs to the program, not the
		// input, and would recur identically on every remaining case.
		// Wrong answers and limit violations belong to the input, so
		// later cases are still attempted for a partial score.
		if outcome.Status == domain.StatusCompilationError || outcome.Status == domain.StatusRuntimeError {
			s.logger.Info("Stopping test case run early",
				"testCaseId", tc.ID,
				"status", outcome.Status)
			break
		}
	}

	return results, nil
}

// runCase executes one test case under its own client-side deadline so a
// hung executor cannot stall the whole submission.
func (s *OrchestratorService) runCase(ctx context.Context, code string, language domain.Language, tc domain.TestCase) *domain.ExecutionOutcome {
	deadline := time.Duration(tc.TimeLimitMs)*time.Millisecond + wallMargin + s.caseMargin
	caseCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	req := &domain.ExecutionRequest{
		SourceCode:    code,
		Language:      language,
		Stdin:         tc.Input,
		TimeLimitMs:   tc.TimeLimitMs,
		MemoryLimitMB: tc.MemoryLimitMB,
	}
	return s.executor.Execute(caseCtx, req)
}

func buildResult(tc domain.TestCase, outcome *domain.ExecutionOutcome) domain.TestCaseResult {
	result := domain.TestCaseResult{
		TestCaseID:     tc.ID,
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
		ActualOutput:   outcome.Stdout,
		Status:         outcome.Status,
		TimeMs:         outcome.TimeMs,
		MemoryKB:       outcome.MemoryKB,
		ErrorMessage:   outcome.ErrorMessage,
		Hidden:         tc.IsHidden,
	}
	if result.ErrorMessage == "" {
		switch outcome.Status {
		case domain.StatusCompilationError:
			result.ErrorMessage = outcome.CompileOutput
		case domain.StatusRuntimeError:
			result.ErrorMessage = outcome.Stderr
		}
	}

	if outcome.Status == domain.StatusAccepted {
		if outputsMatch(outcome.Stdout, tc.ExpectedOutput) {
			result.Passed = true
		} else {
			result.Status = domain.StatusWrongAnswer
		}
	}
	return result
}

// outputsMatch compares program output to the expected text with
// leading/trailing whitespace trimmed and case folded.
func outputsMatch(actual, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(actual), strings.TrimSpace(expected))
}
