package judge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/config"
	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/core/services/orchestrate"
	"gitlab.com/fcv-judge.net/internal/core/services/verdict"
	"gitlab.com/fcv-judge.net/internal/domain"
	"gitlab.com/fcv-judge.net/internal/static/errs"
)

var _ IJudgeService = (*JudgeService)(nil)

// Dry runs carry no test case of their own, so they get fixed limits.
const (
	runTimeLimitMs   = 5000
	runMemoryLimitMB = 256
)

// JudgeService implements the submission pipeline
type JudgeService struct {
	questionPort   secondary.QuestionPort
	submissionPort secondary.SubmissionPort
	statusPort     secondary.JudgeStatusPort
	executor       secondary.CodeExecutor
	orchestrator   orchestrate.IOrchestratorService
	verdicts       verdict.IVerdictService
	logger         primary.Logger
	cfg            *config.JudgeConfig
}

// NewJudgeService creates a new judge service
func NewJudgeService(
	questionPort secondary.QuestionPort,
	submissionPort secondary.SubmissionPort,
	statusPort secondary.JudgeStatusPort,
	executor secondary.CodeExecutor,
	orchestrator orchestrate.IOrchestratorService,
	verdicts verdict.IVerdictService,
	logger primary.Logger,
	cfg *config.JudgeConfig,
) *JudgeService {
	return &JudgeService{
		questionPort:   questionPort,
		submissionPort: submissionPort,
		statusPort:     statusPort,
		executor:       executor,
		orchestrator:   orchestrator,
		verdicts:       verdicts,
		logger:         logger,
		cfg:            cfg,
	}
}

// SubmitCode judges one submission end to end
func (s *JudgeService) SubmitCode(ctx context.Context, userID string, questionID uuid.UUID, code string, language string) (*domain.Submission, []domain.TestCaseResult, error) {
	lang, question, err := s.validate(ctx, questionID, code, language)
	if err != nil {
		return nil, nil, err
	}

	submission := domain.NewSubmission(userID, questionID, code, lang)
	s.logger.Info("Judging submission",
		"submissionId", submission.ID,
		"questionId", questionID,
		"userId", userID,
		"language", lang,
		"testCases", len(question.TestCases))

	s.publishPhase(ctx, submission.ID, secondary.PhaseRunning)

	results, err := s.orchestrator.Run(ctx, code, lang, question.TestCases)
	if err != nil {
		// Cancelled mid-run. Partial results are discarded, nothing is
		// persisted.
		s.publishPhase(context.WithoutCancel(ctx), submission.ID, secondary.PhaseFailed)
		return nil, nil, fmt.Errorf("judging aborted: %w", err)
	}

	summary := s.verdicts.Decide(results, len(question.TestCases), question.Points)
	v := summary.Verdict
	submission.Verdict = &v
	submission.Score = summary.Score
	submission.TimeMs = summary.TimeMs
	submission.MemoryKB = summary.MemoryKB

	if err := s.submissionPort.SaveSubmission(ctx, submission, results); err != nil {
		s.logger.Error("Failed to persist judged submission",
			"submissionId", submission.ID,
			"verdict", summary.Verdict,
			"error", err)
		s.publishPhase(context.WithoutCancel(ctx), submission.ID, secondary.PhaseFailed)
		return nil, nil, fmt.Errorf("submission %s: %w", submission.ID, errs.SubmissionNotRecorded)
	}

	s.publishPhase(ctx, submission.ID, secondary.PhaseCompleted)
	s.logger.Info("Submission judged",
		"submissionId", submission.ID,
		"verdict", summary.Verdict,
		"score", summary.Score,
		"timeMs", summary.TimeMs,
		"memoryKb", summary.MemoryKB)

	return submission, results, nil
}

// RunCode executes code against custom input without judging it
func (s *JudgeService) RunCode(ctx context.Context, userID string, questionID uuid.UUID, code string, language string, customInput string) (*domain.ExecutionOutcome, error) {
	lang, ok := domain.ParseLanguage(language)
	if !ok {
		return nil, fmt.Errorf("%q: %w", language, errs.UnsupportedLanguage)
	}
	if code == "" {
		return nil, errs.EmptyCode
	}
	if s.cfg.SafetyScan {
		if token, bad := scanCode(code, lang); bad {
			s.logger.Warn("Rejected unsafe code on dry run",
				"userId", userID,
				"questionId", questionID,
				"token", token)
			return nil, errs.UnsafeCode
		}
	}

	req := &domain.ExecutionRequest{
		SourceCode:    code,
		Language:      lang,
		Stdin:         customInput,
		TimeLimitMs:   runTimeLimitMs,
		MemoryLimitMB: runMemoryLimitMB,
	}
	return s.executor.Execute(ctx, req), nil
}

// GetSubmission retrieves a stored submission with its results
func (s *JudgeService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, []domain.TestCaseResult, error) {
	submission, err := s.submissionPort.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if submission == nil {
		return nil, nil, errs.SubmissionNotFound
	}
	results, err := s.submissionPort.GetSubmissionResults(ctx, submissionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get submission results: %w", err)
	}
	return submission, results, nil
}

// GetJudgePhase reports the live phase of a judging run
func (s *JudgeService) GetJudgePhase(ctx context.Context, submissionID uuid.UUID) (secondary.JudgePhase, error) {
	return s.statusPort.GetPhase(ctx, submissionID)
}

// validate runs every pre-executor check. Order matters: nothing is
// dispatched or persisted until all of these pass.
func (s *JudgeService) validate(ctx context.Context, questionID uuid.UUID, code string, language string) (domain.Language, *domain.Question, error) {
	lang, ok := domain.ParseLanguage(language)
	if !ok {
		return "", nil, fmt.Errorf("%q: %w", language, errs.UnsupportedLanguage)
	}
	if code == "" {
		return "", nil, errs.EmptyCode
	}
	if s.cfg.SafetyScan {
		if token, bad := scanCode(code, lang); bad {
			s.logger.Warn("Rejected unsafe code",
				"questionId", questionID,
				"token", token)
			return "", nil, errs.UnsafeCode
		}
	}

	question, err := s.questionPort.GetQuestionWithActiveTestCases(ctx, questionID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve question: %w", err)
	}
	if question == nil || !question.Judgeable() {
		return "", nil, errs.QuestionNotFound
	}
	return lang, question, nil
}

// publishPhase is best-effort; a stale or missing live phase never fails
// the pipeline.
func (s *JudgeService) publishPhase(ctx context.Context, submissionID uuid.UUID, phase secondary.JudgePhase) {
	if err := s.statusPort.SetPhase(ctx, submissionID, phase); err != nil {
		s.logger.Warn("Failed to publish judge phase",
			"submissionId", submissionID,
			"phase", phase,
			"error", err)
	}
}
