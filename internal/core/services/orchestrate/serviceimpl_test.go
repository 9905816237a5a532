package orchestrate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fcv-judge.net/internal/adapter/logging"
	"gitlab.com/fcv-judge.net/internal/core/services/orchestrate"
	"gitlab.com/fcv-judge.net/internal/domain"
)

// fakeExecutor replays scripted outcomes and records every request it saw
type fakeExecutor struct {
	outcomes []*domain.ExecutionOutcome
	requests []*domain.ExecutionRequest
}

func (f *fakeExecutor) Execute(_ context.Context, req *domain.ExecutionRequest) *domain.ExecutionOutcome {
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i >= len(f.outcomes) {
		return &domain.ExecutionOutcome{Status: domain.StatusInternalError, ErrorMessage: "no scripted outcome"}
	}
	return f.outcomes[i]
}

func accepted(stdout string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{Status: domain.StatusAccepted, Stdout: stdout, TimeMs: 10, MemoryKB: 1024}
}

func testCase(expected string) domain.TestCase {
	return domain.TestCase{
		ID:             uuid.New(),
		Input:          "in",
		ExpectedOutput: expected,
		TimeLimitMs:    1000,
		MemoryLimitMB:  128,
		Active:         true,
	}
}

func newOrchestrator(exec *fakeExecutor) *orchestrate.OrchestratorService {
	return orchestrate.NewOrchestratorService(exec, logging.NewNopLogger(), time.Second)
}

func TestRunAllCasesPass(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		accepted("1"),
		accepted("2"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{testCase("1"), testCase("2")}
	results, err := svc.Run(context.Background(), "code", domain.LanguagePython, cases)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, r := range results {
		assert.True(t, r.Passed, "case %d", i)
		assert.Equal(t, domain.StatusAccepted, r.Status)
		assert.Equal(t, cases[i].ID, r.TestCaseID)
	}
}

func TestRunComparesTrimmedCaseFolded(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		accepted("  Hello World\n"),
	}}
	svc := newOrchestrator(exec)

	results, err := svc.Run(context.Background(), "code", domain.LanguagePython,
		[]domain.TestCase{testCase("hello world")})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestRunOutputMismatchBecomesWrongAnswer(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		accepted("41"),
	}}
	svc := newOrchestrator(exec)

	results, err := svc.Run(context.Background(), "code", domain.LanguagePython,
		[]domain.TestCase{testCase("42")})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, domain.StatusWrongAnswer, results[0].Status)
}

func TestRunStopsOnCompilationError(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		{Status: domain.StatusCompilationError, CompileOutput: "expected ';'"},
		accepted("2"),
		accepted("3"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{testCase("1"), testCase("2"), testCase("3")}
	results, err := svc.Run(context.Background(), "code", domain.LanguageC, cases)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, exec.requests, 1, "no further test case may be dispatched")
	assert.Equal(t, domain.StatusCompilationError, results[0].Status)
	assert.Equal(t, "expected ';'", results[0].ErrorMessage)
}

func TestRunStopsOnRuntimeErrorEvenWhenNextWouldPass(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		{Status: domain.StatusRuntimeError, Stderr: "index out of range"},
		accepted("2"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{testCase("1"), testCase("2")}
	results, err := svc.Run(context.Background(), "code", domain.LanguagePython, cases)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, exec.requests, 1)
	assert.Equal(t, "index out of range", results[0].ErrorMessage)
}

func TestRunContinuesPastInternalError(t *testing.T) {
	t.Parallel()
	// An unreachable executor on one case must not skip the remaining
	// cases; only compile and runtime failures stop the run.
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		{Status: domain.StatusInternalError, ErrorMessage: "executor unavailable"},
		accepted("2"),
		accepted("3"),
		accepted("4"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{testCase("1"), testCase("2"), testCase("3"), testCase("4")}
	results, err := svc.Run(context.Background(), "code", domain.LanguagePython, cases)

	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Len(t, exec.requests, 4)
	assert.Equal(t, domain.StatusInternalError, results[0].Status)
	assert.True(t, results[3].Passed)
}

func TestRunContinuesPastLimitViolations(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		{Status: domain.StatusTimeLimitExceeded, TimeMs: 3000},
		{Status: domain.StatusMemoryLimitExceeded, MemoryKB: 262144},
		accepted("3"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{testCase("1"), testCase("2"), testCase("3")}
	results, err := svc.Run(context.Background(), "code", domain.LanguageCpp, cases)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[2].Passed)
}

func TestRunForwardsPerCaseLimits(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		accepted("1"),
		accepted("2"),
	}}
	svc := newOrchestrator(exec)

	cases := []domain.TestCase{
		{ID: uuid.New(), Input: "a", ExpectedOutput: "1", TimeLimitMs: 500, MemoryLimitMB: 64},
		{ID: uuid.New(), Input: "b", ExpectedOutput: "2", TimeLimitMs: 2000, MemoryLimitMB: 512},
	}
	_, err := svc.Run(context.Background(), "code", domain.LanguageGo, cases)

	require.NoError(t, err)
	require.Len(t, exec.requests, 2)
	assert.Equal(t, int64(500), exec.requests[0].TimeLimitMs)
	assert.Equal(t, int64(64), exec.requests[0].MemoryLimitMB)
	assert.Equal(t, "a", exec.requests[0].Stdin)
	assert.Equal(t, int64(2000), exec.requests[1].TimeLimitMs)
	assert.Equal(t, int64(512), exec.requests[1].MemoryLimitMB)
}

func TestRunHiddenFlagPropagates(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{
		accepted("1"),
	}}
	svc := newOrchestrator(exec)

	tc := testCase("1")
	tc.IsHidden = true
	results, err := svc.Run(context.Background(), "code", domain.LanguagePython, []domain.TestCase{tc})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Hidden)
}

func TestRunCancelledContextDiscardsResults(t *testing.T) {
	t.Parallel()
	exec := &fakeExecutor{outcomes: []*domain.ExecutionOutcome{accepted("1")}}
	svc := newOrchestrator(exec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.Run(ctx, "code", domain.LanguagePython, []domain.TestCase{testCase("1")})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
	assert.Empty(t, exec.requests)
}
