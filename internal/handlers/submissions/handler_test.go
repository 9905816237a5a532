package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fcv-judge.net/internal/adapter/logging"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/core/services/judge"
	"gitlab.com/fcv-judge.net/internal/domain"
	"gitlab.com/fcv-judge.net/internal/static/errs"
)

var _ judge.IJudgeService = (*stubJudgeService)(nil)

type stubJudgeService struct {
	submission *domain.Submission
	results    []domain.TestCaseResult
	outcome    *domain.ExecutionOutcome
	phase      secondary.JudgePhase
	err        error
}

func (s *stubJudgeService) SubmitCode(_ context.Context, _ string, _ uuid.UUID, _ string, _ string) (*domain.Submission, []domain.TestCaseResult, error) {
	return s.submission, s.results, s.err
}

func (s *stubJudgeService) RunCode(_ context.Context, _ string, _ uuid.UUID, _ string, _ string, _ string) (*domain.ExecutionOutcome, error) {
	return s.outcome, s.err
}

func (s *stubJudgeService) GetSubmission(_ context.Context, _ uuid.UUID) (*domain.Submission, []domain.TestCaseResult, error) {
	return s.submission, s.results, s.err
}

func (s *stubJudgeService) GetJudgePhase(_ context.Context, _ uuid.UUID) (secondary.JudgePhase, error) {
	return s.phase, s.err
}

func newTestRouter(svc judge.IJudgeService) *mux.Router {
	router := mux.NewRouter()
	NewSubmissionHandler(svc, logging.NewNopLogger()).RegisterRoutes(router)
	return router
}

func judgedSubmission() (*domain.Submission, []domain.TestCaseResult) {
	submission := domain.NewSubmission("user-1", uuid.New(), "print(1)", domain.LanguagePython)
	verdict := domain.VerdictAccepted
	submission.Verdict = &verdict
	submission.Score = 100
	results := []domain.TestCaseResult{
		{
			TestCaseID:     uuid.New(),
			Input:          "1",
			ExpectedOutput: "1",
			ActualOutput:   "1",
			Passed:         true,
			Status:         domain.StatusAccepted,
		},
		{
			TestCaseID:     uuid.New(),
			Input:          "hidden-in",
			ExpectedOutput: "hidden-out",
			ActualOutput:   "hidden-out",
			Passed:         true,
			Status:         domain.StatusAccepted,
			Hidden:         true,
		},
	}
	return submission, results
}

func TestSubmitCodeRedactsHiddenResults(t *testing.T) {
	submission, results := judgedSubmission()
	router := newTestRouter(&stubJudgeService{submission: submission, results: results})

	body, _ := json.Marshal(SubmitCodeRequest{
		QuestionID: submission.QuestionID,
		Language:   "python",
		Code:       "print(1)",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, submission.ID, resp.ID)
	assert.Equal(t, string(domain.VerdictAccepted), resp.Verdict)
	assert.Equal(t, 100, resp.Score)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, "1", resp.Results[0].Input)
	assert.True(t, resp.Results[1].Hidden)
	assert.Empty(t, resp.Results[1].Input)
	assert.Empty(t, resp.Results[1].ExpectedOutput)
	assert.Empty(t, resp.Results[1].ActualOutput)
	assert.True(t, resp.Results[1].Passed)
}

func TestSubmitCodeMalformedBody(t *testing.T) {
	router := newTestRouter(&stubJudgeService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitCodeErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"question not found", errs.QuestionNotFound, http.StatusNotFound},
		{"unsupported language", errs.UnsupportedLanguage, http.StatusBadRequest},
		{"empty code", errs.EmptyCode, http.StatusBadRequest},
		{"unsafe code", errs.UnsafeCode, http.StatusBadRequest},
		{"not recorded", errs.SubmissionNotRecorded, http.StatusInternalServerError},
		{"internal", errs.InternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubJudgeService{err: tc.err})
			body, _ := json.Marshal(SubmitCodeRequest{QuestionID: uuid.New(), Language: "python", Code: "x"})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader(body)))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRunCodeReturnsRawOutcome(t *testing.T) {
	outcome := &domain.ExecutionOutcome{
		Status:   domain.StatusAccepted,
		Stdout:   "hello\n",
		TimeMs:   12,
		MemoryKB: 512,
	}
	router := newTestRouter(&stubJudgeService{outcome: outcome})

	body, _ := json.Marshal(RunCodeRequest{
		QuestionID:  uuid.New(),
		Language:    "python",
		Code:        "print('hello')",
		CustomInput: "ignored",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submissions/run", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RunCodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.StatusAccepted), resp.Status)
	assert.Equal(t, "hello\n", resp.Stdout)
	assert.Equal(t, int64(12), resp.TimeMs)
}

func TestGetSubmissionInvalidID(t *testing.T) {
	router := newTestRouter(&stubJudgeService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSubmissionNotFound(t *testing.T) {
	router := newTestRouter(&stubJudgeService{err: errs.SubmissionNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJudgePhase(t *testing.T) {
	router := newTestRouter(&stubJudgeService{phase: secondary.PhaseRunning})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions/"+uuid.NewString()+"/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp JudgePhaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(secondary.PhaseRunning), resp.Phase)
}

func TestGetJudgePhaseUnknown(t *testing.T) {
	router := newTestRouter(&stubJudgeService{phase: ""})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions/"+uuid.NewString()+"/status", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
