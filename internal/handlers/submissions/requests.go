package submissions

import (
	"time"

	"github.com/google/uuid"

	"gitlab.com/fcv-judge.net/internal/domain"
)

type SubmitCodeRequest struct {
	QuestionID uuid.UUID `json:"questionId"`
	Language   string    `json:"language"`
	Code       string    `json:"code"`
}

type RunCodeRequest struct {
	QuestionID  uuid.UUID `json:"questionId"`
	Language    string    `json:"language"`
	Code        string    `json:"code"`
	CustomInput string    `json:"customInput"`
}

type TestCaseResultResponse struct {
	TestCaseID     uuid.UUID `json:"testCaseId"`
	Input          string    `json:"input,omitempty"`
	ExpectedOutput string    `json:"expectedOutput,omitempty"`
	ActualOutput   string    `json:"actualOutput,omitempty"`
	Passed         bool      `json:"passed"`
	Status         string    `json:"status"`
	TimeMs         int64     `json:"timeMs"`
	MemoryKB       int64     `json:"memoryKb"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	Hidden         bool      `json:"hidden"`
}

type SubmissionResponse struct {
	ID         uuid.UUID                `json:"id"`
	QuestionID uuid.UUID                `json:"questionId"`
	UserID     string                   `json:"userId"`
	Language   string                   `json:"language"`
	Verdict    string                   `json:"verdict,omitempty"`
	Score      int                      `json:"score"`
	TimeMs     int64                    `json:"timeMs"`
	MemoryKB   int64                    `json:"memoryKb"`
	CreatedAt  time.Time                `json:"createdAt"`
	Results    []TestCaseResultResponse `json:"results"`
}

type RunCodeResponse struct {
	Status        string `json:"status"`
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr,omitempty"`
	CompileOutput string `json:"compileOutput,omitempty"`
	TimeMs        int64  `json:"timeMs"`
	MemoryKB      int64  `json:"memoryKb"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

type JudgePhaseResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	Phase        string    `json:"phase"`
}

// newSubmissionResponse builds the external view of a judged submission.
// Hidden test case results are redacted before they leave the service.
func newSubmissionResponse(submission *domain.Submission, results []domain.TestCaseResult) SubmissionResponse {
	resp := SubmissionResponse{
		ID:         submission.ID,
		QuestionID: submission.QuestionID,
		UserID:     submission.UserID,
		Language:   string(submission.Language),
		Score:      submission.Score,
		TimeMs:     submission.TimeMs,
		MemoryKB:   submission.MemoryKB,
		CreatedAt:  submission.CreatedAt,
		Results:    make([]TestCaseResultResponse, 0, len(results)),
	}
	if submission.Verdict != nil {
		resp.Verdict = string(*submission.Verdict)
	}
	for _, res := range results {
		r := res.Redacted()
		resp.Results = append(resp.Results, TestCaseResultResponse{
			TestCaseID:     r.TestCaseID,
			Input:          r.Input,
			ExpectedOutput: r.ExpectedOutput,
			ActualOutput:   r.ActualOutput,
			Passed:         r.Passed,
			Status:         string(r.Status),
			TimeMs:         r.TimeMs,
			MemoryKB:       r.MemoryKB,
			ErrorMessage:   r.ErrorMessage,
			Hidden:         r.Hidden,
		})
	}
	return resp
}

func newRunCodeResponse(outcome *domain.ExecutionOutcome) RunCodeResponse {
	return RunCodeResponse{
		Status:        string(outcome.Status),
		Stdout:        outcome.Stdout,
		Stderr:        outcome.Stderr,
		CompileOutput: outcome.CompileOutput,
		TimeMs:        outcome.TimeMs,
		MemoryKB:      outcome.MemoryKB,
		ErrorMessage:  outcome.ErrorMessage,
	}
}
