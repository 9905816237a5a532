package domain

import "github.com/google/uuid"

// TestCaseResult represents the outcome of running a submission against a
// single test case, tied back to the case it was produced from.
type TestCaseResult struct {
	TestCaseID     uuid.UUID
	Input          string
	ExpectedOutput string
	ActualOutput   string
	Passed         bool
	Status         ExecutionStatus
	TimeMs         int64
	MemoryKB       int64
	ErrorMessage   string
	Hidden         bool
}

// Redacted returns a copy safe to show to the submitting user. Hidden test
// cases keep their pass/fail outcome and resource figures but withhold the
// input and output text.
func (r TestCaseResult) Redacted() TestCaseResult {
	if !r.Hidden {
		return r
	}
	out := r
	out.Input = ""
	out.ExpectedOutput = ""
	out.ActualOutput = ""
	return out
}

type TestCaseResultTable struct {
	SubmissionID   string
	TestCaseID     string
	Input          string
	ExpectedOutput string
	ActualOutput   string
	Passed         string
	Status         string
	TimeMs         string
	MemoryKB       string
	ErrorMessage   string
	IsHidden       string
}

func GetTestCaseResultTable() TestCaseResultTable {
	return TestCaseResultTable{
		SubmissionID:   "submission_id",
		TestCaseID:     "test_case_id",
		Input:          "input",
		ExpectedOutput: "expected_output",
		ActualOutput:   "actual_output",
		Passed:         "passed",
		Status:         "status",
		TimeMs:         "time_ms",
		MemoryKB:       "memory_kb",
		ErrorMessage:   "error_message",
		IsHidden:       "is_hidden",
	}
}

func (TestCaseResultTable) TableName() string {
	return "test_case_results"
}
