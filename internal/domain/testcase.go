package domain

import "github.com/google/uuid"

// TestCase represents one test case of a coding question. Limits are per
// test case, not per submission. Read-only input to judging.
type TestCase struct {
	ID             uuid.UUID
	QuestionID     uuid.UUID
	Input          string
	ExpectedOutput string
	IsHidden       bool
	TimeLimitMs    int64
	MemoryLimitMB  int64
	Active         bool
	Position       int
}

type TestCaseTable struct {
	ID             string
	QuestionID     string
	Input          string
	ExpectedOutput string
	IsHidden       string
	TimeLimitMs    string
	MemoryLimitMB  string
	Active         string
	Position       string
}

func GetTestCaseTable() TestCaseTable {
	return TestCaseTable{
		ID:             "id",
		QuestionID:     "question_id",
		Input:          "input",
		ExpectedOutput: "expected_output",
		IsHidden:       "is_hidden",
		TimeLimitMs:    "time_limit_ms",
		MemoryLimitMB:  "memory_limit_mb",
		Active:         "active",
		Position:       "position",
	}
}

func (TestCaseTable) TableName() string {
	return "test_cases"
}
