package domain

import "github.com/google/uuid"

// QuestionType discriminates judgeable coding questions from other kinds
type QuestionType string

const (
	QuestionTypeCoding QuestionType = "CODING"
	QuestionTypeQuiz   QuestionType = "QUIZ"
)

// Question represents a problem users submit code against. TestCases holds
// only active cases, in stored order.
type Question struct {
	ID        uuid.UUID
	Title     string
	Type      QuestionType
	Points    int
	Active    bool
	TestCases []TestCase
}

// Judgeable reports whether the question can go through the judging
// pipeline: an active coding question with at least one test case.
func (q *Question) Judgeable() bool {
	return q.Active && q.Type == QuestionTypeCoding && len(q.TestCases) > 0
}

type QuestionTable struct {
	ID     string
	Title  string
	Type   string
	Points string
	Active string
}

func GetQuestionTable() QuestionTable {
	return QuestionTable{
		ID:     "id",
		Title:  "title",
		Type:   "type",
		Points: "points",
		Active: "active",
	}
}

func (QuestionTable) TableName() string {
	return "questions"
}
