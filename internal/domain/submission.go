package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one judging attempt of user code against a question
type Submission struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	UserID     string
	Language   Language
	Code       string
	// Verdict is nil while the submission is pending and is set exactly
	// once when judging finishes. A judged submission is immutable history.
	Verdict   *Verdict
	Score     int
	TimeMs    int64
	MemoryKB  int64
	CreatedAt time.Time
}

// NewSubmission creates a new pending submission
func NewSubmission(userID string, questionID uuid.UUID, code string, language Language) *Submission {
	return &Submission{
		ID:         uuid.New(),
		QuestionID: questionID,
		UserID:     userID,
		Language:   language,
		Code:       code,
		CreatedAt:  time.Now(),
	}
}

// Judged reports whether the submission has reached a terminal verdict
func (s *Submission) Judged() bool {
	return s.Verdict != nil
}

type SubmissionTable struct {
	ID         string
	QuestionID string
	UserID     string
	Language   string
	Code       string
	Verdict    string
	Score      string
	TimeMs     string
	MemoryKB   string
	CreatedAt  string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:         "id",
		QuestionID: "question_id",
		UserID:     "user_id",
		Language:   "language",
		Code:       "code",
		Verdict:    "verdict",
		Score:      "score",
		TimeMs:     "time_ms",
		MemoryKB:   "memory_kb",
		CreatedAt:  "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
