// Package questionrepository contains the PostgreSQL implementation of
// the question store read side.
package questionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/domain"
	querybuilder "gitlab.com/fcv-judge.net/internal/utils"
)

var _ secondary.QuestionPort = &questionRepo{}

type questionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.QuestionPort {
	return &questionRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// GetQuestionWithActiveTestCases loads the question and its active test
// cases ordered by stored position. Returns nil when the question does
// not exist.
func (r *questionRepo) GetQuestionWithActiveTestCases(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	questionTbl := domain.GetQuestionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(questionTbl.ID, questionTbl.Title, questionTbl.Type, questionTbl.Points, questionTbl.Active).
		From(questionTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", questionTbl.ID), questionID).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var question domain.Question
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&question.ID,
		&question.Title,
		&question.Type,
		&question.Points,
		&question.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get question", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	testCases, err := r.activeTestCases(ctx, questionID)
	if err != nil {
		return nil, err
	}
	question.TestCases = testCases

	return &question, nil
}

func (r *questionRepo) activeTestCases(ctx context.Context, questionID uuid.UUID) ([]domain.TestCase, error) {
	tcTbl := domain.GetTestCaseTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tcTbl.ID, tcTbl.QuestionID, tcTbl.Input, tcTbl.ExpectedOutput,
			tcTbl.IsHidden, tcTbl.TimeLimitMs, tcTbl.MemoryLimitMB, tcTbl.Position).
		From(tcTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tcTbl.QuestionID), questionID).
		And(fmt.Sprintf("%s = ?", tcTbl.Active), true).
		OrderBy(tcTbl.Position, true).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get test cases", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}
	defer rows.Close()

	var testCases []domain.TestCase
	for rows.Next() {
		tc := domain.TestCase{Active: true}
		if err := rows.Scan(
			&tc.ID,
			&tc.QuestionID,
			&tc.Input,
			&tc.ExpectedOutput,
			&tc.IsHidden,
			&tc.TimeLimitMs,
			&tc.MemoryLimitMB,
			&tc.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test case: %w", err)
		}
		testCases = append(testCases, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test cases: %w", err)
	}

	return testCases, nil
}
