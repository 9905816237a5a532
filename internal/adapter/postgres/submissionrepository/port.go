// Package submissionrepository contains the PostgreSQL implementation of
// the submission store.
package submissionrepository

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

var _ secondary.SubmissionPort = &submissionRepo{}

// resultPositionCol orders stored results; it is assigned from the insert
// order so repeated views replay the execution order.
const resultPositionCol = "position"

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.SubmissionPort {
	return &submissionRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// SaveSubmission writes the submission and all of its results in one
// transaction. A judged verdict is only considered committed when the
// whole unit lands.
func (r *submissionRepo) SaveSubmission(ctx context.Context, submission *domain.Submission, results []domain.TestCaseResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.insertSubmission(ctx, tx, submission); err != nil {
		return err
	}
	if err := r.insertResults(ctx, tx, submission.ID, results); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) insertSubmission(ctx context.Context, tx *sqlx.Tx, submission *domain.Submission) error {
	subTbl := domain.GetSubmissionTable()

	var verdict sql.NullString
	if submission.Verdict != nil {
		verdict = sql.NullString{String: string(*submission.Verdict), Valid: true}
	}

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(subTbl.ID, subTbl.QuestionID, subTbl.UserID, subTbl.Language, subTbl.Code,
			subTbl.Verdict, subTbl.Score, subTbl.TimeMs, subTbl.MemoryKB, subTbl.CreatedAt).
		Into(subTbl.TableName()).
		Values(submission.ID, submission.QuestionID, submission.UserID, submission.Language,
			submission.Code, verdict, submission.Score, submission.TimeMs, submission.MemoryKB,
			submission.CreatedAt).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to insert submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) insertResults(ctx context.Context, tx *sqlx.Tx, submissionID uuid.UUID, results []domain.TestCaseResult) error {
	if len(results) == 0 {
		return nil
	}

	resTbl := domain.GetTestCaseResultTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Insert(resTbl.SubmissionID, resTbl.TestCaseID, resTbl.Input, resTbl.ExpectedOutput,
			resTbl.ActualOutput, resTbl.Passed, resTbl.Status, resTbl.TimeMs, resTbl.MemoryKB,
			resTbl.ErrorMessage, resTbl.IsHidden, resultPositionCol).
		Into(resTbl.TableName())
	for i, res := range results {
		qb = qb.Values(submissionID, res.TestCaseID, res.Input, res.ExpectedOutput,
			res.ActualOutput, res.Passed, res.Status, res.TimeMs, res.MemoryKB,
			res.ErrorMessage, res.Hidden, i)
	}
	query, args := qb.Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to insert test case results", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to insert test case results: %w", err)
	}
	return nil
}

// GetSubmission retrieves a stored submission by ID
func (r *submissionRepo) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(subTbl.ID, subTbl.QuestionID, subTbl.UserID, subTbl.Language, subTbl.Code,
			subTbl.Verdict, subTbl.Score, subTbl.TimeMs, subTbl.MemoryKB, subTbl.CreatedAt).
		From(subTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", subTbl.ID), submissionID).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var submission domain.Submission
	var verdict sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&submission.ID,
		&submission.QuestionID,
		&submission.UserID,
		&submission.Language,
		&submission.Code,
		&verdict,
		&submission.Score,
		&submission.TimeMs,
		&submission.MemoryKB,
		&submission.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if verdict.Valid {
		v := domain.Verdict(verdict.String)
		submission.Verdict = &v
	}
	return &submission, nil
}

// GetSubmissionResults retrieves stored results in execution order
func (r *submissionRepo) GetSubmissionResults(ctx context.Context, submissionID uuid.UUID) ([]domain.TestCaseResult, error) {
	resTbl := domain.GetTestCaseResultTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(resTbl.TestCaseID, resTbl.Input, resTbl.ExpectedOutput, resTbl.ActualOutput,
			resTbl.Passed, resTbl.Status, resTbl.TimeMs, resTbl.MemoryKB, resTbl.ErrorMessage,
			resTbl.IsHidden).
		From(resTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", resTbl.SubmissionID), submissionID).
		OrderBy(resultPositionCol, true).
		Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get submission results", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission results: %w", err)
	}
	defer rows.Close()

	var results []domain.TestCaseResult
	for rows.Next() {
		var res domain.TestCaseResult
		if err := rows.Scan(
			&res.TestCaseID,
			&res.Input,
			&res.ExpectedOutput,
			&res.ActualOutput,
			&res.Passed,
			&res.Status,
			&res.TimeMs,
			&res.MemoryKB,
			&res.ErrorMessage,
			&res.Hidden,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test case result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test case results: %w", err)
	}

	return results, nil
}
