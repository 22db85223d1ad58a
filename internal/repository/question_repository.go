package repository

import (
	"context"
	"fmt"

	"interview-bank/internal/domain"
	"interview-bank/internal/repository/models"
	"interview-bank/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, title, answer, order_index, theme_id"

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (r *QuestionDatabaseAdapter) ListAll(ctx context.Context) ([]domain.Question, error) {
	return r.list(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY order_index, id")
}

// ListByBucket uses two statements because "theme_id = NULL" never matches.
func (r *QuestionDatabaseAdapter) ListByBucket(ctx context.Context, themeID *int64) ([]domain.Question, error) {
	if themeID == nil {
		return r.list(ctx, "SELECT "+questionColumns+" FROM questions WHERE theme_id IS NULL ORDER BY order_index, id")
	}
	return r.list(ctx, "SELECT "+questionColumns+" FROM questions WHERE theme_id = ? ORDER BY order_index, id", *themeID)
}

func (r *QuestionDatabaseAdapter) list(ctx context.Context, query string, args ...interface{}) ([]domain.Question, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []models.Question
	if err := ex.SelectContext(ctx, &rows, ex.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func (r *QuestionDatabaseAdapter) NextOrderIndex(ctx context.Context, themeID *int64) (int64, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var next int64
	if themeID == nil {
		err = ex.GetContext(ctx, &next, "SELECT COALESCE(MAX(order_index), -1) + 1 FROM questions WHERE theme_id IS NULL")
	} else {
		err = ex.GetContext(ctx, &next, ex.Rebind("SELECT COALESCE(MAX(order_index), -1) + 1 FROM questions WHERE theme_id = ?"), *themeID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute next question position: %w", err)
	}
	return next, nil
}

func (r *QuestionDatabaseAdapter) Insert(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot save nil question")
	}
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return err
	}

	query := `INSERT INTO questions (title, answer, theme_id, order_index)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	var id int64
	if err := ex.GetContext(ctx, &id, ex.Rebind(query),
		q.Title,
		q.Answer,
		util.Int64PtrToNullInt64(q.ThemeID),
		q.OrderIndex,
	); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	q.ID = id
	return nil
}

func (r *QuestionDatabaseAdapter) UpdateContent(ctx context.Context, id int64, title, answer string) (bool, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return false, err
	}

	result, err := ex.ExecContext(ctx, ex.Rebind("UPDATE questions SET title = ?, answer = ? WHERE id = ?"), title, answer, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *QuestionDatabaseAdapter) SetPosition(ctx context.Context, id int64, themeID *int64, orderIndex int64) error {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, ex.Rebind("UPDATE questions SET order_index = ?, theme_id = ? WHERE id = ?"),
		orderIndex, util.Int64PtrToNullInt64(themeID), id)
	return err
}

func (r *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) error {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, ex.Rebind("DELETE FROM questions WHERE id = ?"), id)
	return err
}

func toDomainQuestion(q *models.Question) domain.Question {
	return domain.Question{
		ID:         q.ID,
		Title:      q.Title,
		Answer:     q.Answer,
		OrderIndex: q.OrderIndex.Int64,
		ThemeID:    util.NullInt64ToInt64Ptr(q.ThemeID),
	}
}
