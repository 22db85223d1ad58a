package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-bank/internal/domain"
	"interview-bank/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const themeColumns = "id, name, order_index"

// ThemeDatabaseAdapter implements domain.ThemeRepository using sqlx
type ThemeDatabaseAdapter struct {
	db *sqlx.DB
}

func NewThemeDatabaseAdapter(db *sqlx.DB) domain.ThemeRepository {
	return &ThemeDatabaseAdapter{db: db}
}

func (r *ThemeDatabaseAdapter) List(ctx context.Context) ([]domain.Theme, error) {
	return r.list(ctx, "SELECT "+themeColumns+" FROM themes ORDER BY order_index, id")
}

func (r *ThemeDatabaseAdapter) ListByName(ctx context.Context) ([]domain.Theme, error) {
	return r.list(ctx, "SELECT "+themeColumns+" FROM themes ORDER BY name")
}

func (r *ThemeDatabaseAdapter) list(ctx context.Context, query string) ([]domain.Theme, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []models.Theme
	if err := ex.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]domain.Theme, len(rows))
	for i := range rows {
		themes[i] = toDomainTheme(&rows[i])
	}
	return themes, nil
}

func (r *ThemeDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Theme, error) {
	return r.getOne(ctx, "SELECT "+themeColumns+" FROM themes WHERE id = ?", id)
}

func (r *ThemeDatabaseAdapter) GetByName(ctx context.Context, name string) (*domain.Theme, error) {
	return r.getOne(ctx, "SELECT "+themeColumns+" FROM themes WHERE name = ?", name)
}

func (r *ThemeDatabaseAdapter) getOne(ctx context.Context, query string, arg interface{}) (*domain.Theme, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var row models.Theme
	if err := ex.GetContext(ctx, &row, ex.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	theme := toDomainTheme(&row)
	return &theme, nil
}

func (r *ThemeDatabaseAdapter) NextOrderIndex(ctx context.Context) (int64, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var next int64
	if err := ex.GetContext(ctx, &next, "SELECT COALESCE(MAX(order_index), -1) + 1 FROM themes"); err != nil {
		return 0, fmt.Errorf("failed to compute next theme position: %w", err)
	}
	return next, nil
}

func (r *ThemeDatabaseAdapter) InsertIfAbsent(ctx context.Context, name string, orderIndex int64) (int64, bool, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return 0, false, err
	}

	query := `INSERT INTO themes (name, order_index) VALUES (?, ?)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`

	var id int64
	if err := ex.GetContext(ctx, &id, ex.Rebind(query), name, orderIndex); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to insert theme: %w", err)
	}
	return id, true, nil
}

func (r *ThemeDatabaseAdapter) NameTakenByOther(ctx context.Context, name string, id int64) (bool, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return false, err
	}

	var count int
	if err := ex.GetContext(ctx, &count, ex.Rebind("SELECT COUNT(*) FROM themes WHERE name = ? AND id <> ?"), name, id); err != nil {
		return false, fmt.Errorf("failed to check theme name: %w", err)
	}
	return count > 0, nil
}

func (r *ThemeDatabaseAdapter) Rename(ctx context.Context, id int64, name string) (bool, error) {
	return r.execAffecting(ctx, "UPDATE themes SET name = ? WHERE id = ?", name, id)
}

func (r *ThemeDatabaseAdapter) SetOrderIndex(ctx context.Context, id int64, orderIndex int64) error {
	_, err := r.execAffecting(ctx, "UPDATE themes SET order_index = ? WHERE id = ?", orderIndex, id)
	return err
}

func (r *ThemeDatabaseAdapter) Delete(ctx context.Context, id int64) (bool, error) {
	return r.execAffecting(ctx, "DELETE FROM themes WHERE id = ?", id)
}

func (r *ThemeDatabaseAdapter) execAffecting(ctx context.Context, query string, args ...interface{}) (bool, error) {
	ex, err := GetExecutor(ctx, r.db)
	if err != nil {
		return false, err
	}

	result, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func toDomainTheme(t *models.Theme) domain.Theme {
	return domain.Theme{
		ID:         t.ID,
		Name:       t.Name,
		OrderIndex: t.OrderIndex.Int64,
	}
}
