package repository

import (
	"context"
	"path/filepath"
	"testing"

	"interview-bank/internal/config"
	"interview-bank/internal/database"
	"interview-bank/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "questions.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db.DB, config.DriverSQLite))
	return db
}

func TestSQLite_ThemeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite integration test in short mode")
	}
	db := openSQLite(t)
	ctx := context.Background()
	themes := NewThemeDatabaseAdapter(db)

	next, err := themes.NextOrderIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), next)

	id, inserted, err := themes.InsertIfAbsent(ctx, "Go", next)
	require.NoError(t, err)
	require.True(t, inserted)

	_, inserted, err = themes.InsertIfAbsent(ctx, "Go", 1)
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate name must not insert")

	existing, err := themes.GetByName(ctx, "Go")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, id, existing.ID)

	otherID, _, err := themes.InsertIfAbsent(ctx, "SQL", 1)
	require.NoError(t, err)

	taken, err := themes.NameTakenByOther(ctx, "Go", otherID)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = themes.NameTakenByOther(ctx, "Go", id)
	require.NoError(t, err)
	assert.False(t, taken)

	renamed, err := themes.Rename(ctx, otherID, "Databases")
	require.NoError(t, err)
	assert.True(t, renamed)

	byName, err := themes.ListByName(ctx)
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Databases", byName[0].Name)
}

func TestSQLite_QuestionBucketsAndThemeDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite integration test in short mode")
	}
	db := openSQLite(t)
	ctx := context.Background()
	themes := NewThemeDatabaseAdapter(db)
	questions := NewQuestionDatabaseAdapter(db)

	themeID, _, err := themes.InsertIfAbsent(ctx, "Go", 0)
	require.NoError(t, err)

	for i, title := range []string{"first", "second"} {
		next, err := questions.NextOrderIndex(ctx, &themeID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), next)
		require.NoError(t, questions.Insert(ctx, &domain.Question{Title: title, Answer: "a", ThemeID: &themeID, OrderIndex: next}))
	}

	loose := &domain.Question{Title: "loose", Answer: "a"}
	require.NoError(t, questions.Insert(ctx, loose))
	assert.NotZero(t, loose.ID)

	themed, err := questions.ListByBucket(ctx, &themeID)
	require.NoError(t, err)
	require.Len(t, themed, 2)
	assert.Equal(t, "first", themed[0].Title)

	unthemed, err := questions.ListByBucket(ctx, nil)
	require.NoError(t, err)
	require.Len(t, unthemed, 1)
	assert.Nil(t, unthemed[0].ThemeID)

	// Foreign key ON DELETE SET NULL keeps the questions.
	deleted, err := themes.Delete(ctx, themeID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := questions.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, q := range all {
		assert.Nil(t, q.ThemeID)
	}
}

func TestSQLite_TransactionRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite integration test in short mode")
	}
	db := openSQLite(t)
	ctx := context.Background()
	tm := NewTransactionManagerAdapter(db)
	themes := NewThemeDatabaseAdapter(db)

	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		if _, _, err := themes.InsertIfAbsent(ctx, "Go", 0); err != nil {
			return err
		}
		return domain.NewConflictError("abort")
	})
	require.Error(t, err)

	list, err := themes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
