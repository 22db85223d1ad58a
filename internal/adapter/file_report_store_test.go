package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"interview-bank/internal/domain"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(name string) *domain.InterviewReport {
	themeID := int64(1)
	overview := domain.GroupByTheme(
		[]domain.Theme{{ID: 1, Name: "Go basics"}},
		[]domain.Question{
			{ID: 1, Title: "<i>Slices</i> ", ThemeID: &themeID},
			{ID: 2, Title: "Maps", ThemeID: &themeID, OrderIndex: 1},
			{ID: 3, Title: "Joins"},
		},
	)
	date := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	return domain.BuildReport(name, date, overview, map[string]string{"1": "positive", "3": "negative"})
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Ivan Petrov", want: "Ivan_Petrov"},
		{in: "Иван Петров", want: "Иван_Петров"},
		{in: "a/b\\c..d", want: "abcd"},
		{in: "jane-doe_2", want: "jane-doe_2"},
		{in: "???", want: UnknownFileName},
		{in: "", want: UnknownFileName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeFileName(tt.in))
		})
	}
}

func TestRenderReport(t *testing.T) {
	got := RenderReport(sampleReport("Ivan"))

	want := "Результаты технического интервью: Ivan\n" +
		"===================================\n" +
		"Всего вопросов в скрининге: 3\n" +
		"Оценено вопросов: 2\n" +
		"Пропущено вопросов: 1\n" +
		"-----------------------------------\n" +
		"Успешных ответов (✅): 1\n" +
		"Нейтральных ответов (⚠️): 0\n" +
		"Неуспешных ответов (❌): 1\n" +
		"Рейтинг (от оцененных): 50.0%\n\n" +
		"Детализация по вопросам:\n" +
		"------------------------\n" +
		"\n--- GO BASICS ---\n" +
		"✅ Slices\n" +
		"➖ Maps\n" +
		"\n--- БЕЗ ТЕМЫ ---\n" +
		"❌ Joins\n"
	assert.Equal(t, want, got)
}

func TestFileReportStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileReportStore(fs, "results")

	path, err := store.Save(context.Background(), sampleReport("Ivan Petrov"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("results", "Ivan_Petrov_2024-03-15.txt"), path)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Результаты технического интервью: Ivan Petrov\n"))
}

func TestFileReportStore_SaveOverwritesSameDay(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileReportStore(fs, "results")
	ctx := context.Background()

	first := sampleReport("Ivan")
	_, err := store.Save(ctx, first)
	require.NoError(t, err)

	second := sampleReport("Ivan")
	second.Sections = nil
	path, err := store.Save(ctx, second)
	require.NoError(t, err)

	files, err := afero.ReadDir(fs, "results")
	require.NoError(t, err)
	assert.Len(t, files, 1)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "GO BASICS")
}

func TestFileReportStore_SaveReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := NewFileReportStore(fs, "results")

	_, err := store.Save(context.Background(), sampleReport("Ivan"))

	assert.Error(t, err)
}

func TestFileReportStore_SaveCancelled(t *testing.T) {
	store := NewFileReportStore(afero.NewMemMapFs(), "results")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, sampleReport("Ivan"))

	assert.ErrorIs(t, err, context.Canceled)
}
