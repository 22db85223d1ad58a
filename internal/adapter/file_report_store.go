package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"interview-bank/internal/domain"

	"github.com/spf13/afero"
)

// UnknownFileName is used when a name has no characters left after sanitizing.
const UnknownFileName = "Unknown"

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// SafeFileName keeps letters, digits, underscores, hyphens and whitespace,
// then turns every space into an underscore.
func SafeFileName(name string) string {
	safe := unsafeFileChars.ReplaceAllString(name, "")
	safe = strings.TrimSpace(safe)
	safe = strings.ReplaceAll(safe, " ", "_")
	if safe == "" {
		return UnknownFileName
	}
	return safe
}

// ReportFileName is deterministic per interviewee and calendar day.
func ReportFileName(report *domain.InterviewReport) string {
	return SafeFileName(report.IntervieweeName) + "_" + report.DateLabel() + ".txt"
}

// FileReportStore writes interview reports as text files into one directory.
type FileReportStore struct {
	fs  afero.Fs
	dir string
}

func NewFileReportStore(fs afero.Fs, dir string) domain.ReportStore {
	return &FileReportStore{fs: fs, dir: dir}
}

// Save creates the directory if needed and overwrites any report written
// earlier the same day for the same name.
func (s *FileReportStore) Save(ctx context.Context, report *domain.InterviewReport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, ReportFileName(report))
	if err := afero.WriteFile(s.fs, path, []byte(RenderReport(report)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

// RenderReport formats the plain text report.
func RenderReport(report *domain.InterviewReport) string {
	t := report.Tally

	var b strings.Builder
	fmt.Fprintf(&b, "Результаты технического интервью: %s\n", report.IntervieweeName)
	b.WriteString("===================================\n")
	fmt.Fprintf(&b, "Всего вопросов в скрининге: %d\n", t.Total())
	fmt.Fprintf(&b, "Оценено вопросов: %d\n", t.Answered())
	fmt.Fprintf(&b, "Пропущено вопросов: %d\n", t.Unanswered)
	b.WriteString("-----------------------------------\n")
	fmt.Fprintf(&b, "Успешных ответов (✅): %d\n", t.Positive)
	fmt.Fprintf(&b, "Нейтральных ответов (⚠️): %d\n", t.Neutral)
	fmt.Fprintf(&b, "Неуспешных ответов (❌): %d\n", t.Negative)
	fmt.Fprintf(&b, "Рейтинг (от оцененных): %s%%\n\n", report.RatingLabel())
	b.WriteString("Детализация по вопросам:\n")
	b.WriteString("------------------------\n")

	for _, section := range report.Sections {
		fmt.Fprintf(&b, "\n--- %s ---\n", strings.ToUpper(section.Name))
		for _, line := range section.Lines {
			fmt.Fprintf(&b, "%s %s\n", line.Glyph(), line.Title)
		}
	}
	return b.String()
}
