package service

import (
	"context"
	"strings"
	"time"

	"interview-bank/internal/domain"
	"interview-bank/internal/logger"

	"go.uber.org/zap"
)

// UnknownInterviewee replaces a blank interviewee name.
const UnknownInterviewee = "Unknown"

// InterviewService turns interview marks into a persisted report
type InterviewService interface {
	Finish(ctx context.Context, name string, statuses map[string]string) (*domain.InterviewReport, error)
	RecentReports(ctx context.Context) ([]domain.ReportSummary, error)
}

type interviewService struct {
	themes      domain.ThemeRepository
	questions   domain.QuestionRepository
	store       domain.ReportStore
	index       domain.ReportIndex
	recentLimit int64
	now         func() time.Time
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(
	themes domain.ThemeRepository,
	questions domain.QuestionRepository,
	store domain.ReportStore,
	index domain.ReportIndex,
	recentLimit int64,
) InterviewService {
	return &interviewService{
		themes:      themes,
		questions:   questions,
		store:       store,
		index:       index,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// Finish builds the report over the whole bank and writes it. The report file
// is required; the recent-report index is best effort.
func (s *interviewService) Finish(ctx context.Context, name string, statuses map[string]string) (*domain.InterviewReport, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownInterviewee
	}

	overview, err := loadOverview(ctx, s.themes, s.questions)
	if err != nil {
		logger.Get().Error("Failed to load questions for report", zap.Error(err))
		return nil, domain.NewInternalError(err)
	}

	now := s.now()
	report := domain.BuildReport(name, now, overview, statuses)

	path, err := s.store.Save(ctx, report)
	if err != nil {
		logger.Get().Error("Failed to write interview report",
			zap.String("interviewee", name),
			zap.Error(err),
		)
		return nil, domain.NewInternalError(err)
	}
	report.FilePath = path

	logger.Get().Info("Interview report saved",
		zap.String("interviewee", name),
		zap.String("path", path),
		zap.Stringer("tally", report.Tally),
		zap.String("rating", report.RatingLabel()),
	)

	summary := report.Summary()
	summary.RecordedAt = now
	if err := s.index.Record(ctx, summary); err != nil {
		logger.Get().Warn("Failed to index interview report", zap.String("path", path), zap.Error(err))
	}

	return report, nil
}

func (s *interviewService) RecentReports(ctx context.Context) ([]domain.ReportSummary, error) {
	summaries, err := s.index.Recent(ctx, s.recentLimit)
	if err != nil {
		logger.Get().Error("Failed to read recent reports", zap.Error(err))
		return nil, domain.NewInternalError(err)
	}
	if summaries == nil {
		summaries = []domain.ReportSummary{}
	}
	return summaries, nil
}
