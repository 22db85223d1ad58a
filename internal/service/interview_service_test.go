package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newInterviewServiceWithMocks() (*interviewService, *MockThemeRepository, *MockQuestionRepository, *MockReportStore, *MockReportIndex) {
	themes := new(MockThemeRepository)
	questions := new(MockQuestionRepository)
	store := new(MockReportStore)
	index := new(MockReportIndex)
	svc := NewInterviewService(themes, questions, store, index, 20).(*interviewService)
	svc.now = func() time.Time { return fixedNow }
	return svc, themes, questions, store, index
}

func stubBank(themes *MockThemeRepository, questions *MockQuestionRepository) {
	themes.On("List", mock.Anything).Return([]domain.Theme{
		{ID: 1, Name: "Go", OrderIndex: 0},
		{ID: 2, Name: "Empty", OrderIndex: 1},
	}, nil)
	questions.On("ListAll", mock.Anything).Return([]domain.Question{
		{ID: 10, Title: "<b>Channels</b>", ThemeID: int64Ptr(1), OrderIndex: 0},
		{ID: 11, Title: "Maps", ThemeID: int64Ptr(1), OrderIndex: 1},
		{ID: 12, Title: " Indexes ", OrderIndex: 0},
	}, nil)
}

func TestInterviewService_Finish(t *testing.T) {
	svc, themes, questions, store, index := newInterviewServiceWithMocks()
	ctx := context.Background()
	stubBank(themes, questions)

	store.On("Save", ctx, mock.AnythingOfType("*domain.InterviewReport")).Return("results/Ivan_2024-03-15.txt", nil)
	index.On("Record", ctx, mock.MatchedBy(func(s domain.ReportSummary) bool {
		return s.IntervieweeName == "Ivan" && s.File == "results/Ivan_2024-03-15.txt" && s.RecordedAt.Equal(fixedNow)
	})).Return(nil)

	report, err := svc.Finish(ctx, " Ivan ", map[string]string{
		"10": "positive",
		"11": "neutral",
		"99": "negative",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ivan", report.IntervieweeName)
	assert.Equal(t, "2024-03-15", report.DateLabel())
	assert.Equal(t, "results/Ivan_2024-03-15.txt", report.FilePath)
	require.Len(t, report.Sections, 2, "empty theme is skipped")
	assert.Equal(t, "Go", report.Sections[0].Name)
	assert.Equal(t, "Channels", report.Sections[0].Lines[0].Title)
	assert.Equal(t, domain.UnthemedLabel, report.Sections[1].Name)
	assert.Equal(t, "Indexes", report.Sections[1].Lines[0].Title)
	assert.Equal(t, domain.Tally{Positive: 1, Neutral: 1, Unanswered: 1}, report.Tally)
	assert.Equal(t, "75.0", report.RatingLabel())
	index.AssertExpectations(t)
}

func TestInterviewService_Finish_BlankName(t *testing.T) {
	svc, themes, questions, store, index := newInterviewServiceWithMocks()
	ctx := context.Background()
	stubBank(themes, questions)

	store.On("Save", ctx, mock.MatchedBy(func(r *domain.InterviewReport) bool {
		return r.IntervieweeName == UnknownInterviewee
	})).Return("results/Unknown_2024-03-15.txt", nil)
	index.On("Record", ctx, mock.Anything).Return(nil)

	report, err := svc.Finish(ctx, "   ", nil)

	require.NoError(t, err)
	assert.Equal(t, UnknownInterviewee, report.IntervieweeName)
	assert.Equal(t, 3, report.Tally.Unanswered)
	assert.Equal(t, 0.0, report.Rating())
}

func TestInterviewService_Finish_StoreError(t *testing.T) {
	svc, themes, questions, store, index := newInterviewServiceWithMocks()
	ctx := context.Background()
	stubBank(themes, questions)

	store.On("Save", ctx, mock.Anything).Return("", errors.New("permission denied"))

	_, err := svc.Finish(ctx, "Ivan", map[string]string{})

	assertDomainCode(t, err, domain.ErrInternal)
	index.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestInterviewService_Finish_IndexErrorIgnored(t *testing.T) {
	svc, themes, questions, store, index := newInterviewServiceWithMocks()
	ctx := context.Background()
	stubBank(themes, questions)

	store.On("Save", ctx, mock.Anything).Return("results/Ivan_2024-03-15.txt", nil)
	index.On("Record", ctx, mock.Anything).Return(errors.New("redis: connection refused"))

	report, err := svc.Finish(ctx, "Ivan", map[string]string{"10": "negative"})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Tally.Negative)
}

func TestInterviewService_Finish_LoadError(t *testing.T) {
	svc, themes, _, store, _ := newInterviewServiceWithMocks()
	ctx := context.Background()
	themes.On("List", ctx).Return(nil, errors.New("db closed"))

	_, err := svc.Finish(ctx, "Ivan", nil)

	assertDomainCode(t, err, domain.ErrInternal)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInterviewService_RecentReports(t *testing.T) {
	svc, _, _, _, index := newInterviewServiceWithMocks()
	ctx := context.Background()

	index.On("Recent", ctx, int64(20)).Return(nil, nil).Once()
	list, err := svc.RecentReports(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	index.On("Recent", ctx, int64(20)).Return(nil, errors.New("timeout")).Once()
	_, err = svc.RecentReports(ctx)
	assertDomainCode(t, err, domain.ErrInternal)
}
