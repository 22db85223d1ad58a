package handler_test

import (
	"context"
	"os"
	"testing"

	"interview-bank/internal/config"
	"interview-bank/internal/domain"
	"interview-bank/internal/handler"
	"interview-bank/internal/logger"
	"interview-bank/internal/middleware"
	"interview-bank/internal/validation"
	"interview-bank/internal/web"

	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Manual Mocks ---

// MockQuestionService
type MockQuestionService struct {
	OverviewFunc        func(ctx context.Context) (*domain.Overview, error)
	AddFormThemesFunc   func(ctx context.Context) ([]domain.Theme, error)
	CreateQuestionFunc  func(ctx context.Context, in domain.NewQuestion) (*domain.Question, error)
	UpdateQuestionFunc  func(ctx context.Context, id int64, title, answer string) error
	DeleteQuestionFunc  func(ctx context.Context, id int64) error
	UpdatePositionsFunc func(ctx context.Context, reorder domain.Reorder) error
}

func (m *MockQuestionService) Overview(ctx context.Context) (*domain.Overview, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(ctx)
	}
	panic("MockQuestionService.OverviewFunc not implemented")
}
func (m *MockQuestionService) AddFormThemes(ctx context.Context) ([]domain.Theme, error) {
	if m.AddFormThemesFunc != nil {
		return m.AddFormThemesFunc(ctx)
	}
	panic("MockQuestionService.AddFormThemesFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, in domain.NewQuestion) (*domain.Question, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, in)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) UpdateQuestion(ctx context.Context, id int64, title, answer string) error {
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, id, title, answer)
	}
	panic("MockQuestionService.UpdateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}
func (m *MockQuestionService) UpdatePositions(ctx context.Context, reorder domain.Reorder) error {
	if m.UpdatePositionsFunc != nil {
		return m.UpdatePositionsFunc(ctx, reorder)
	}
	panic("MockQuestionService.UpdatePositionsFunc not implemented")
}

// MockThemeService
type MockThemeService struct {
	AddThemeFunc      func(ctx context.Context, name string) (*domain.Theme, error)
	RenameThemeFunc   func(ctx context.Context, id int64, name string) error
	ReorderThemesFunc func(ctx context.Context, ids []int64) error
	DeleteThemeFunc   func(ctx context.Context, id int64) error
}

func (m *MockThemeService) AddTheme(ctx context.Context, name string) (*domain.Theme, error) {
	if m.AddThemeFunc != nil {
		return m.AddThemeFunc(ctx, name)
	}
	panic("MockThemeService.AddThemeFunc not implemented")
}
func (m *MockThemeService) RenameTheme(ctx context.Context, id int64, name string) error {
	if m.RenameThemeFunc != nil {
		return m.RenameThemeFunc(ctx, id, name)
	}
	panic("MockThemeService.RenameThemeFunc not implemented")
}
func (m *MockThemeService) ReorderThemes(ctx context.Context, ids []int64) error {
	if m.ReorderThemesFunc != nil {
		return m.ReorderThemesFunc(ctx, ids)
	}
	panic("MockThemeService.ReorderThemesFunc not implemented")
}
func (m *MockThemeService) DeleteTheme(ctx context.Context, id int64) error {
	if m.DeleteThemeFunc != nil {
		return m.DeleteThemeFunc(ctx, id)
	}
	panic("MockThemeService.DeleteThemeFunc not implemented")
}

// MockInterviewService
type MockInterviewService struct {
	FinishFunc        func(ctx context.Context, name string, statuses map[string]string) (*domain.InterviewReport, error)
	RecentReportsFunc func(ctx context.Context) ([]domain.ReportSummary, error)
}

func (m *MockInterviewService) Finish(ctx context.Context, name string, statuses map[string]string) (*domain.InterviewReport, error) {
	if m.FinishFunc != nil {
		return m.FinishFunc(ctx, name, statuses)
	}
	panic("MockInterviewService.FinishFunc not implemented")
}
func (m *MockInterviewService) RecentReports(ctx context.Context) ([]domain.ReportSummary, error) {
	if m.RecentReportsFunc != nil {
		return m.RecentReportsFunc(ctx)
	}
	panic("MockInterviewService.RecentReportsFunc not implemented")
}

// MockPinger
type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Err
}

type testDeps struct {
	questions *MockQuestionService
	themes    *MockThemeService
	interview *MockInterviewService
	pinger    *MockPinger
}

func setupApp() (*fiber.App, *testDeps) {
	deps := &testDeps{
		questions: &MockQuestionService{},
		themes:    &MockThemeService{},
		interview: &MockInterviewService{},
		pinger:    &MockPinger{},
	}

	app := fiber.New(fiber.Config{
		Views:        web.NewEngine(),
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestLogger())
	handler.RegisterRoutes(app, handler.Handlers{
		Pages:     handler.NewPageHandler(deps.questions, deps.interview, validation.NewValidator()),
		Questions: handler.NewQuestionHandler(deps.questions),
		Themes:    handler.NewThemeHandler(deps.themes),
		Reports:   handler.NewReportHandler(deps.interview, deps.pinger),
	})
	return app, deps
}
