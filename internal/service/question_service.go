package service

import (
	"context"
	"strings"

	"interview-bank/internal/domain"
	"interview-bank/internal/logger"
	"interview-bank/internal/validation"

	"go.uber.org/zap"
)

// QuestionService defines the operations on the question bank
type QuestionService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	AddFormThemes(ctx context.Context) ([]domain.Theme, error)
	CreateQuestion(ctx context.Context, in domain.NewQuestion) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, id int64, title, answer string) error
	DeleteQuestion(ctx context.Context, id int64) error
	UpdatePositions(ctx context.Context, reorder domain.Reorder) error
}

type questionService struct {
	themes    domain.ThemeRepository
	questions domain.QuestionRepository
	tx        domain.TransactionManager
	validator *validation.Validator
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	themes domain.ThemeRepository,
	questions domain.QuestionRepository,
	tx domain.TransactionManager,
	validator *validation.Validator,
) QuestionService {
	return &questionService{
		themes:    themes,
		questions: questions,
		tx:        tx,
		validator: validator,
	}
}

func (s *questionService) Overview(ctx context.Context) (*domain.Overview, error) {
	overview, err := loadOverview(ctx, s.themes, s.questions)
	if err != nil {
		logger.Get().Error("Failed to load question overview", zap.Error(err))
		return nil, domain.NewInternalError(err)
	}
	return overview, nil
}

func (s *questionService) AddFormThemes(ctx context.Context) ([]domain.Theme, error) {
	themes, err := s.themes.ListByName(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return themes, nil
}

// CreateQuestion appends a question to the end of its bucket. A new theme
// name that already exists resolves to the existing theme.
func (s *questionService) CreateQuestion(ctx context.Context, in domain.NewQuestion) (*domain.Question, error) {
	title := strings.TrimSpace(in.Title)
	answer := strings.TrimSpace(in.Answer)
	if errs := s.validator.ValidateQuestionContent(title, answer); len(errs) > 0 {
		return nil, errs
	}
	if in.Theme.Kind == domain.ThemeChoiceNew {
		if errs := s.validator.ValidateThemeName(in.Theme.NewName); len(errs) > 0 {
			return nil, errs
		}
	}

	q := &domain.Question{Title: title, Answer: answer}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		themeID, err := s.resolveTheme(ctx, in.Theme)
		if err != nil {
			return err
		}
		q.ThemeID = themeID

		next, err := s.questions.NextOrderIndex(ctx, themeID)
		if err != nil {
			return err
		}
		q.OrderIndex = next
		return s.questions.Insert(ctx, q)
	})
	if err != nil {
		logger.Get().Error("Failed to create question", zap.String("title", title), zap.Error(err))
		return nil, asDomainError(err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", q.ID),
		zap.Int64("order_index", q.OrderIndex),
	)
	return q, nil
}

func (s *questionService) resolveTheme(ctx context.Context, choice domain.ThemeChoice) (*int64, error) {
	switch choice.Kind {
	case domain.ThemeChoiceExisting:
		theme, err := s.themes.GetByID(ctx, choice.ID)
		if err != nil {
			return nil, err
		}
		if theme == nil {
			return nil, domain.NewThemeNotFoundError(choice.ID)
		}
		return &theme.ID, nil
	case domain.ThemeChoiceNew:
		id, err := getOrCreateTheme(ctx, s.themes, strings.TrimSpace(choice.NewName))
		if err != nil {
			return nil, err
		}
		return &id, nil
	default:
		return nil, nil
	}
}

// getOrCreateTheme inserts name at the end of the theme list, or returns the
// id of the theme that already has it.
func getOrCreateTheme(ctx context.Context, themes domain.ThemeRepository, name string) (int64, error) {
	next, err := themes.NextOrderIndex(ctx)
	if err != nil {
		return 0, err
	}
	id, inserted, err := themes.InsertIfAbsent(ctx, name, next)
	if err != nil {
		return 0, err
	}
	if inserted {
		return id, nil
	}

	existing, err := themes.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.NewConflictError("Тема с таким именем уже существует")
	}
	return existing.ID, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id int64, title, answer string) error {
	title = strings.TrimSpace(title)
	answer = strings.TrimSpace(answer)
	if errs := s.validator.ValidateQuestionContent(title, answer); len(errs) > 0 {
		return errs
	}

	updated, err := s.questions.UpdateContent(ctx, id, title, answer)
	if err != nil {
		logger.Get().Error("Failed to update question", zap.Int64("question_id", id), zap.Error(err))
		return domain.NewInternalError(err)
	}
	if !updated {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

// DeleteQuestion is idempotent: deleting a missing question succeeds.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		logger.Get().Error("Failed to delete question", zap.Int64("question_id", id), zap.Error(err))
		return domain.NewInternalError(err)
	}
	return nil
}

// UpdatePositions applies a bulk reorder in one transaction.
func (s *questionService) UpdatePositions(ctx context.Context, reorder domain.Reorder) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return applyBuckets(ctx, s.questions, reorder.Buckets)
	})
	if err != nil {
		logger.Get().Error("Failed to update question positions", zap.Error(err))
		return domain.NewInternalError(err)
	}
	return nil
}
