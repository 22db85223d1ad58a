package service

import (
	"context"
	"strings"

	"interview-bank/internal/domain"
	"interview-bank/internal/logger"
	"interview-bank/internal/validation"

	"go.uber.org/zap"
)

// ThemeService defines the operations on themes
type ThemeService interface {
	AddTheme(ctx context.Context, name string) (*domain.Theme, error)
	RenameTheme(ctx context.Context, id int64, name string) error
	ReorderThemes(ctx context.Context, ids []int64) error
	DeleteTheme(ctx context.Context, id int64) error
}

type themeService struct {
	themes    domain.ThemeRepository
	questions domain.QuestionRepository
	tx        domain.TransactionManager
	validator *validation.Validator
}

// NewThemeService creates a new ThemeService
func NewThemeService(
	themes domain.ThemeRepository,
	questions domain.QuestionRepository,
	tx domain.TransactionManager,
	validator *validation.Validator,
) ThemeService {
	return &themeService{
		themes:    themes,
		questions: questions,
		tx:        tx,
		validator: validator,
	}
}

// AddTheme appends a theme to the end of the theme list. A taken name is a conflict.
func (s *themeService) AddTheme(ctx context.Context, name string) (*domain.Theme, error) {
	name = strings.TrimSpace(name)
	if errs := s.validator.ValidateThemeName(name); len(errs) > 0 {
		return nil, errs
	}

	theme := &domain.Theme{Name: name}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		next, err := s.themes.NextOrderIndex(ctx)
		if err != nil {
			return err
		}
		id, inserted, err := s.themes.InsertIfAbsent(ctx, name, next)
		if err != nil {
			return err
		}
		if !inserted {
			return domain.NewConflictError("Тема с таким именем уже существует")
		}
		theme.ID = id
		theme.OrderIndex = next
		return nil
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	logger.Get().Info("Theme created", zap.Int64("theme_id", theme.ID), zap.String("name", theme.Name))
	return theme, nil
}

func (s *themeService) RenameTheme(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if errs := s.validator.ValidateThemeRename(id, name); len(errs) > 0 {
		return errs
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.themes.NameTakenByOther(ctx, name, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewConflictError("Тема с таким именем уже существует")
		}
		renamed, err := s.themes.Rename(ctx, id, name)
		if err != nil {
			return err
		}
		if !renamed {
			return domain.NewThemeNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return asDomainError(err)
	}
	return nil
}

// ReorderThemes sets each listed theme's order_index to its position in ids.
func (s *themeService) ReorderThemes(ctx context.Context, ids []int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for pos, id := range ids {
			if err := s.themes.SetOrderIndex(ctx, id, int64(pos)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("Failed to reorder themes", zap.Int("count", len(ids)), zap.Error(err))
		return domain.NewInternalError(err)
	}
	return nil
}

// DeleteTheme moves the theme's questions to the end of the unthemed bucket,
// keeping their relative order, and then removes the theme.
func (s *themeService) DeleteTheme(ctx context.Context, id int64) error {
	var detached int
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		attached, err := s.questions.ListByBucket(ctx, &id)
		if err != nil {
			return err
		}
		if err := appendToBucket(ctx, s.questions, attached, nil); err != nil {
			return err
		}
		detached = len(attached)
		_, err = s.themes.Delete(ctx, id)
		return err
	})
	if err != nil {
		logger.Get().Error("Failed to delete theme", zap.Int64("theme_id", id), zap.Error(err))
		return domain.NewInternalError(err)
	}

	logger.Get().Info("Theme deleted", zap.Int64("theme_id", id), zap.Int("detached_questions", detached))
	return nil
}
