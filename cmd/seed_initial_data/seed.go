package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"interview-bank/cmd/seed_initial_data/internal/seedmodels"
	"interview-bank/internal/domain"
	"interview-bank/internal/service"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func loadSeedFile(fs afero.Fs, path string) (*seedmodels.SeedBank, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var bank seedmodels.SeedBank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return &bank, nil
}

type seedStats struct {
	Created int
	Skipped int
}

// bankSeeder writes seed data through the services, so seeded rows follow
// the same ordering rules as rows added from the UI. A question whose title
// already exists in its bucket is skipped, which makes reruns harmless.
type bankSeeder struct {
	questions service.QuestionService
	themes    service.ThemeService
	log       *zap.Logger
}

func (s *bankSeeder) Seed(ctx context.Context, bank *seedmodels.SeedBank) (seedStats, error) {
	var stats seedStats

	overview, err := s.questions.Overview(ctx)
	if err != nil {
		return stats, err
	}
	existing := existingTitles(overview)

	for _, theme := range bank.Themes {
		name := strings.TrimSpace(theme.Name)
		s.log.Info("Processing theme", zap.String("name", name), zap.Int("questions", len(theme.Questions)))

		if len(theme.Questions) == 0 {
			if _, err := s.themes.AddTheme(ctx, name); err != nil && !isConflict(err) {
				return stats, fmt.Errorf("failed to create theme %q: %w", name, err)
			}
			continue
		}

		for _, q := range theme.Questions {
			if existing[bucketKey(name, q.Title)] {
				stats.Skipped++
				continue
			}
			choice := domain.ThemeChoice{Kind: domain.ThemeChoiceNew, NewName: name}
			if err := s.create(ctx, q, choice); err != nil {
				return stats, err
			}
			existing[bucketKey(name, q.Title)] = true
			stats.Created++
		}
	}

	for _, q := range bank.Unthemed {
		if existing[bucketKey("", q.Title)] {
			stats.Skipped++
			continue
		}
		if err := s.create(ctx, q, domain.ThemeChoice{Kind: domain.ThemeChoiceNone}); err != nil {
			return stats, err
		}
		existing[bucketKey("", q.Title)] = true
		stats.Created++
	}

	return stats, nil
}

func (s *bankSeeder) create(ctx context.Context, q seedmodels.SeedQuestion, choice domain.ThemeChoice) error {
	created, err := s.questions.CreateQuestion(ctx, domain.NewQuestion{
		Title:  q.Title,
		Answer: q.Answer,
		Theme:  choice,
	})
	if err != nil {
		return fmt.Errorf("failed to save question '%s': %w", firstN(q.Title, 50), err)
	}
	s.log.Debug("Created question", zap.Int64("id", created.ID), zap.String("title_preview", firstN(q.Title, 20)))
	return nil
}

func existingTitles(overview *domain.Overview) map[string]bool {
	titles := make(map[string]bool, overview.TotalQuestions())
	for _, tq := range overview.Themes {
		for _, q := range tq.Questions {
			titles[bucketKey(tq.Theme.Name, q.Title)] = true
		}
	}
	for _, q := range overview.Unthemed {
		titles[bucketKey("", q.Title)] = true
	}
	return titles
}

func bucketKey(theme, title string) string {
	return theme + "\x00" + strings.TrimSpace(title)
}

func isConflict(err error) bool {
	var domainErr *domain.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == domain.ErrConflict
}
