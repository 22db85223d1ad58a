package service

import (
	"context"
	"fmt"

	"interview-bank/internal/domain"
)

// loadOverview reads every theme and question and groups them for display.
func loadOverview(ctx context.Context, themes domain.ThemeRepository, questions domain.QuestionRepository) (*domain.Overview, error) {
	themeList, err := themes.List(ctx)
	if err != nil {
		return nil, err
	}
	questionList, err := questions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByTheme(themeList, questionList), nil
}

// applyBuckets writes each listed question's zero-based position and bucket.
// Buckets are applied in request order, so an id listed twice ends up where it
// was listed last.
func applyBuckets(ctx context.Context, questions domain.QuestionRepository, buckets []domain.Bucket) error {
	for _, b := range buckets {
		for pos, id := range b.QuestionIDs {
			if err := questions.SetPosition(ctx, id, b.ThemeID, int64(pos)); err != nil {
				return fmt.Errorf("failed to move question %d: %w", id, err)
			}
		}
	}
	return nil
}

// appendToBucket moves questions, in their current order, to the end of the
// bucket identified by target.
func appendToBucket(ctx context.Context, questions domain.QuestionRepository, moving []domain.Question, target *int64) error {
	if len(moving) == 0 {
		return nil
	}
	next, err := questions.NextOrderIndex(ctx, target)
	if err != nil {
		return err
	}
	for i, q := range moving {
		if err := questions.SetPosition(ctx, q.ID, target, next+int64(i)); err != nil {
			return fmt.Errorf("failed to move question %d: %w", q.ID, err)
		}
	}
	return nil
}

// asDomainError leaves domain errors alone and wraps everything else as internal.
func asDomainError(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *domain.DomainError, domain.ValidationErrors:
		return err
	}
	return domain.NewInternalError(err)
}
