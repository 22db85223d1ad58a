package validation

import (
	"encoding/json"
	"strings"

	"interview-bank/internal/domain"
)

const (
	msgEmptyContent   = "Заголовок и ответ не могут быть пустыми"
	msgEmptyThemeName = "Имя темы не может быть пустым"
	msgInvalidData    = "Неверные данные"
	msgInvalidResults = "Некорректные данные результатов"

	maxThemeNameLength = 200
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionContent checks that both title and answer are present after trimming.
func (v *Validator) ValidateQuestionContent(title, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" || strings.TrimSpace(answer) == "" {
		field := "title"
		if strings.TrimSpace(title) != "" {
			field = "answer"
		}
		errors = append(errors, domain.NewMissingFieldError(field, msgEmptyContent))
	}

	return errors
}

// ValidateThemeName validates the name of a theme being created.
func (v *Validator) ValidateThemeName(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name = strings.TrimSpace(name)
	if name == "" {
		errors = append(errors, domain.NewMissingFieldError("name", msgEmptyThemeName))
	} else if len([]rune(name)) > maxThemeNameLength {
		errors = append(errors, domain.NewInvalidFormatError("name", name))
	}

	return errors
}

// ValidateThemeRename needs both a positive id and a non-blank name.
func (v *Validator) ValidateThemeRename(id int64, name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if id <= 0 {
		errors = append(errors, domain.NewMissingFieldError("id", msgInvalidData))
	}
	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name", msgInvalidData))
	}

	return errors
}

// ValidateResultsPayload decodes the JSON status map posted by the interview page.
// An empty payload means nothing was marked.
func (v *Validator) ValidateResultsPayload(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]string{}, nil
	}

	var statuses map[string]string
	if err := json.Unmarshal([]byte(raw), &statuses); err != nil {
		return nil, domain.NewError(domain.ErrInvalidInput, msgInvalidResults, err)
	}
	if statuses == nil {
		statuses = map[string]string{}
	}
	return statuses, nil
}
