package handler

import (
	"fmt"
	"strconv"
	"strings"

	"interview-bank/internal/domain"
	"interview-bank/internal/service"
	"interview-bank/internal/validation"
	"interview-bank/internal/web"

	"github.com/gofiber/fiber/v2"
)

// UnthemedAnchor is the expanded_theme value that points at the unthemed bucket.
const UnthemedAnchor = "unthemed"

// PageHandler serves the HTML pages
type PageHandler struct {
	questions service.QuestionService
	interview service.InterviewService
	validator *validation.Validator
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(questions service.QuestionService, interview service.InterviewService, validator *validation.Validator) *PageHandler {
	return &PageHandler{
		questions: questions,
		interview: interview,
		validator: validator,
	}
}

// Index renders the interview page.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	overview, err := h.questions.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{
		"Title":         "Техническое интервью",
		"Overview":      overview,
		"UnthemedLabel": domain.UnthemedLabel,
	}, web.Layout)
}

// AddForm renders the new question form. Themes are listed by name.
func (h *PageHandler) AddForm(c *fiber.Ctx) error {
	themes, err := h.questions.AddFormThemes(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("add_question", fiber.Map{
		"Title":         "Новый вопрос",
		"Themes":        themes,
		"UnthemedLabel": domain.UnthemedLabel,
	}, web.Layout)
}

// CreateQuestion handles the add form and redirects to the new question.
func (h *PageHandler) CreateQuestion(c *fiber.Ctx) error {
	choice, err := parseThemeChoice(c.FormValue("theme_id"), c.FormValue("new_theme_name"))
	if err != nil {
		return err
	}

	q, err := h.questions.CreateQuestion(c.UserContext(), domain.NewQuestion{
		Title:  c.FormValue("title"),
		Answer: c.FormValue("answer"),
		Theme:  choice,
	})
	if err != nil {
		return err
	}

	return c.Redirect(questionLocation(q), fiber.StatusFound)
}

// Questions renders the editable question bank.
func (h *PageHandler) Questions(c *fiber.Ctx) error {
	overview, err := h.questions.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("questions", fiber.Map{
		"Title":         "Банк вопросов",
		"Overview":      overview,
		"ExpandedTheme": c.Query("expanded_theme"),
		"UnthemedLabel": domain.UnthemedLabel,
	}, web.Layout)
}

// Results finishes an interview and renders its report.
func (h *PageHandler) Results(c *fiber.Ctx) error {
	statuses, err := h.validator.ValidateResultsPayload(c.FormValue("results_data"))
	if err != nil {
		return err
	}

	report, err := h.interview.Finish(c.UserContext(), c.FormValue("interviewee_name"), statuses)
	if err != nil {
		return err
	}

	return c.Render("results", fiber.Map{
		"Title":  "Результаты интервью",
		"Report": report,
	}, web.Layout)
}

func parseThemeChoice(themeID, newName string) (domain.ThemeChoice, error) {
	switch themeID = strings.TrimSpace(themeID); themeID {
	case "":
		return domain.ThemeChoice{Kind: domain.ThemeChoiceNone}, nil
	case "new":
		return domain.ThemeChoice{Kind: domain.ThemeChoiceNew, NewName: newName}, nil
	}

	id, err := strconv.ParseInt(themeID, 10, 64)
	if err != nil || id <= 0 {
		return domain.ThemeChoice{}, domain.ValidationErrors{domain.NewInvalidFormatError("theme_id", themeID)}
	}
	return domain.ThemeChoice{Kind: domain.ThemeChoiceExisting, ID: id}, nil
}

func questionLocation(q *domain.Question) string {
	expanded := UnthemedAnchor
	if q.ThemeID != nil {
		expanded = strconv.FormatInt(*q.ThemeID, 10)
	}
	return fmt.Sprintf("/questions?expanded_theme=%s#question-%d", expanded, q.ID)
}
