package handler

import (
	"interview-bank/internal/domain"
	"interview-bank/internal/dto"
	"interview-bank/internal/middleware"
	"interview-bank/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles the JSON question endpoints
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// UpdatePositions godoc
// @Summary Reorder and reparent questions
// @Description Every listed bucket is rewritten: each question gets its position in the list and that bucket's theme. Questions not listed keep their place.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.UpdatePositionsRequest true "New order of every bucket"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /update_positions [post]
func (h *QuestionHandler) UpdatePositions(c *fiber.Ctx) error {
	var req dto.UpdatePositionsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	reorder := domain.Reorder{Buckets: make([]domain.Bucket, 0, len(req.Themes)+1)}
	for _, t := range req.Themes {
		themeID := t.ID.Int64()
		reorder.Buckets = append(reorder.Buckets, domain.Bucket{
			ThemeID:     &themeID,
			QuestionIDs: dto.Int64s(t.Order),
		})
	}
	reorder.Buckets = append(reorder.Buckets, domain.Bucket{QuestionIDs: dto.Int64s(req.Unthemed)})

	if err := h.service.UpdatePositions(c.UserContext(), reorder); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "New title and answer"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /update_question/{id} [post]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, _ := middleware.ValidatedID(c)

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := h.service.UpdateQuestion(c.UserContext(), id, req.Title, req.Answer); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /delete_question/{id} [post]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, _ := middleware.ValidatedID(c)

	if err := h.service.DeleteQuestion(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func invalidBody(err error) error {
	return domain.NewError(domain.ErrInvalidInput, "Неверные данные", err)
}
