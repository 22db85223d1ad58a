package handler

import (
	"interview-bank/internal/dto"
	"interview-bank/internal/middleware"
	"interview-bank/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ThemeHandler handles the JSON theme endpoints
type ThemeHandler struct {
	service service.ThemeService
}

// NewThemeHandler creates a new ThemeHandler instance
func NewThemeHandler(service service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

// AddTheme godoc
// @Summary Create a theme
// @Description Appends a theme to the end of the theme list.
// @Tags themes
// @Accept json
// @Produce json
// @Param request body dto.AddThemeRequest true "Theme name"
// @Success 200 {object} dto.AddThemeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /add_theme [post]
func (h *ThemeHandler) AddTheme(c *fiber.Ctx) error {
	var req dto.AddThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	theme, err := h.service.AddTheme(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.AddThemeResponse{Success: true, ID: theme.ID, Name: theme.Name})
}

// UpdateThemeOrder godoc
// @Summary Reorder themes
// @Tags themes
// @Accept json
// @Produce json
// @Param request body dto.UpdateThemeOrderRequest true "Theme ids in display order"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /update_theme_order [post]
func (h *ThemeHandler) UpdateThemeOrder(c *fiber.Ctx) error {
	var req dto.UpdateThemeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := h.service.ReorderThemes(c.UserContext(), dto.Int64s(req.Order)); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// UpdateThemeName godoc
// @Summary Rename a theme
// @Tags themes
// @Accept json
// @Produce json
// @Param request body dto.UpdateThemeNameRequest true "Theme id and new name"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /update_theme_name [post]
func (h *ThemeHandler) UpdateThemeName(c *fiber.Ctx) error {
	var req dto.UpdateThemeNameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := h.service.RenameTheme(c.UserContext(), req.ID.Int64(), req.Name); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteTheme godoc
// @Summary Delete a theme
// @Description The theme's questions move to the end of the unthemed list.
// @Tags themes
// @Produce json
// @Param id path int true "Theme ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /delete_theme/{id} [post]
func (h *ThemeHandler) DeleteTheme(c *fiber.Ctx) error {
	id, _ := middleware.ValidatedID(c)

	if err := h.service.DeleteTheme(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
