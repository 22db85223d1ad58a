package handler

import (
	"interview-bank/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Pages     *PageHandler
	Questions *QuestionHandler
	Themes    *ThemeHandler
	Reports   *ReportHandler
}

// RegisterRoutes mounts pages and JSON endpoints at the paths the browser script uses.
func RegisterRoutes(app fiber.Router, h Handlers) {
	app.Get("/", h.Pages.Index)
	app.Get("/add", h.Pages.AddForm)
	app.Post("/add", h.Pages.CreateQuestion)
	app.Get("/questions", h.Pages.Questions)
	app.Post("/results", h.Pages.Results)

	app.Post("/update_positions", h.Questions.UpdatePositions)
	app.Post("/update_question/:id", middleware.ValidateIDParam("id"), h.Questions.UpdateQuestion)
	app.Post("/delete_question/:id", middleware.ValidateIDParam("id"), h.Questions.DeleteQuestion)

	app.Post("/add_theme", h.Themes.AddTheme)
	app.Post("/update_theme_order", h.Themes.UpdateThemeOrder)
	app.Post("/update_theme_name", h.Themes.UpdateThemeName)
	app.Post("/delete_theme/:id", middleware.ValidateIDParam("id"), h.Themes.DeleteTheme)

	app.Get("/reports/recent", h.Reports.RecentReports)
	app.Get("/healthz", h.Reports.Health)
}
