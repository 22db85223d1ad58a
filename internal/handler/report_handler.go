package handler

import (
	"context"
	"time"

	"interview-bank/internal/dto"
	"interview-bank/internal/logger"
	"interview-bank/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ReportHandler serves recent interview summaries and the health probe
type ReportHandler struct {
	interview service.InterviewService
	db        Pinger
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(interview service.InterviewService, db Pinger) *ReportHandler {
	return &ReportHandler{interview: interview, db: db}
}

// RecentReports godoc
// @Summary List recent interviews
// @Description Newest first. Empty when the report index is disabled.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.RecentReportsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/recent [get]
func (h *ReportHandler) RecentReports(c *fiber.Ctx) error {
	summaries, err := h.interview.RecentReports(c.UserContext())
	if err != nil {
		return err
	}

	resp := dto.RecentReportsResponse{
		Success: true,
		Reports: make([]dto.ReportSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Reports = append(resp.Reports, dto.ReportSummaryResponse{
			IntervieweeName: s.IntervieweeName,
			Date:            s.Date,
			Total:           s.Total,
			Answered:        s.Answered,
			Positive:        s.Positive,
			Neutral:         s.Neutral,
			Negative:        s.Negative,
			Rating:          s.Rating,
			File:            s.File,
			RecordedAt:      s.RecordedAt,
		})
	}
	return c.JSON(resp)
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *ReportHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: err.Error()})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Database: "ok"})
}
