package handler

import (
	"go-sales-dashboard/internal/service"
	"go-sales-dashboard/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// DateQuery is the optional ?date=YYYY-MM-DD selector
type DateQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

func parseDateQuery(c *fiber.Ctx) (string, error) {
	var q DateQuery
	if err := c.QueryParser(&q); err != nil {
		return "", service.ErrInvalidDate
	}
	if errs := validator.ValidateStruct(&q); len(errs) > 0 {
		return "", service.ErrInvalidDate
	}
	return q.Date, nil
}

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// GetDailySummary returns totals, best seller, trailing traffic and the
// per-product breakdown for one day
// GET /api/penjualan?date=YYYY-MM-DD
func (h *SalesHandler) GetDailySummary(c *fiber.Ctx) error {
	date, err := parseDateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.service.GetDailySummary(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// DownloadPDF acknowledges a report request
// GET /api/penjualan/download-pdf?date=YYYY-MM-DD
func (h *SalesHandler) DownloadPDF(c *fiber.Ctx) error {
	date, err := parseDateQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	ack, err := h.service.RequestPDF(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ack)
}
