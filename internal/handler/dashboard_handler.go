package handler

import (
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetInboundToday counts today's stock-in rows
// GET /barang-masuk-today
func (h *DashboardHandler) GetInboundToday(c *fiber.Ctx) error {
	total, err := h.service.CountInboundToday()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.CountResponse{Total: total})
}

// GetOutboundToday counts today's stock-out rows
// GET /barang-keluar-today
func (h *DashboardHandler) GetOutboundToday(c *fiber.Ctx) error {
	total, err := h.service.CountOutboundToday()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.CountResponse{Total: total})
}

// GetWeeklyChart returns per-day inbound and outbound quantities
// GET /chart-weekly
func (h *DashboardHandler) GetWeeklyChart(c *fiber.Ctx) error {
	data, err := h.service.GetWeeklyChart()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}
