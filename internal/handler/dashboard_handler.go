package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
)

// maxSeriesDays caps the ?days= query of the revenue chart.
const maxSeriesDays = 90

type DashboardHandler struct {
	service service.ReportService
}

func NewDashboardHandler(s service.ReportService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetSummary returns today's figures
// GET /api/v1/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.DashboardSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard", "details": err.Error()})
	}
	return c.JSON(summary)
}

// GetRevenue returns daily revenue for the chart
// Query params: days (default 7)
func (h *DashboardHandler) GetRevenue(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", strconv.Itoa(service.DefaultSeriesDays)))
	if err != nil || days <= 0 {
		days = service.DefaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	data, err := h.service.RevenueSeries(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch revenue"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// ExportTransactions downloads the history as CSV
// GET /api/v1/reports/transactions.csv
func (h *DashboardHandler) ExportTransactions(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportTransactionsCSV(&buf); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export transactions", "details": err.Error()})
	}

	filename := fmt.Sprintf("laporan_transaksi_%s.csv", time.Now().In(model.WIB).Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
