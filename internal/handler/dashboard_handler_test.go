package handler

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetRevenue_ClampsDays(t *testing.T) {
	svc := new(MockReportService)
	svc.On("RevenueSeries", service.DefaultSeriesDays).Return([]service.DailyRevenue{}, nil)
	svc.On("RevenueSeries", maxSeriesDays).Return([]service.DailyRevenue{}, nil)

	app := fiber.New()
	app.Get("/revenue", NewDashboardHandler(svc).GetRevenue)

	for _, q := range []string{"", "?days=-1", "?days=x", "?days=1000"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/revenue"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, q)
	}
	svc.AssertNumberOfCalls(t, "RevenueSeries", 4)
}

func TestExportTransactions(t *testing.T) {
	svc := new(MockReportService)
	svc.On("ExportTransactionsCSV", mock.Anything).Return("No Faktur,Tanggal\nTRX-1,2024-01-02\n", nil)

	app := fiber.New()
	app.Get("/export", NewDashboardHandler(svc).ExportTransactions)

	resp, err := app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "laporan_transaksi_")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "No Faktur,Tanggal\nTRX-1,2024-01-02\n", string(body))
}
