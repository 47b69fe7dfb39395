package service_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, no string, at time.Time, total int64, details ...model.TransactionDetail) {
	t.Helper()
	trx := &model.Transaction{
		InvoiceNo:      no,
		Date:           at,
		CustomerName:   model.DefaultCustomerName,
		Total:          total,
		AmountReceived: total,
		PaymentMethod:  model.PaymentCash,
		Details:        details,
	}
	require.NoError(t, db.Create(trx).Error)
}

func newReportService(db *gorm.DB) service.ReportService {
	return service.NewReportService(
		repository.NewTransactionRepo(db),
		repository.NewProductRepo(db),
		repository.NewExpenseRepo(db),
		fixedNow,
	)
}

func TestDashboardSummary(t *testing.T) {
	db := testdb.Open(t)
	testdb.SeedProduct(t, db, "P1", "Kopi", "", 2, 10000)
	testdb.SeedProduct(t, db, "P2", "Teh", "", 20, 5000)

	today := time.Date(2024, 1, 2, 9, 0, 0, 0, model.WIB)
	seedTransaction(t, db, "A", today, 30000)
	seedTransaction(t, db, "B", today.Add(2*time.Hour), 20000)
	// 23:30 WIB on the previous day is outside today's window
	seedTransaction(t, db, "C", time.Date(2024, 1, 1, 23, 30, 0, 0, model.WIB), 99000)
	require.NoError(t, db.Create(&model.Expense{Date: today, Category: "Listrik", Amount: 15000}).Error)

	summary, err := newReportService(db).DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", summary.Date)
	assert.Equal(t, int64(50000), summary.Revenue)
	assert.Equal(t, int64(2), summary.TransactionCount)
	assert.Equal(t, int64(15000), summary.Expense)
	assert.Equal(t, int64(35000), summary.Profit)
	assert.Equal(t, int64(1), summary.LowStockCount)
	assert.Equal(t, int64(2), summary.TotalProducts)
}

func TestRevenueSeries(t *testing.T) {
	db := testdb.Open(t)
	seedTransaction(t, db, "A", time.Date(2024, 1, 2, 8, 0, 0, 0, model.WIB), 10000)
	seedTransaction(t, db, "B", time.Date(2024, 1, 2, 9, 0, 0, 0, model.WIB), 5000)
	seedTransaction(t, db, "C", time.Date(2023, 12, 30, 12, 0, 0, 0, model.WIB), 7000)
	seedTransaction(t, db, "D", time.Date(2023, 12, 20, 12, 0, 0, 0, model.WIB), 1000)

	series, err := newReportService(db).RevenueSeries(0)
	require.NoError(t, err)
	require.Len(t, series, service.DefaultSeriesDays)
	assert.Equal(t, service.DailyRevenue{Date: "2023-12-27", Total: 0}, series[0])
	assert.Equal(t, service.DailyRevenue{Date: "2023-12-30", Total: 7000}, series[3])
	assert.Equal(t, service.DailyRevenue{Date: "2024-01-02", Total: 15000}, series[6])
}

func TestExportTransactionsCSV(t *testing.T) {
	db := testdb.Open(t)
	seedTransaction(t, db, "TRX-1", time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), 25000,
		model.TransactionDetail{ProductName: "Kopi", Qty: 2, Price: 10000, Subtotal: 20000},
		model.TransactionDetail{ProductName: "Teh (Manis)", Qty: 1, Price: 5000, Subtotal: 5000},
	)
	seedTransaction(t, db, "TRX-0", time.Date(2023, 12, 31, 1, 0, 0, 0, time.UTC), 1000)

	var buf bytes.Buffer
	require.NoError(t, newReportService(db).ExportTransactionsCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, service.CSVHeader, rows[0])
	assert.Equal(t, []string{"TRX-1", "2024-01-02", "03:00:00", "Umum", "Cash", "0", "25000", "", "Kopi x2, Teh (Manis) x1"}, rows[1])
	assert.Equal(t, "TRX-0", rows[2][0])
}
