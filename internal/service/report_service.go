package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
)

// DefaultSeriesDays is the length of the dashboard revenue chart.
const DefaultSeriesDays = 7

// CSVHeader is the first row of the transaction export.
var CSVHeader = []string{"No Faktur", "Tanggal", "Jam", "Pelanggan", "Metode", "Diskon", "Total", "Catatan", "Item"}

type ReportService interface {
	DashboardSummary() (*DashboardSummary, error)
	RevenueSeries(days int) ([]DailyRevenue, error)
	ExportTransactionsCSV(w io.Writer) error
}

// DashboardSummary covers the current WIB day.
type DashboardSummary struct {
	Date             string `json:"date"`
	Revenue          int64  `json:"pendapatan"`
	TransactionCount int64  `json:"jumlah_transaksi"`
	Expense          int64  `json:"pengeluaran"`
	Profit           int64  `json:"laba"`
	LowStockCount    int64  `json:"stok_menipis"`
	TotalProducts    int64  `json:"total_produk"`
}

type DailyRevenue struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

type reportService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	expenseRepo     repository.ExpenseRepository
	now             func() time.Time
}

func NewReportService(tRepo repository.TransactionRepository, pRepo repository.ProductRepository, eRepo repository.ExpenseRepository, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{
		transactionRepo: tRepo,
		productRepo:     pRepo,
		expenseRepo:     eRepo,
		now:             now,
	}
}

func (s *reportService) DashboardSummary() (*DashboardSummary, error) {
	start := model.StartOfDay(s.now())
	end := start.AddDate(0, 0, 1)

	revenue, err := s.transactionRepo.SumTotalBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	count, err := s.transactionRepo.CountBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	expense, err := s.expenseRepo.SumBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	lowStock, err := s.productRepo.CountLowStock(model.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	products, err := s.productRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	return &DashboardSummary{
		Date:             start.Format("2006-01-02"),
		Revenue:          revenue,
		TransactionCount: count,
		Expense:          expense,
		Profit:           revenue - expense,
		LowStockCount:    lowStock,
		TotalProducts:    products,
	}, nil
}

// RevenueSeries returns one entry per WIB day ending today, oldest first, with empty days as 0.
func (s *reportService) RevenueSeries(days int) ([]DailyRevenue, error) {
	if days <= 0 {
		days = DefaultSeriesDays
	}
	today := model.StartOfDay(s.now())
	start := today.AddDate(0, 0, -(days - 1))
	end := today.AddDate(0, 0, 1)

	transactions, err := s.transactionRepo.FindBetween(start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, days)
	for _, trx := range transactions {
		totals[trx.Date.In(model.WIB).Format("2006-01-02")] += trx.Total
	}

	series := make([]DailyRevenue, days)
	for i := range series {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = DailyRevenue{Date: day, Total: totals[day]}
	}
	return series, nil
}

// ExportTransactionsCSV writes the whole history, newest first, with WIB timestamps.
func (s *reportService) ExportTransactionsCSV(w io.Writer) error {
	transactions, err := s.transactionRepo.FindAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for i := range transactions {
		trx := &transactions[i]
		local := trx.Date.In(model.WIB)
		record := []string{
			trx.InvoiceNo,
			local.Format("2006-01-02"),
			local.Format("15:04:05"),
			trx.CustomerName,
			string(trx.PaymentMethod),
			strconv.FormatInt(trx.Discount, 10),
			strconv.FormatInt(trx.Total, 10),
			trx.Note,
			trx.ItemSummary(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
