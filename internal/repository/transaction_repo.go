package repository

import (
	"errors"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, trx *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uint) (*model.Transaction, error)
	FindByInvoiceNo(invoiceNo string) (*model.Transaction, error)
	InvoiceExists(tx *gorm.DB, invoiceNo string) (bool, error)
	UpdatePayment(trx *model.Transaction) error
	Delete(tx *gorm.DB, id uint) error

	SumTotalBetween(start, end time.Time) (int64, error)
	CountBetween(start, end time.Time) (int64, error)
	FindBetween(start, end time.Time) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create inserts the transaction together with its details.
func (r *transactionRepo) Create(tx *gorm.DB, trx *model.Transaction) error {
	return tx.Create(trx).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Order("tanggal DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uint) (*model.Transaction, error) {
	var trx model.Transaction
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&trx, id).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

func (r *transactionRepo) FindByInvoiceNo(invoiceNo string) (*model.Transaction, error) {
	var trx model.Transaction
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("no_faktur = ?", invoiceNo).First(&trx).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

func (r *transactionRepo) InvoiceExists(tx *gorm.DB, invoiceNo string) (bool, error) {
	var existing model.Transaction
	err := tx.Select("id").Where("no_faktur = ?", invoiceNo).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePayment writes the editable history fields: timestamp, amount received and change.
func (r *transactionRepo) UpdatePayment(trx *model.Transaction) error {
	return r.db.Model(&model.Transaction{}).
		Where("id = ?", trx.ID).
		Updates(map[string]interface{}{
			"tanggal":       trx.Date,
			"uang_diterima": trx.AmountReceived,
			"kembalian":     trx.Change,
			"updated_by":    trx.UpdatedBy,
		}).Error
}

// Delete removes the detail rows and then the transaction row.
func (r *transactionRepo) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("transaction_id = ?", id).Delete(&model.TransactionDetail{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Transaction{}, id).Error
}

func (r *transactionRepo) SumTotalBetween(start, end time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&model.Transaction{}).
		Where("tanggal >= ? AND tanggal < ?", start, end).
		Select("COALESCE(SUM(total_bayar), 0)").
		Scan(&total).Error
	return total, err
}

func (r *transactionRepo) CountBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).
		Where("tanggal >= ? AND tanggal < ?", start, end).
		Count(&count).Error
	return count, err
}

// FindBetween loads only the timestamp and total of each transaction in [start, end).
func (r *transactionRepo) FindBetween(start, end time.Time) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Select("id", "tanggal", "total_bayar").
		Where("tanggal >= ? AND tanggal < ?", start, end).
		Order("tanggal ASC").
		Find(&transactions).Error
	return transactions, err
}
