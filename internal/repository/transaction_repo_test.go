package repository_test

import (
	"testing"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransactionRepo_CreateFindDelete(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewTransactionRepo(db)

	trx := &model.Transaction{
		InvoiceNo:      "TRX-20240101-080000",
		Date:           time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		CustomerName:   model.DefaultCustomerName,
		Total:          30000,
		AmountReceived: 50000,
		Change:         20000,
		PaymentMethod:  model.PaymentCash,
		Details: []model.TransactionDetail{
			{ProductName: "Roti", Qty: 2, Price: 10000, Subtotal: 20000},
			{ProductName: "Susu", Qty: 1, Price: 10000, Subtotal: 10000},
		},
	}
	require.NoError(t, repo.Create(db, trx))
	require.NotZero(t, trx.ID)

	exists, err := repo.InvoiceExists(db, "TRX-20240101-080000")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByInvoiceNo("TRX-20240101-080000")
	require.NoError(t, err)
	require.Len(t, found.Details, 2)
	assert.Equal(t, "Roti", found.Details[0].ProductName)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return repo.Delete(tx, trx.ID)
	}))

	_, err = repo.FindByID(trx.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var details int64
	require.NoError(t, db.Model(&model.TransactionDetail{}).Count(&details).Error)
	assert.Zero(t, details)

	exists, err = repo.InvoiceExists(db, "TRX-20240101-080000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionRepo_UpdatePayment(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewTransactionRepo(db)
	trx := &model.Transaction{InvoiceNo: "TRX-1", Date: time.Now(), Total: 10000, AmountReceived: 10000, PaymentMethod: model.PaymentCash}
	require.NoError(t, repo.Create(db, trx))

	trx.AmountReceived = 20000
	trx.Change = 10000
	trx.UpdatedBy = "admin"
	require.NoError(t, repo.UpdatePayment(trx))

	found, err := repo.FindByID(trx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), found.AmountReceived)
	assert.Equal(t, int64(10000), found.Change)
	assert.Equal(t, "admin", found.UpdatedBy)
}
