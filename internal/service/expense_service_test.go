package service_test

import (
	"testing"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseService_ReceiptLifecycle(t *testing.T) {
	db := testdb.Open(t)
	files, root := newFileStore(t)
	svc := service.NewExpenseService(repository.NewExpenseRepo(db), files, fixedNow)

	expense, err := svc.Create(&service.ExpenseRequest{Category: "Listrik", Amount: 150000}, upload(t, "nota.jpg"), admin)
	require.NoError(t, err)
	assert.True(t, expense.Date.Equal(fixedNow()))
	require.NotNil(t, expense.ReceiptFile)
	first := *expense.ReceiptFile
	assert.Equal(t, []string{first}, filesIn(t, root, storage.KindReceipt))

	// update without a file keeps the receipt
	expense, err = svc.Update(expense.ID, &service.ExpenseRequest{Date: "2024-01-01", Category: "Listrik", Amount: 175000}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, first, *expense.ReceiptFile)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, model.WIB).Unix(), expense.Date.Unix())

	// a new upload replaces and removes the old file
	expense, err = svc.Update(expense.ID, &service.ExpenseRequest{Date: "2024-01-01", Category: "Listrik", Amount: 175000}, upload(t, "nota2.png"), admin)
	require.NoError(t, err)
	assert.NotEqual(t, first, *expense.ReceiptFile)
	assert.Equal(t, []string{*expense.ReceiptFile}, filesIn(t, root, storage.KindReceipt))

	require.NoError(t, svc.Delete(expense.ID, admin))
	assert.Empty(t, filesIn(t, root, storage.KindReceipt))
	_, err = svc.GetByID(expense.ID)
	assert.ErrorIs(t, err, service.ErrExpenseNotFound)
}

func TestExpenseService_Rejects(t *testing.T) {
	db := testdb.Open(t)
	files, root := newFileStore(t)
	svc := service.NewExpenseService(repository.NewExpenseRepo(db), files, fixedNow)

	_, err := svc.Create(&service.ExpenseRequest{Category: "Listrik", Amount: 0}, nil, admin)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Create(&service.ExpenseRequest{Category: "Listrik", Amount: 1000}, upload(t, "nota.exe"), admin)
	assert.ErrorIs(t, err, service.ErrFileType)

	_, err = svc.Create(&service.ExpenseRequest{Date: "besok", Category: "Listrik", Amount: 1000}, nil, admin)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Empty(t, filesIn(t, root, storage.KindReceipt))
}
