package repository

import (
	"time"

	"github.com/Maspur102/elokalfa/internal/model"

	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll() ([]model.Expense, error)
	FindByID(id uint) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(id uint) error
	SumBetween(start, end time.Time) (int64, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Order("tanggal DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(id uint) error {
	return r.db.Delete(&model.Expense{}, id).Error
}

func (r *expenseRepo) SumBetween(start, end time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&model.Expense{}).
		Where("tanggal >= ? AND tanggal < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
