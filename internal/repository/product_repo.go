package repository

import (
	"errors"

	"github.com/Maspur102/elokalfa/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindAvailable() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	CountByCategory(categoryID uint) (int64, error)
	Count() (int64, error)
	CountLowStock(threshold int) (int64, error)

	// Transaction-scoped stock operations; tx must come from db.Transaction.
	LockByID(tx *gorm.DB, id uint) (*model.Product, error)
	DecrementStock(tx *gorm.DB, id uint, qty int, updatedBy string) (bool, error)
	RestockByDisplayName(tx *gorm.DB, displayName string, qty int, updatedBy string) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Omit("Category").Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("name ASC, id ASC").Find(&products).Error
	return products, err
}

// FindAvailable lists the products the cashier can sell (stock > 0).
func (r *productRepo) FindAvailable() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Where("stock > 0").Order("name ASC, id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("code = ?", code).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Omit("Category").Save(product).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, id).Error
}

func (r *productRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("stock < ?", threshold).Count(&count).Error
	return count, err
}

// LockByID reads the product with a row lock (SELECT ... FOR UPDATE) inside tx.
func (r *productRepo) LockByID(tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DecrementStock subtracts qty only while enough stock remains. It reports false when the
// guard rejected the update, so stock can never go negative.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uint, qty int, updatedBy string) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", qty),
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RestockByDisplayName adds qty back to the first product (lowest id) whose display name
// matches. Details store names, not ids, so this is a name lookup. Reports false when no product matches.
func (r *productRepo) RestockByDisplayName(tx *gorm.DB, displayName string, qty int, updatedBy string) (bool, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ? OR (variant <> '' AND name || ' (' || variant || ')' = ?)", displayName, displayName).
		Order("id ASC").
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = tx.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", qty),
			"updated_by": updatedBy,
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
