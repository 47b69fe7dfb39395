package repository

import (
	"errors"

	"github.com/Maspur102/elokalfa/internal/model"

	"gorm.io/gorm"
)

type StoreRepository interface {
	// Get returns the store profile, or nil when none has been saved yet.
	Get() (*model.StoreInfo, error)
	Save(info *model.StoreInfo) error
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) Get() (*model.StoreInfo, error) {
	var info model.StoreInfo
	err := r.db.Order("id ASC").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *storeRepo) Save(info *model.StoreInfo) error {
	return r.db.Save(info).Error
}
