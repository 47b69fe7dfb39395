package service

import (
	"mime/multipart"
	"strings"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/pkg/validator"
)

type SettingsService interface {
	Get() (*model.StoreInfo, error)
	Update(req *UpdateSettingsRequest, logo *multipart.FileHeader, actor Actor) (*model.StoreInfo, error)
}

type UpdateSettingsRequest struct {
	StoreName string `json:"nama_toko" form:"nama_toko" validate:"notblank,max=100"`
	Address   string `json:"alamat" form:"alamat"`
	Phone     string `json:"telepon" form:"telepon" validate:"max=20"`
}

type settingsService struct {
	storeRepo repository.StoreRepository
	files     FileStorage
}

func NewSettingsService(storeRepo repository.StoreRepository, files FileStorage) SettingsService {
	return &settingsService{storeRepo: storeRepo, files: files}
}

// loadStore returns the saved profile or an unsaved default one.
func loadStore(repo repository.StoreRepository) (*model.StoreInfo, error) {
	info, err := repo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &model.StoreInfo{StoreName: model.DefaultStoreName}
	}
	return info, nil
}

func (s *settingsService) Get() (*model.StoreInfo, error) {
	return loadStore(s.storeRepo)
}

func (s *settingsService) Update(req *UpdateSettingsRequest, logo *multipart.FileHeader, actor Actor) (*model.StoreInfo, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}
	info, err := loadStore(s.storeRepo)
	if err != nil {
		return nil, err
	}

	newLogo, err := saveUpload(s.files, storage.KindLogo, logo)
	if err != nil {
		return nil, err
	}
	oldLogo := info.LogoFilename
	if newLogo != nil {
		info.LogoFilename = newLogo
	}

	info.StoreName = strings.TrimSpace(req.StoreName)
	info.Address = strings.TrimSpace(req.Address)
	info.Phone = strings.TrimSpace(req.Phone)
	if info.ID == 0 {
		info.CreatedBy = actor.Name()
	}
	info.UpdatedBy = actor.Name()

	if err := s.storeRepo.Save(info); err != nil {
		removeQuietly(s.files, storage.KindLogo, newLogo)
		return nil, err
	}
	if newLogo != nil {
		removeQuietly(s.files, storage.KindLogo, oldLogo)
	}
	return info, nil
}
