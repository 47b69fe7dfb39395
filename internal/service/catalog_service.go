package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/ws"
	"github.com/Maspur102/elokalfa/pkg/validator"

	"gorm.io/gorm"
)

type CatalogService interface {
	GetCategories() ([]model.Category, error)
	GetCategory(id uint) (*model.Category, error)
	CreateCategory(req *CategoryRequest, actor Actor) (*model.Category, error)
	UpdateCategory(id uint, req *CategoryRequest, actor Actor) (*model.Category, error)
	DeleteCategory(id uint, actor Actor) error

	GetProducts() ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	CreateProduct(req *ProductRequest, actor Actor) (*model.Product, error)
	UpdateProduct(id uint, req *ProductRequest, actor Actor) (*model.Product, error)
	DeleteProduct(id uint, actor Actor) error
}

type CategoryRequest struct {
	Name string `json:"name" form:"name" validate:"notblank,max=50"`
}

type ProductRequest struct {
	Code       string `json:"code" form:"code" validate:"notblank,max=50"`
	Name       string `json:"name" form:"name" validate:"notblank,max=100"`
	Variant    string `json:"variant" form:"variant" validate:"max=100"`
	CategoryID uint   `json:"category_id" form:"category_id" validate:"required"`
	Stock      int    `json:"stock" form:"stock" validate:"gte=0"`
	CostPrice  int64  `json:"cost_price" form:"cost_price" validate:"gte=0"`
	SellPrice  int64  `json:"sell_price" form:"sell_price" validate:"gte=0"`
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	events       ws.Publisher
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, events ws.Publisher) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		events:       events,
	}
}

func (s *catalogService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return category, err
}

func (s *catalogService) CreateCategory(req *CategoryRequest, actor Actor) (*model.Category, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}
	category := &model.Category{Name: strings.TrimSpace(req.Name)}
	category.CreatedBy = actor.Name()
	category.UpdatedBy = actor.Name()
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uint, req *CategoryRequest, actor Actor) (*model.Category, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(req.Name)
	category.UpdatedBy = actor.Name()
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses while any product still references the category.
func (s *catalogService) DeleteCategory(id uint, actor Actor) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	inUse, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w (%d products)", ErrCategoryInUse, inUse)
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *catalogService) CreateProduct(req *ProductRequest, actor Actor) (*model.Product, error) {
	if err := s.checkProduct(req, 0); err != nil {
		return nil, err
	}

	product := &model.Product{}
	applyProduct(product, req)
	product.CreatedBy = actor.Name()
	product.UpdatedBy = actor.Name()
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.publishStock("product_created", product, actor, fmt.Sprintf("%s created product '%s'", actor.Name(), product.DisplayName()))
	return product, nil
}

func (s *catalogService) UpdateProduct(id uint, req *ProductRequest, actor Actor) (*model.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(req, id); err != nil {
		return nil, err
	}

	oldStock := product.Stock
	applyProduct(product, req)
	product.Category = nil
	product.UpdatedBy = actor.Name()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.publishStock("product_updated", product, actor,
		fmt.Sprintf("%s updated product '%s' (stock %d -> %d)", actor.Name(), product.DisplayName(), oldStock, product.Stock))
	return product, nil
}

func (s *catalogService) DeleteProduct(id uint, actor Actor) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.publishStock("product_deleted", product, actor, fmt.Sprintf("%s deleted product '%s'", actor.Name(), product.DisplayName()))
	return nil
}

// checkProduct validates req and its references. selfID is the product being edited, 0 on create.
func (s *catalogService) checkProduct(req *ProductRequest, selfID uint) error {
	if msg := validator.FirstError(req); msg != "" {
		return validationError(msg)
	}

	existing, err := s.productRepo.FindByCode(strings.TrimSpace(req.Code))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrCodeExists
	}

	if _, err := s.GetCategory(req.CategoryID); err != nil {
		return err
	}
	return nil
}

func applyProduct(p *model.Product, req *ProductRequest) {
	p.Code = strings.TrimSpace(req.Code)
	p.Name = strings.TrimSpace(req.Name)
	p.Variant = strings.TrimSpace(req.Variant)
	p.CategoryID = req.CategoryID
	p.Stock = req.Stock
	p.CostPrice = req.CostPrice
	p.SellPrice = req.SellPrice
}

func (s *catalogService) publishStock(action string, p *model.Product, actor Actor, message string) {
	s.events.Publish(ws.Event{
		Type:    "stock_update",
		Action:  action,
		Actor:   actor.Name(),
		Message: message,
		Data: map[string]interface{}{
			"id":    p.ID,
			"code":  p.Code,
			"name":  p.DisplayName(),
			"stock": p.Stock,
			"price": p.SellPrice,
		},
	})
}
