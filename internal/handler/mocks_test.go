package handler

import (
	"io"
	"mime/multipart"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(req *service.CheckoutRequest, proof *multipart.FileHeader, actor service.Actor) (*model.Transaction, error) {
	args := m.Called(req, proof, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockCheckoutService) AvailableProducts() ([]model.Product, error) {
	args := m.Called()
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(username, password string) (*service.LoginResponse, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Logout(actor service.Actor) error {
	return m.Called(actor).Error(0)
}

func (m *MockAuthService) Authenticate(tokenString string) (*service.Actor, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Actor), args.Error(1)
}

func (m *MockAuthService) Me(userID uint) (*model.UserResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockAuthService) ChangePassword(userID uint, req *service.ChangePasswordRequest) error {
	return m.Called(userID, req).Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCategories() ([]model.Category, error) {
	args := m.Called()
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogService) GetCategory(id uint) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) CreateCategory(req *service.CategoryRequest, actor service.Actor) (*model.Category, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(id uint, req *service.CategoryRequest, actor service.Actor) (*model.Category, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(id uint, actor service.Actor) error {
	return m.Called(id, actor).Error(0)
}

func (m *MockCatalogService) GetProducts() ([]model.Product, error) {
	args := m.Called()
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(id uint) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(req *service.ProductRequest, actor service.Actor) (*model.Product, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(id uint, req *service.ProductRequest, actor service.Actor) (*model.Product, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(id uint, actor service.Actor) error {
	return m.Called(id, actor).Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) DashboardSummary() (*service.DashboardSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardSummary), args.Error(1)
}

func (m *MockReportService) RevenueSeries(days int) ([]service.DailyRevenue, error) {
	args := m.Called(days)
	return args.Get(0).([]service.DailyRevenue), args.Error(1)
}

func (m *MockReportService) ExportTransactionsCSV(w io.Writer) error {
	args := m.Called(w)
	if body, ok := args.Get(0).(string); ok {
		io.WriteString(w, body)
	}
	return args.Error(1)
}

// withActor stands in for RequireAuth in handler tests.
func withActor(actor service.Actor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("actor", actor)
		return c.Next()
	}
}
