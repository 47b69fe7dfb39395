package service

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/pkg/validator"

	"gorm.io/gorm"
)

type ExpenseService interface {
	GetAll() ([]model.Expense, error)
	GetByID(id uint) (*model.Expense, error)
	Create(req *ExpenseRequest, receipt *multipart.FileHeader, actor Actor) (*model.Expense, error)
	Update(id uint, req *ExpenseRequest, receipt *multipart.FileHeader, actor Actor) (*model.Expense, error)
	Delete(id uint, actor Actor) error
}

// ExpenseRequest.Date is optional; blank means now. Both date and date-time forms are accepted.
type ExpenseRequest struct {
	Date        string `json:"tanggal" form:"tanggal"`
	Category    string `json:"kategori" form:"kategori" validate:"notblank,max=50"`
	Description string `json:"keterangan" form:"keterangan"`
	Amount      int64  `json:"jumlah" form:"jumlah" validate:"gt=0"`
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	files       FileStorage
	now         func() time.Time
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, files FileStorage, now func() time.Time) ExpenseService {
	if now == nil {
		now = time.Now
	}
	return &expenseService{expenseRepo: expenseRepo, files: files, now: now}
}

func (s *expenseService) GetAll() ([]model.Expense, error) {
	return s.expenseRepo.FindAll()
}

func (s *expenseService) GetByID(id uint) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExpenseNotFound
	}
	return expense, err
}

func (s *expenseService) Create(req *ExpenseRequest, receipt *multipart.FileHeader, actor Actor) (*model.Expense, error) {
	date, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	file, err := saveUpload(s.files, storage.KindReceipt, receipt)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		ReceiptFile: file,
	}
	expense.CreatedBy = actor.Name()
	expense.UpdatedBy = actor.Name()
	if err := s.expenseRepo.Create(expense); err != nil {
		removeQuietly(s.files, storage.KindReceipt, file)
		return nil, err
	}
	return expense, nil
}

// Update replaces the receipt only when a new one is uploaded; the old file is then removed.
func (s *expenseService) Update(id uint, req *ExpenseRequest, receipt *multipart.FileHeader, actor Actor) (*model.Expense, error) {
	expense, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	date, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	file, err := saveUpload(s.files, storage.KindReceipt, receipt)
	if err != nil {
		return nil, err
	}

	oldFile := expense.ReceiptFile
	if file != nil {
		expense.ReceiptFile = file
	}
	expense.Date = date
	expense.Category = strings.TrimSpace(req.Category)
	expense.Description = strings.TrimSpace(req.Description)
	expense.Amount = req.Amount
	expense.UpdatedBy = actor.Name()
	if err := s.expenseRepo.Update(expense); err != nil {
		removeQuietly(s.files, storage.KindReceipt, file)
		return nil, err
	}
	if file != nil {
		removeQuietly(s.files, storage.KindReceipt, oldFile)
	}
	return expense, nil
}

func (s *expenseService) Delete(id uint, actor Actor) error {
	expense, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}
	removeQuietly(s.files, storage.KindReceipt, expense.ReceiptFile)
	return nil
}

func (s *expenseService) parseRequest(req *ExpenseRequest) (time.Time, error) {
	if msg := validator.FirstError(req); msg != "" {
		return time.Time{}, validationError(msg)
	}
	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return s.now(), nil
	}
	if d, err := time.ParseInLocation("2006-01-02", raw, model.WIB); err == nil {
		return d, nil
	}
	return parseLocalDateTime(raw)
}
