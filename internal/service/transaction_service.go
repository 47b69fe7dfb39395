package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/internal/ws"
	"github.com/Maspur102/elokalfa/pkg/validator"

	"gorm.io/gorm"
)

// dateTimeLayouts are accepted for history edits, interpreted in WIB.
var dateTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02 15:04:05"}

type TransactionService interface {
	GetAll() ([]model.Transaction, error)
	GetByID(id uint) (*model.Transaction, error)
	GetInvoice(invoiceNo string) (*Invoice, error)
	UpdatePayment(id uint, req *UpdateTransactionRequest, actor Actor) (*model.Transaction, error)
	Delete(id uint, actor Actor) error
}

type UpdateTransactionRequest struct {
	Date           string `json:"tanggal" form:"tanggal" validate:"notblank"`
	AmountReceived int64  `json:"uang_diterima" form:"uang_diterima" validate:"gte=0"`
}

// Invoice is a transaction together with the store profile printed on its header.
type Invoice struct {
	Store       *model.StoreInfo   `json:"toko"`
	Transaction *model.Transaction `json:"transaksi"`
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	storeRepo       repository.StoreRepository
	files           FileStorage
	db              *gorm.DB
	events          ws.Publisher
}

func NewTransactionService(tRepo repository.TransactionRepository, pRepo repository.ProductRepository, sRepo repository.StoreRepository, files FileStorage, db *gorm.DB, events ws.Publisher) TransactionService {
	return &transactionService{
		transactionRepo: tRepo,
		productRepo:     pRepo,
		storeRepo:       sRepo,
		files:           files,
		db:              db,
		events:          events,
	}
}

func (s *transactionService) GetAll() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *transactionService) GetByID(id uint) (*model.Transaction, error) {
	trx, err := s.transactionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	return trx, err
}

func (s *transactionService) GetInvoice(invoiceNo string) (*Invoice, error) {
	trx, err := s.transactionRepo.FindByInvoiceNo(strings.TrimSpace(invoiceNo))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	store, err := loadStore(s.storeRepo)
	if err != nil {
		return nil, err
	}
	return &Invoice{Store: store, Transaction: trx}, nil
}

// UpdatePayment edits the timestamp and amount received; change is recomputed from the stored total.
func (s *transactionService) UpdatePayment(id uint, req *UpdateTransactionRequest, actor Actor) (*model.Transaction, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}
	date, err := parseLocalDateTime(req.Date)
	if err != nil {
		return nil, err
	}

	trx, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.AmountReceived < trx.Total {
		return nil, ErrInsufficientPayment
	}

	trx.Date = date
	trx.AmountReceived = req.AmountReceived
	trx.Change = req.AmountReceived - trx.Total
	trx.UpdatedBy = actor.Name()
	if err := s.transactionRepo.UpdatePayment(trx); err != nil {
		return nil, err
	}
	return trx, nil
}

// Delete restocks every detail, removes the rows and finally the proof file.
func (s *transactionService) Delete(id uint, actor Actor) error {
	trx, err := s.GetByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range trx.Details {
			found, err := s.productRepo.RestockByDisplayName(tx, d.ProductName, d.Qty, actor.Name())
			if err != nil {
				return err
			}
			if !found {
				log.Printf("Warning: %s: no product named %q to restock, skipped", trx.InvoiceNo, d.ProductName)
			}
		}
		return s.transactionRepo.Delete(tx, trx.ID)
	})
	if err != nil {
		return err
	}

	removeQuietly(s.files, storage.KindProof, trx.ProofImage)

	s.events.Publish(ws.Event{
		Type:    "transaction_deleted",
		Action:  "delete",
		Actor:   actor.Name(),
		Message: fmt.Sprintf("%s deleted %s", actor.Name(), trx.InvoiceNo),
		Data: map[string]interface{}{
			"id":        trx.ID,
			"no_faktur": trx.InvoiceNo,
		},
	})
	return nil
}

func parseLocalDateTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, model.WIB); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, validationError(fmt.Sprintf("invalid date %q, use YYYY-MM-DDTHH:MM", raw))
}
