package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/internal/ws"
	"github.com/Maspur102/elokalfa/pkg/validator"

	"gorm.io/gorm"
)

// maxInvoiceSuffix bounds the -2, -3, ... retries for a taken invoice number.
const maxInvoiceSuffix = 100

type CheckoutService interface {
	Checkout(req *CheckoutRequest, proof *multipart.FileHeader, actor Actor) (*model.Transaction, error)
	AvailableProducts() ([]model.Product, error)
}

type CheckoutRequest struct {
	Cart           []CartItem `validate:"required,min=1,dive"`
	Total          int64      `validate:"gte=0"`
	Discount       int64      `validate:"gte=0"`
	AmountReceived int64      `validate:"gte=0"`
	Change         int64
	PaymentMethod  string `validate:"required"`
	CustomerName   string `validate:"max=100"`
	Note           string
}

type checkoutService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	files           FileStorage
	db              *gorm.DB
	events          ws.Publisher
	now             func() time.Time
}

// NewCheckoutService wires the checkout workflow. A nil now uses time.Now.
func NewCheckoutService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, files FileStorage, db *gorm.DB, events ws.Publisher, now func() time.Time) CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &checkoutService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		files:           files,
		db:              db,
		events:          events,
		now:             now,
	}
}

func (s *checkoutService) AvailableProducts() ([]model.Product, error) {
	return s.productRepo.FindAvailable()
}

func (s *checkoutService) Checkout(req *CheckoutRequest, proof *multipart.FileHeader, actor Actor) (*model.Transaction, error) {
	// 1. Validate the request before touching disk or database
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}
	method, ok := model.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, validationError("payment_method must be Cash or Transfer")
	}

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = model.DefaultCustomerName
	}

	// 2. Settle the payment amounts
	received, change := req.AmountReceived, int64(0)
	if method == model.PaymentTransfer {
		if proof == nil {
			return nil, ErrProofRequired
		}
		if !storage.IsAllowed(proof.Filename) {
			return nil, ErrProofType
		}
		received = req.Total
	} else {
		if received < req.Total {
			return nil, ErrInsufficientPayment
		}
		change = received - req.Total
	}

	// 3. Store the proof before the unit of work
	var proofName *string
	if method == model.PaymentTransfer {
		name, err := saveUpload(s.files, storage.KindProof, proof)
		if errors.Is(err, ErrFileType) {
			return nil, ErrProofType
		}
		if err != nil {
			return nil, err
		}
		proofName = name
	}

	now := s.now()
	trx := &model.Transaction{
		Date:           now,
		CustomerName:   customer,
		Discount:       req.Discount,
		Note:           strings.TrimSpace(req.Note),
		Total:          req.Total,
		AmountReceived: received,
		Change:         change,
		PaymentMethod:  method,
		ProofImage:     proofName,
	}
	trx.CreatedBy = actor.Name()
	trx.UpdatedBy = actor.Name()

	// 4. Reserve stock and write the transaction atomically
	err := s.db.Transaction(func(tx *gorm.DB) error {
		details := make([]model.TransactionDetail, 0, len(req.Cart))
		for _, item := range req.Cart {
			product, err := s.productRepo.LockByID(tx, item.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
			}
			if err != nil {
				return err
			}

			// the locked row already reflects earlier lines of this cart
			decremented, err := s.productRepo.DecrementStock(tx, product.ID, item.Qty, actor.Name())
			if err != nil {
				return err
			}
			if !decremented {
				return &InsufficientStockError{
					Product:   product.DisplayName(),
					Available: product.Stock,
					Requested: item.Qty,
				}
			}

			details = append(details, model.TransactionDetail{
				ProductName: product.DisplayName(),
				Qty:         item.Qty,
				Price:       item.Price,
				Subtotal:    int64(item.Qty) * item.Price,
			})
		}
		trx.Details = details

		invoiceNo, err := s.nextInvoiceNo(tx, now)
		if err != nil {
			return err
		}
		trx.InvoiceNo = invoiceNo

		return s.transactionRepo.Create(tx, trx)
	})
	if err != nil {
		removeQuietly(s.files, storage.KindProof, proofName)
		return nil, err
	}

	// 5. Notify connected screens
	s.events.Publish(ws.Event{
		Type:    "transaction_created",
		Action:  "checkout",
		Actor:   actor.Name(),
		Message: fmt.Sprintf("%s recorded %s (Rp %d)", actor.Name(), trx.InvoiceNo, trx.Total),
		Data: map[string]interface{}{
			"id":             trx.ID,
			"no_faktur":      trx.InvoiceNo,
			"total_bayar":    trx.Total,
			"payment_method": trx.PaymentMethod,
			"items":          len(trx.Details),
		},
	})

	return trx, nil
}

// nextInvoiceNo derives TRX-YYYYMMDD-HHMMSS from the WIB clock and appends -2, -3, ... when taken.
func (s *checkoutService) nextInvoiceNo(tx *gorm.DB, now time.Time) (string, error) {
	base := "TRX-" + now.In(model.WIB).Format("20060102-150405")
	candidate := base
	for n := 2; n <= maxInvoiceSuffix+1; n++ {
		taken, err := s.transactionRepo.InvoiceExists(tx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("no free invoice number for %s", base)
}
