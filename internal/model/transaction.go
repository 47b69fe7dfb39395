package model

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentTransfer PaymentMethod = "Transfer"
)

// ParsePaymentMethod accepts the method case-insensitively.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash":
		return PaymentCash, true
	case "transfer":
		return PaymentTransfer, true
	}
	return "", false
}

// DefaultCustomerName is used when the cashier leaves the customer blank.
const DefaultCustomerName = "Umum"

type Transaction struct {
	BaseModel
	InvoiceNo      string              `gorm:"column:no_faktur;type:varchar(50);uniqueIndex;not null" json:"no_faktur"`
	Date           time.Time           `gorm:"column:tanggal;not null;index" json:"tanggal"`
	CustomerName   string              `gorm:"type:varchar(100);default:'Umum'" json:"customer_name"`
	Discount       int64               `gorm:"not null;default:0" json:"diskon"`
	Note           string              `gorm:"type:text" json:"catatan"`
	Total          int64               `gorm:"column:total_bayar;not null" json:"total_bayar"`
	AmountReceived int64               `gorm:"column:uang_diterima;not null" json:"uang_diterima"`
	Change         int64               `gorm:"column:kembalian;not null" json:"kembalian"`
	PaymentMethod  PaymentMethod       `gorm:"type:varchar(20);default:'Cash'" json:"payment_method"`
	ProofImage     *string             `gorm:"type:varchar(255)" json:"proof_image"`
	Details        []TransactionDetail `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

// TransactionDetail is a snapshot of one sold line. It does not reference the product row,
// so later product edits never change historical receipts.
type TransactionDetail struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID uint   `gorm:"not null;index" json:"transaction_id"`
	ProductName   string `gorm:"type:varchar(210);not null" json:"product_name"`
	Qty           int    `gorm:"not null" json:"qty"`
	Price         int64  `gorm:"not null" json:"price"`
	Subtotal      int64  `gorm:"not null" json:"subtotal"`
}

// ItemSummary renders the details as "Kopi x2, Teh x1".
func (t *Transaction) ItemSummary() string {
	parts := make([]string, 0, len(t.Details))
	for _, d := range t.Details {
		parts = append(parts, fmt.Sprintf("%s x%d", d.ProductName, d.Qty))
	}
	return strings.Join(parts, ", ")
}
