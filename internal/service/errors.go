package service

import (
	"errors"
	"fmt"
)

// Error kinds shared by the services. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientPayment = errors.New("amount received is less than the total")
	ErrProofRequired       = errors.New("proof of transfer is required for transfer payments")
	ErrProofType           = errors.New("proof of transfer must be a png, jpg, jpeg, gif or webp image")
	ErrFileType            = errors.New("upload must be a png, jpg, jpeg, gif or webp image")

	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrRoleNotFound        = errors.New("role not found")

	ErrCategoryInUse    = errors.New("category still has products")
	ErrCodeExists       = errors.New("product code already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrCannotDeleteSelf = errors.New("you cannot delete your own account")
)

// InsufficientStockError names the product that could not cover a cart line.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (available %d, requested %d)", e.Product, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
