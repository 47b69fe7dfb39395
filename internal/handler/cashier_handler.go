package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CashierHandler struct {
	service service.CheckoutService
}

func NewCashierHandler(s service.CheckoutService) *CashierHandler {
	return &CashierHandler{service: s}
}

// GetProducts lists products that can be sold (stock > 0)
// GET /api/v1/cashier/products
func (h *CashierHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.AvailableProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

// Checkout records a sale from the cashier form (multipart or urlencoded)
// POST /api/v1/cashier/checkout
func (h *CashierHandler) Checkout(c *fiber.Ctx) error {
	req, err := checkoutRequestFromForm(c)
	if err != nil {
		return checkoutError(c, err)
	}
	proof, err := optionalFile(c, "proof_image")
	if err != nil {
		return checkoutError(c, fmt.Errorf("%w: unreadable proof_image", service.ErrValidation))
	}

	trx, err := h.service.Checkout(req, proof, actorOf(c))
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"no_faktur": trx.InvoiceNo,
		"kembalian": trx.Change,
	})
}

func checkoutError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
}

func checkoutRequestFromForm(c *fiber.Ctx) (*service.CheckoutRequest, error) {
	cart, err := service.ParseCart(c.FormValue("keranjang"))
	if err != nil {
		return nil, err
	}

	method := strings.TrimSpace(c.FormValue("payment_method"))
	if method == "" {
		return nil, fmt.Errorf("%w: payment_method is required", service.ErrValidation)
	}

	req := &service.CheckoutRequest{
		Cart:          cart,
		PaymentMethod: method,
		CustomerName:  c.FormValue("customer_name"),
		Note:          c.FormValue("catatan"),
	}

	// Transfer settles the exact total, so only cash needs uang_diterima
	pm, _ := model.ParsePaymentMethod(method)
	fields := []struct {
		key      string
		dst      *int64
		required bool
	}{
		{"total_bayar", &req.Total, true},
		{"diskon", &req.Discount, false},
		{"uang_diterima", &req.AmountReceived, pm == model.PaymentCash},
		{"kembalian", &req.Change, false},
	}
	for _, f := range fields {
		v, err := formInt(c, f.key, f.required)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return req, nil
}

// formInt reads a whole-number form field. A missing or blank optional field is 0.
func formInt(c *fiber.Ctx, key string, required bool) (int64, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		if required {
			return 0, fmt.Errorf("%w: %s is required", service.ErrValidation, key)
		}
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", service.ErrValidation, key)
	}
	return v, nil
}
