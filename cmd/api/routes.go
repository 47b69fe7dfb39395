package main

import (
	"github.com/Maspur102/elokalfa/internal/handler"
	"github.com/Maspur102/elokalfa/internal/middleware"
	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type routeHandlers struct {
	auth        *handler.AuthHandler
	user        *handler.UserHandler
	role        *handler.RoleHandler
	settings    *handler.SettingsHandler
	category    *handler.CategoryHandler
	product     *handler.ProductHandler
	cashier     *handler.CashierHandler
	transaction *handler.TransactionHandler
	expense     *handler.ExpenseHandler
	dashboard   *handler.DashboardHandler
}

func registerRoutes(app *fiber.App, h routeHandlers, requireAuth, loginLimit fiber.Handler, uploadRoot string, wsHub *ws.Hub) {
	priv := middleware.RequirePrivilege
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", loginLimit, h.auth.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", requireAuth)

	protected.Post("/auth/logout", h.auth.Logout)
	protected.Get("/auth/me", h.auth.Me)
	protected.Post("/auth/change-password", h.auth.ChangePassword)

	// Dashboard & reports
	protected.Get("/dashboard", priv(model.PrivDashboardView), h.dashboard.GetSummary)
	protected.Get("/dashboard/revenue", priv(model.PrivDashboardView), h.dashboard.GetRevenue)
	protected.Get("/reports/transactions.csv", priv(model.PrivReportExport), h.dashboard.ExportTransactions)

	// Store settings
	protected.Get("/settings", h.settings.GetSettings)
	protected.Put("/settings", priv(model.PrivSettingsUpdate), h.settings.UpdateSettings)

	// Categories
	protected.Get("/categories", priv(model.PrivCategoryView), h.category.GetCategories)
	protected.Get("/categories/:id", priv(model.PrivCategoryView), h.category.GetCategory)
	protected.Post("/categories", priv(model.PrivCategoryManage), h.category.CreateCategory)
	protected.Put("/categories/:id", priv(model.PrivCategoryManage), h.category.UpdateCategory)
	protected.Delete("/categories/:id", priv(model.PrivCategoryManage), h.category.DeleteCategory)

	// Products
	protected.Get("/products", priv(model.PrivProductView), h.product.GetProducts)
	protected.Get("/products/:id", priv(model.PrivProductView), h.product.GetProduct)
	protected.Post("/products", priv(model.PrivProductManage), h.product.CreateProduct)
	protected.Put("/products/:id", priv(model.PrivProductManage), h.product.UpdateProduct)
	protected.Delete("/products/:id", priv(model.PrivProductManage), h.product.DeleteProduct)

	// Cashier
	protected.Get("/cashier/products", priv(model.PrivCashierCheckout), h.cashier.GetProducts)
	protected.Post("/cashier/checkout", priv(model.PrivCashierCheckout), h.cashier.Checkout)

	// Transaction history & invoices
	protected.Get("/transactions", priv(model.PrivTransactionView), h.transaction.GetTransactions)
	protected.Get("/transactions/:id", priv(model.PrivTransactionView), h.transaction.GetTransaction)
	protected.Put("/transactions/:id", priv(model.PrivTransactionManage), h.transaction.UpdateTransaction)
	protected.Delete("/transactions/:id", priv(model.PrivTransactionManage), h.transaction.DeleteTransaction)
	protected.Get("/invoices/:no_faktur", priv(model.PrivInvoiceView), h.transaction.GetInvoice)

	// Expenses
	protected.Get("/expenses", priv(model.PrivExpenseManage), h.expense.GetExpenses)
	protected.Get("/expenses/:id", priv(model.PrivExpenseManage), h.expense.GetExpense)
	protected.Post("/expenses", priv(model.PrivExpenseManage), h.expense.CreateExpense)
	protected.Put("/expenses/:id", priv(model.PrivExpenseManage), h.expense.UpdateExpense)
	protected.Delete("/expenses/:id", priv(model.PrivExpenseManage), h.expense.DeleteExpense)

	// User Management
	protected.Get("/users", priv(model.PrivUserManage), h.user.GetUsers)
	protected.Get("/users/:id", priv(model.PrivUserManage), h.user.GetUser)
	protected.Post("/users", priv(model.PrivUserManage), h.user.CreateUser)
	protected.Put("/users/:id", priv(model.PrivUserManage), h.user.UpdateUser)
	protected.Delete("/users/:id", priv(model.PrivUserManage), h.user.DeleteUser)
	protected.Get("/roles", priv(model.PrivUserManage), h.role.GetRoles)

	// Uploaded images (logos, transfer proofs, expense receipts)
	protected.Static("/uploads", uploadRoot, fiber.Static{Browse: false})

	// WebSocket Route
	app.Use("/ws", requireAuth, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
