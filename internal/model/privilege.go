package model

// Privilege represents a permission that can be assigned to roles
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:manage"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

const (
	PrivDashboardView     = "dashboard:view"
	PrivSettingsUpdate    = "settings:update"
	PrivCategoryView      = "category:view"
	PrivCategoryManage    = "category:manage"
	PrivProductView       = "product:view"
	PrivProductManage     = "product:manage"
	PrivCashierCheckout   = "cashier:checkout"
	PrivTransactionView   = "transaction:view"
	PrivTransactionManage = "transaction:manage"
	PrivInvoiceView       = "invoice:view"
	PrivExpenseManage     = "expense:manage"
	PrivReportExport      = "report:export"
	PrivUserManage        = "user:manage"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	{Code: PrivDashboardView, Name: "View Dashboard"},
	{Code: PrivSettingsUpdate, Name: "Update Store Settings"},
	{Code: PrivCategoryView, Name: "View Category"},
	{Code: PrivCategoryManage, Name: "Manage Category"},
	{Code: PrivProductView, Name: "View Product"},
	{Code: PrivProductManage, Name: "Manage Product"},
	{Code: PrivCashierCheckout, Name: "Cashier Checkout"},
	{Code: PrivTransactionView, Name: "View Transaction History"},
	{Code: PrivTransactionManage, Name: "Edit/Delete Transaction"},
	{Code: PrivInvoiceView, Name: "View Invoice"},
	{Code: PrivExpenseManage, Name: "Manage Expense"},
	{Code: PrivReportExport, Name: "Export Report"},
	{Code: PrivUserManage, Name: "Manage User"},
}
