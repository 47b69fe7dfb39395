package model

// Role represents user roles in the system
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // ADMIN, CASHIER
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Full store access",
	},
	{
		Code:        RoleCashier,
		Name:        "Kasir",
		Description: "Cashier screen, checkout and invoices",
	},
}

// CashierPrivileges is granted to the CASHIER role on first start. ADMIN gets every privilege.
var CashierPrivileges = []string{
	PrivDashboardView,
	PrivProductView,
	PrivCategoryView,
	PrivCashierCheckout,
	PrivInvoiceView,
}
