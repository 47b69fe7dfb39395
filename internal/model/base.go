package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel handles the numeric ID and standard audit trail
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit user tracking (username of the actor)
	CreatedBy string `gorm:"type:varchar(50)" json:"created_by"`
	UpdatedBy string `gorm:"type:varchar(50)" json:"updated_by"`
}

// BeforeCreate fills audit fields for rows written by seeders and maintenance tools.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.CreatedBy == "" {
		base.CreatedBy = SystemActor
	}
	if base.UpdatedBy == "" {
		base.UpdatedBy = base.CreatedBy
	}
	return
}

// SystemActor is recorded when no authenticated user performed the change.
const SystemActor = "system"

// Migratables lists every table the application owns, in dependency order.
func Migratables() []interface{} {
	return []interface{}{
		&Privilege{},
		&Role{},
		&User{},
		&StoreInfo{},
		&Category{},
		&Product{},
		&Transaction{},
		&TransactionDetail{},
		&Expense{},
	}
}
