package model

import "time"

type Expense struct {
	BaseModel
	Date        time.Time `gorm:"column:tanggal;not null;index" json:"tanggal"`
	Category    string    `gorm:"type:varchar(50);not null" json:"kategori"`
	Description string    `gorm:"type:text" json:"keterangan"`
	Amount      int64     `gorm:"not null" json:"jumlah"`
	ReceiptFile *string   `gorm:"type:varchar(255)" json:"bukti_nota"`
}
