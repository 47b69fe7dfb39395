package model

// StoreInfo is the single-row store profile printed on invoices.
type StoreInfo struct {
	BaseModel
	StoreName    string  `gorm:"type:varchar(100);not null" json:"nama_toko"`
	Address      string  `gorm:"type:text" json:"alamat"`
	Phone        string  `gorm:"type:varchar(20)" json:"telepon"`
	LogoFilename *string `gorm:"type:varchar(255)" json:"logo_filename"`
}

// DefaultStoreName is used until the owner saves the settings form.
const DefaultStoreName = "Toko Elok Alfa"
