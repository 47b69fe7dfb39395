package model

// LowStockThreshold: products with stock strictly below this count as low stock.
const LowStockThreshold = 5

type Product struct {
	BaseModel
	Code       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Variant    string    `gorm:"type:varchar(100);default:''" json:"variant"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	Stock      int       `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CostPrice  int64     `gorm:"not null;default:0" json:"cost_price"`
	SellPrice  int64     `gorm:"not null;default:0" json:"sell_price"`
}

// DisplayName is the label printed on receipts and snapshotted into transaction details.
func (p *Product) DisplayName() string {
	return DisplayName(p.Name, p.Variant)
}

func DisplayName(name, variant string) string {
	if variant == "" {
		return name
	}
	return name + " (" + variant + ")"
}
