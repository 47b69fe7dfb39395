package model

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}
