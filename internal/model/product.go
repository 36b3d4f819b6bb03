package model

// Product is one catalog entry. ProductCode is the merchant-assigned code
// printed on the stock itself, distinct from the database id.
type Product struct {
	BaseModel
	ProductCode    string  `gorm:"type:varchar(26);uniqueIndex;not null" json:"product_id" validate:"required"`
	Name           string  `gorm:"type:varchar(250);uniqueIndex;not null" json:"product_name" validate:"required"`
	Price          float64 `gorm:"not null" json:"product_price" validate:"gte=0"`
	WholesalePrice float64 `gorm:"not null" json:"wholesale_price" validate:"gte=0"`
	Quantity       int     `gorm:"not null" json:"quantity" validate:"gte=0"`
	ImgURL         string  `gorm:"type:varchar(250);not null" json:"img_url" validate:"required"`
	Description    string  `gorm:"type:varchar(500);not null" json:"description" validate:"required"`
}

// InStock reports whether the product can currently be sold
func (p *Product) InStock() bool {
	return p.Quantity != 0
}
