package domain

// Product is a catalogue entry shown on the products page
type Product struct {
	ID               int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"size:255;index" json:"name"`
	ShortDescription string `gorm:"size:512" json:"shortDescription"`
	Description      string `gorm:"type:text" json:"description"`
	ImageUrl         string `gorm:"size:1024" json:"imageUrl"` // URL to product image (optional)
	ProductUrl       string `gorm:"size:1024" json:"productUrl"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
