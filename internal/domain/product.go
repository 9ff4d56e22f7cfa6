package domain

// Product Model
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`            // Primary key
	Name  string  `gorm:"size:150;not null" json:"name"`   // Product name
	Price float64 `gorm:"not null" json:"price"`           // Unit price
	Stock int     `gorm:"not null;default:0" json:"stock"` // Units in stock, may be zero
}
