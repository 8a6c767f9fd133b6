package model

import "github.com/google/uuid"

// Product is a catalogue entry with two price tiers: gros (wholesale)
// and detail (retail). Stock is only mutated by sale/return transactions
// and direct product updates; StockCritique is the low-stock warning level.
type Product struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid" json:"userId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	PriceGros     float64   `gorm:"not null" json:"priceGros"`
	PriceDetail   float64   `gorm:"not null" json:"priceDetail"`
	Stock         int       `gorm:"not null;default:0" json:"stock"`
	StockCritique int       `gorm:"not null;default:0" json:"stockCritique"`
}

// IsLowStock reports whether the product sits at or under its warning level.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.StockCritique
}
