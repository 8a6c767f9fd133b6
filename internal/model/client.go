package model

import "github.com/google/uuid"

// Client is a customer with a running credit balance. Credit accrues when
// a sale is underpaid and is only mutated by sale transactions or a direct
// client update.
type Client struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid" json:"userId"`
	Nom       string    `gorm:"type:varchar(255);not null" json:"nom" validate:"required"`
	Prenom    string    `gorm:"type:varchar(255);not null" json:"prenom" validate:"required"`
	Adresse   *string   `gorm:"type:varchar(255)" json:"adresse"`
	Telephone string    `gorm:"type:varchar(50);not null" json:"telephone" validate:"required"`
	Credit    float64   `gorm:"not null;default:0" json:"credit"`
}

// FullName is the display name used on sales and invoices.
func (c *Client) FullName() string {
	return c.Nom + " " + c.Prenom
}
