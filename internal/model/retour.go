package model

import (
	"time"

	"github.com/google/uuid"
)

// Retour reverses part of a prior vente's quantity for one product,
// restoring its stock. It references the vente and the product but owns
// neither; ProductName is a snapshot like on VenteItem.
type Retour struct {
	BaseModel
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId" validate:"uuid_required"`
	Client      *Client   `gorm:"foreignKey:ClientID" json:"-" validate:"-"`
	VenteID     uuid.UUID `gorm:"type:uuid;not null;index" json:"venteId" validate:"uuid_required"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"productName" validate:"required"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Date        time.Time `gorm:"not null" json:"date"`
}

func (Retour) TableName() string {
	return "retours"
}

// ClientName is derived from the joined client row when present.
func (r *Retour) ClientName() string {
	if r.Client == nil {
		return ""
	}
	return r.Client.FullName()
}

// RetourResponse is the API shape of a retour, with the client display
// name joined in.
type RetourResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"clientId"`
	ClientName  string    `json:"clientName"`
	VenteID     uuid.UUID `json:"venteId"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse converts Retour to RetourResponse
func (r *Retour) ToResponse() RetourResponse {
	return RetourResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName(),
		VenteID:     r.VenteID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt,
	}
}
