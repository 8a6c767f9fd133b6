package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Price modes for a sale line item.
const (
	ModeGros   = "gros"
	ModeDetail = "detail"
)

// Vente records one client's purchase of one or more product line items.
// Credit is the unpaid part of the total (never negative). A vente is
// immutable once created except for the printed flag.
type Vente struct {
	BaseModel
	ClientID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"clientId" validate:"uuid_required"`
	Client      *Client     `gorm:"foreignKey:ClientID" json:"-" validate:"-"`
	UserID      uuid.UUID   `gorm:"type:uuid" json:"userId"`
	Total       float64     `gorm:"not null" json:"total"`
	MontantPaye float64     `gorm:"not null" json:"montantPaye"`
	Credit      float64     `gorm:"not null;default:0" json:"credit"`
	Date        time.Time   `gorm:"not null" json:"date"`
	Printed     bool        `gorm:"not null;default:false" json:"printed"`
	Items       []VenteItem `gorm:"constraint:OnDelete:CASCADE;" json:"items" validate:"required,min=1,dive"`
}

// ClientName is derived from the joined client row when present.
func (v *Vente) ClientName() string {
	if v.Client == nil {
		return ""
	}
	return v.Client.FullName()
}

// VenteResponse is the API shape of a vente, with the client display
// name joined in.
type VenteResponse struct {
	ID          uuid.UUID   `json:"id"`
	ClientID    uuid.UUID   `json:"clientId"`
	ClientName  string      `json:"clientName"`
	UserID      uuid.UUID   `json:"userId"`
	Total       float64     `json:"total"`
	MontantPaye float64     `json:"montantPaye"`
	Credit      float64     `json:"credit"`
	Date        time.Time   `json:"date"`
	Printed     bool        `json:"printed"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []VenteItem `json:"items"`
}

// ToResponse converts Vente to VenteResponse
func (v *Vente) ToResponse() VenteResponse {
	items := v.Items
	if items == nil {
		items = []VenteItem{}
	}
	return VenteResponse{
		ID:          v.ID,
		ClientID:    v.ClientID,
		ClientName:  v.ClientName(),
		UserID:      v.UserID,
		Total:       v.Total,
		MontantPaye: v.MontantPaye,
		Credit:      v.Credit,
		Date:        v.Date,
		Printed:     v.Printed,
		CreatedAt:   v.CreatedAt,
		Items:       items,
	}
}

// VenteItem is one line of a vente. ProductName is a snapshot taken at
// sale time so the line survives later product renames and deletions.
type VenteItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	VenteID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"productName"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       float64   `gorm:"not null" json:"price"`
	ModeVente   string    `gorm:"type:varchar(10);not null" json:"modeVente" validate:"required,oneof=gros detail"`
}

func (VenteItem) TableName() string {
	return "vente_items"
}

func (i *VenteItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
