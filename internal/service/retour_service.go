package service

import (
	"errors"
	"fmt"
	"time"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/internal/ws"
	"go-gestion-stock/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRetourNotFound = errors.New("retour not found")

// CreateRetourRequest is the payload for recording a return against a
// prior vente.
type CreateRetourRequest struct {
	ClientID    uuid.UUID `json:"clientId" validate:"uuid_required"`
	VenteID     uuid.UUID `json:"venteId" validate:"uuid_required"`
	ProductID   uuid.UUID `json:"productId" validate:"uuid_required"`
	ProductName string    `json:"productName" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
}

type RetourService interface {
	CreateRetour(req *CreateRetourRequest) (*model.Retour, error)
	DeleteRetour(id uuid.UUID) error
	GetAllRetours() ([]model.Retour, error)
	GetRetourByID(id uuid.UUID) (*model.Retour, error)
}

type retourService struct {
	retourRepo  repository.RetourRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewRetourService(rRepo repository.RetourRepository, pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) RetourService {
	return &retourService{
		retourRepo:  rRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

// CreateRetour inserts the retour row and restores the product's stock in
// one transaction. Client credit is untouched: returns only move stock.
func (s *retourService) CreateRetour(req *CreateRetourRequest) (*model.Retour, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	retour := &model.Retour{
		ClientID:    req.ClientID,
		VenteID:     req.VenteID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Date:        time.Now().UTC(),
	}

	var event ws.StockEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var client model.Client
		if err := tx.First(&client, "id = ?", req.ClientID).Error; err != nil {
			return ErrClientNotFound
		}

		var vente model.Vente
		if err := tx.First(&vente, "id = ?", req.VenteID).Error; err != nil {
			return ErrVenteNotFound
		}

		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return ErrProductNotFound
		}

		if err := tx.Create(retour).Error; err != nil {
			return err
		}

		if err := s.productRepo.IncrementStock(tx, product.ID, req.Quantity); err != nil {
			return err
		}

		newStock := product.Stock + req.Quantity
		event = ws.StockEvent{
			Type:        "stock_update",
			Action:      "retour_created",
			ProductID:   product.ID.String(),
			ProductName: product.Name,
			NewStock:    newStock,
			LowStock:    newStock <= product.StockCritique,
		}

		retour.Client = &client
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.wsHub.BroadcastStock(event)
	return retour, nil
}

// DeleteRetour reverses a return: the row is removed and the previously
// restored stock is taken back, atomically.
func (s *retourService) DeleteRetour(id uuid.UUID) error {
	var event ws.StockEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var retour model.Retour
		if err := tx.First(&retour, "id = ?", id).Error; err != nil {
			return ErrRetourNotFound
		}

		if err := tx.Delete(&model.Retour{}, "id = ?", id).Error; err != nil {
			return err
		}

		if err := s.productRepo.IncrementStock(tx, retour.ProductID, -retour.Quantity); err != nil {
			return err
		}

		var product model.Product
		if err := tx.First(&product, "id = ?", retour.ProductID).Error; err == nil {
			event = ws.StockEvent{
				Type:        "stock_update",
				Action:      "retour_deleted",
				ProductID:   product.ID.String(),
				ProductName: product.Name,
				NewStock:    product.Stock,
				LowStock:    product.IsLowStock(),
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	if event.Type != "" {
		s.wsHub.BroadcastStock(event)
	}
	return nil
}

func (s *retourService) GetAllRetours() ([]model.Retour, error) {
	return s.retourRepo.FindAll()
}

func (s *retourService) GetRetourByID(id uuid.UUID) (*model.Retour, error) {
	retour, err := s.retourRepo.FindByID(id)
	if err != nil {
		return nil, ErrRetourNotFound
	}
	return retour, nil
}
