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

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProductNotFound = errors.New("product not found")
	ErrVenteNotFound   = errors.New("vente not found")
)

// CreateVenteRequest is the payload for recording a sale.
type CreateVenteRequest struct {
	ClientID    uuid.UUID              `json:"clientId" validate:"uuid_required"`
	Items       []CreateVenteItemInput `json:"items" validate:"required,min=1,dive"`
	Total       float64                `json:"total" validate:"gte=0"`
	MontantPaye float64                `json:"montantPaye" validate:"gte=0"`
}

type CreateVenteItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
	ModeVente string    `json:"modeVente" validate:"required,oneof=gros detail"`
}

type VenteService interface {
	CreateVente(req *CreateVenteRequest, userID uuid.UUID) (*model.Vente, error)
	GetAllVentes() ([]model.Vente, error)
	GetVenteByID(id uuid.UUID) (*model.Vente, error)
	MarkPrinted(id uuid.UUID) error
}

type venteService struct {
	venteRepo   repository.VenteRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewVenteService(vRepo repository.VenteRepository, pRepo repository.ProductRepository, cRepo repository.ClientRepository, db *gorm.DB, hub *ws.Hub) VenteService {
	return &venteService{
		venteRepo:   vRepo,
		productRepo: pRepo,
		clientRepo:  cRepo,
		db:          db,
		wsHub:       hub,
	}
}

// CreateVente records a sale as one atomic unit: the vente row, its line
// items, every product stock decrement, and the client credit accrual all
// commit together or not at all. The unpaid part of the total becomes
// client credit. Stock decrements are conditional updates, so a sale that
// would drive any product's stock negative is rejected with
// repository.ErrInsufficientStock and nothing is applied.
func (s *venteService) CreateVente(req *CreateVenteRequest, userID uuid.UUID) (*model.Vente, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Credit is derived server-side, never trusted from the payload.
	credit := req.Total - req.MontantPaye
	if credit < 0 {
		credit = 0
	}

	vente := &model.Vente{
		ClientID:    req.ClientID,
		UserID:      userID,
		Total:       req.Total,
		MontantPaye: req.MontantPaye,
		Credit:      credit,
		Date:        time.Now().UTC(),
		Printed:     false,
	}

	var events []ws.StockEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var client model.Client
		if err := tx.First(&client, "id = ?", req.ClientID).Error; err != nil {
			return ErrClientNotFound
		}

		for _, item := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return ErrProductNotFound
			}

			if err := s.productRepo.DecrementStock(tx, product.ID, item.Quantity); err != nil {
				return err
			}

			// Snapshot the name at sale time so the line survives later
			// product renames and deletions.
			vente.Items = append(vente.Items, model.VenteItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       item.Price,
				ModeVente:   item.ModeVente,
			})

			newStock := product.Stock - item.Quantity
			events = append(events, ws.StockEvent{
				Type:        "stock_update",
				Action:      "vente_created",
				ProductID:   product.ID.String(),
				ProductName: product.Name,
				NewStock:    newStock,
				LowStock:    newStock <= product.StockCritique,
			})
		}

		if err := tx.Create(vente).Error; err != nil {
			return err
		}

		if credit > 0 {
			if err := s.clientRepo.AddCredit(tx, client.ID, credit); err != nil {
				return err
			}
		}

		vente.Client = &client
		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		s.wsHub.BroadcastStock(ev)
	}

	return vente, nil
}

func (s *venteService) GetAllVentes() ([]model.Vente, error) {
	return s.venteRepo.FindAll()
}

func (s *venteService) GetVenteByID(id uuid.UUID) (*model.Vente, error) {
	vente, err := s.venteRepo.FindByID(id)
	if err != nil {
		return nil, ErrVenteNotFound
	}
	return vente, nil
}

// MarkPrinted flags a vente as printed. Re-flagging is a no-op.
func (s *venteService) MarkPrinted(id uuid.UUID) error {
	rows, err := s.venteRepo.MarkPrinted(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVenteNotFound
	}
	return nil
}
