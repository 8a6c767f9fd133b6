package service

import (
	"fmt"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/internal/ws"
	"go-gestion-stock/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(req *model.Product, userID uuid.UUID) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *productService) CreateProduct(req *model.Product, userID uuid.UUID) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.UserID = userID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.BroadcastStock(ws.StockEvent{
		Type:        "stock_update",
		Action:      "product_created",
		ProductID:   req.ID.String(),
		ProductName: req.Name,
		NewStock:    req.Stock,
		LowStock:    req.IsLowStock(),
	})
	return nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	existing.Name = req.Name
	existing.PriceGros = req.PriceGros
	existing.PriceDetail = req.PriceDetail
	existing.Stock = req.Stock
	existing.StockCritique = req.StockCritique

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.BroadcastStock(ws.StockEvent{
		Type:        "stock_update",
		Action:      "product_updated",
		ProductID:   existing.ID.String(),
		ProductName: existing.Name,
		NewStock:    existing.Stock,
		LowStock:    existing.IsLowStock(),
	})
	return existing, nil
}

// DeleteProduct removes the product and everything referencing it: the
// retours for the product and the vente line items that snapshot it. The
// ventes themselves survive; their lines carry the snapshotted name.
func (s *productService) DeleteProduct(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		if err := tx.Delete(&model.Retour{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.VenteItem{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
