package repository

import (
	"errors"

	"go-gestion-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a conditional decrement matches no
// row, meaning the product's stock is below the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock remaining")

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) error
	IncrementStock(tx *gorm.DB, id uuid.UUID, quantity int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// DecrementStock takes *gorm.DB (tx) so it runs inside the caller's
// transaction. The decrement is a single conditional update: the stock
// check and the write cannot be separated, so concurrent sales against
// the same product can never drive stock negative.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock takes *gorm.DB (tx) so it runs inside the caller's
// transaction.
func (r *productRepo) IncrementStock(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
}
