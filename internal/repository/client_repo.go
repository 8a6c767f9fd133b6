package repository

import (
	"go-gestion-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll() ([]model.Client, error)
	FindByID(id uuid.UUID) (*model.Client, error)
	Update(client *model.Client) error
	AddCredit(tx *gorm.DB, id uuid.UUID, amount float64) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindAll() ([]model.Client, error) {
	var clients []model.Client
	err := r.db.Order("nom ASC, prenom ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "id = ?", id).Error
	return &client, err
}

func (r *clientRepo) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

// AddCredit takes *gorm.DB (tx) so it runs inside the caller's transaction.
func (r *clientRepo) AddCredit(tx *gorm.DB, id uuid.UUID, amount float64) error {
	return tx.Model(&model.Client{}).
		Where("id = ?", id).
		Update("credit", gorm.Expr("credit + ?", amount)).Error
}
