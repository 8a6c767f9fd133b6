package repository

import (
	"go-gestion-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RetourRepository interface {
	FindAll() ([]model.Retour, error)
	FindByID(id uuid.UUID) (*model.Retour, error)
}

type retourRepo struct {
	db *gorm.DB
}

func NewRetourRepo(db *gorm.DB) RetourRepository {
	return &retourRepo{db}
}

func (r *retourRepo) FindAll() ([]model.Retour, error) {
	var retours []model.Retour
	err := r.db.Preload("Client").Order("date DESC").Find(&retours).Error
	return retours, err
}

func (r *retourRepo) FindByID(id uuid.UUID) (*model.Retour, error) {
	var retour model.Retour
	err := r.db.Preload("Client").First(&retour, "id = ?", id).Error
	return &retour, err
}
