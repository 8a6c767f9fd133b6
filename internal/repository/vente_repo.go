package repository

import (
	"go-gestion-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenteRepository interface {
	FindAll() ([]model.Vente, error)
	FindByID(id uuid.UUID) (*model.Vente, error)
	MarkPrinted(id uuid.UUID) (int64, error)
}

type venteRepo struct {
	db *gorm.DB
}

func NewVenteRepo(db *gorm.DB) VenteRepository {
	return &venteRepo{db}
}

func (r *venteRepo) FindAll() ([]model.Vente, error) {
	var ventes []model.Vente
	err := r.db.Preload("Items").Preload("Client").Order("date DESC").Find(&ventes).Error
	return ventes, err
}

func (r *venteRepo) FindByID(id uuid.UUID) (*model.Vente, error) {
	var vente model.Vente
	err := r.db.Preload("Items").Preload("Client").First(&vente, "id = ?", id).Error
	return &vente, err
}

// MarkPrinted sets the printed flag and reports how many rows matched.
// Setting it on an already-printed vente is a no-op, not an error.
func (r *venteRepo) MarkPrinted(id uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Vente{}).Where("id = ?", id).Update("printed", true)
	return res.RowsAffected, res.Error
}
