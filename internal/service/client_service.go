package service

import (
	"fmt"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientService interface {
	CreateClient(req *model.Client, userID uuid.UUID) error
	UpdateClient(id uuid.UUID, req *model.Client) (*model.Client, error)
	DeleteClient(id uuid.UUID) error
	GetAllClients() ([]model.Client, error)
	GetClientByID(id uuid.UUID) (*model.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	db         *gorm.DB
}

func NewClientService(cRepo repository.ClientRepository, db *gorm.DB) ClientService {
	return &clientService{
		clientRepo: cRepo,
		db:         db,
	}
}

func (s *clientService) CreateClient(req *model.Client, userID uuid.UUID) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.UserID = userID
	return s.clientRepo.Create(req)
}

func (s *clientService) UpdateClient(id uuid.UUID, req *model.Client) (*model.Client, error) {
	existing, err := s.clientRepo.FindByID(id)
	if err != nil {
		return nil, ErrClientNotFound
	}

	existing.Nom = req.Nom
	existing.Prenom = req.Prenom
	existing.Adresse = req.Adresse
	existing.Telephone = req.Telephone
	existing.Credit = req.Credit

	if err := s.clientRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteClient removes the client and every row referencing it, in one
// transaction: the client's retours, the line items of its ventes, the
// ventes, and finally the client row itself.
func (s *clientService) DeleteClient(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client model.Client
		if err := tx.First(&client, "id = ?", id).Error; err != nil {
			return ErrClientNotFound
		}

		if err := tx.Delete(&model.Retour{}, "client_id = ?", id).Error; err != nil {
			return err
		}

		venteIDs := tx.Model(&model.Vente{}).Select("id").Where("client_id = ?", id)
		if err := tx.Delete(&model.VenteItem{}, "vente_id IN (?)", venteIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Vente{}, "client_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Client{}, "id = ?", id).Error
	})
}

func (s *clientService) GetAllClients() ([]model.Client, error) {
	return s.clientRepo.FindAll()
}

func (s *clientService) GetClientByID(id uuid.UUID) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}
