package service

import (
	"time"

	"go-gestion-stock/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetVentesParJour(days int) ([]repository.VentesParJourData, error)
}

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.statsRepo.GetDashboardStats()
}

func (s *dashboardService) GetVentesParJour(days int) ([]repository.VentesParJourData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.statsRepo.GetVentesParJour(startDate, endDate)
}
