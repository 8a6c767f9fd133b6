package repository

import (
	"time"

	"go-gestion-stock/internal/model"

	"gorm.io/gorm"
)

type StatsRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetVentesParJour(startDate, endDate time.Time) ([]VentesParJourData, error)
}

// DashboardStats is the overview shown on the frontend landing screen.
type DashboardStats struct {
	TotalProducts   int64   `json:"totalProducts"`
	LowStockCount   int64   `json:"lowStockCount"`
	TotalClients    int64   `json:"totalClients"`
	TotalCredit     float64 `json:"totalCredit"`
	TotalVentes     int64   `json:"totalVentes"`
	ChiffreAffaires float64 `json:"chiffreAffaires"`
}

// VentesParJourData aggregates sales per day for chart data.
type VentesParJourData struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

func (r *statsRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Product{}).Count(&stats.TotalProducts)
	r.db.Model(&model.Product{}).Where("stock <= stock_critique").Count(&stats.LowStockCount)
	r.db.Model(&model.Client{}).Count(&stats.TotalClients)
	r.db.Model(&model.Client{}).Select("COALESCE(SUM(credit), 0)").Scan(&stats.TotalCredit)
	r.db.Model(&model.Vente{}).Count(&stats.TotalVentes)
	r.db.Model(&model.Vente{}).Select("COALESCE(SUM(total), 0)").Scan(&stats.ChiffreAffaires)

	return &stats, nil
}

func (r *statsRepo) GetVentesParJour(startDate, endDate time.Time) ([]VentesParJourData, error) {
	var results []VentesParJourData

	rows, err := r.db.Model(&model.Vente{}).
		Select("DATE(date) as jour, COUNT(*) as count, COALESCE(SUM(total), 0) as total").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(date)").
		Order("jour ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data VentesParJourData
		if err := rows.Scan(&data.Date, &data.Count, &data.Total); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
