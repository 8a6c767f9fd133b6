package service

import (
	"testing"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"

	"github.com/google/uuid"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewStatsRepo(db))

	client := seedClient(t, db)
	seedProduct(t, db, "Plein", 10)       // above threshold
	low := seedProduct(t, db, "Juste", 3) // threshold 2, will drop to 2

	venteSvc := newVenteServiceForTest(db)
	if _, err := venteSvc.CreateVente(&CreateVenteRequest{
		ClientID:    client.ID,
		Total:       25,
		MontantPaye: 10,
		Items: []CreateVenteItemInput{
			{ProductID: low.ID, Quantity: 1, Price: 25, ModeVente: model.ModeDetail},
		},
	}, uuid.New()); err != nil {
		t.Fatalf("seed vente: %v", err)
	}

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalProducts != 2 {
		t.Errorf("want 2 products, got %d", stats.TotalProducts)
	}
	if stats.LowStockCount != 1 {
		t.Errorf("want 1 low-stock product, got %d", stats.LowStockCount)
	}
	if stats.TotalClients != 1 {
		t.Errorf("want 1 client, got %d", stats.TotalClients)
	}
	if stats.TotalCredit != 15 {
		t.Errorf("want credit 15, got %v", stats.TotalCredit)
	}
	if stats.TotalVentes != 1 {
		t.Errorf("want 1 vente, got %d", stats.TotalVentes)
	}
	if stats.ChiffreAffaires != 25 {
		t.Errorf("want turnover 25, got %v", stats.ChiffreAffaires)
	}
}

func TestVentesParJourAggregation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewStatsRepo(db))

	client := seedClient(t, db)
	product := seedProduct(t, db, "Sucre", 20)
	seedVente(t, db, client, product, 1)
	seedVente(t, db, client, product, 2)

	data, err := svc.GetVentesParJour(7)
	if err != nil {
		t.Fatalf("ventes par jour: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("want 1 day bucket, got %d", len(data))
	}
	if data[0].Count != 2 || data[0].Total != 75 {
		t.Errorf("want count 2 / total 75, got %+v", data[0])
	}
}
