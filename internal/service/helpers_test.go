package service

import (
	"testing"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/ws"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.Client{}, &model.Vente{}, &model.VenteItem{}, &model.Retour{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func seedClient(t *testing.T, db *gorm.DB) *model.Client {
	t.Helper()
	client := &model.Client{Nom: "Diallo", Prenom: "Mamadou", Telephone: "770000000"}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:          name,
		PriceGros:     20,
		PriceDetail:   25,
		Stock:         stock,
		StockCritique: 2,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, p *model.Product) *model.Product {
	t.Helper()
	var out model.Product
	if err := db.First(&out, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return &out
}

func reloadClient(t *testing.T, db *gorm.DB, c *model.Client) *model.Client {
	t.Helper()
	var out model.Client
	if err := db.First(&out, "id = ?", c.ID).Error; err != nil {
		t.Fatalf("reload client: %v", err)
	}
	return &out
}
