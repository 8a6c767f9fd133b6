package service

import (
	"errors"
	"testing"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newProductServiceForTest(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepo(db), db, testHub())
}

func TestDeleteProduct_CascadeLeavesNoReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductServiceForTest(db)
	retourSvc := newRetourServiceForTest(db)

	client := seedClient(t, db)
	product := seedProduct(t, db, "Bougie", 10)
	vente := seedVente(t, db, client, product, 2)

	if _, err := retourSvc.CreateRetour(&CreateRetourRequest{
		ClientID:    client.ID,
		VenteID:     vente.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
	}); err != nil {
		t.Fatalf("seed retour: %v", err)
	}

	if err := svc.DeleteProduct(product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	var retours, items, products int64
	db.Model(&model.Retour{}).Where("product_id = ?", product.ID).Count(&retours)
	db.Model(&model.VenteItem{}).Where("product_id = ?", product.ID).Count(&items)
	db.Model(&model.Product{}).Where("id = ?", product.ID).Count(&products)
	if retours != 0 || items != 0 || products != 0 {
		t.Errorf("cascade incomplete: %d retours, %d items, %d products", retours, items, products)
	}

	// The vente itself survives the product deletion.
	var ventes int64
	db.Model(&model.Vente{}).Where("id = ?", vente.ID).Count(&ventes)
	if ventes != 1 {
		t.Errorf("want vente to survive, got %d rows", ventes)
	}
}

func TestDeleteProduct_Unknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductServiceForTest(db)

	if err := svc.DeleteProduct(uuid.New()); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestProductCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductServiceForTest(db)

	product := &model.Product{Name: "Bidon 20L", PriceGros: 100, PriceDetail: 120, Stock: 5, StockCritique: 1}
	if err := svc.CreateProduct(product, uuid.New()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == uuid.Nil {
		t.Fatal("want generated id")
	}

	product.Stock = 12
	product.PriceDetail = 130
	updated, err := svc.UpdateProduct(product.ID, product)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stock != 12 || updated.PriceDetail != 130 {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateProduct(uuid.New(), product); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("want ErrProductNotFound, got %v", err)
	}

	all, err := svc.GetAllProducts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("want 1 product, got %d", len(all))
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductServiceForTest(db)

	if err := svc.CreateProduct(&model.Product{PriceGros: 10}, uuid.New()); err == nil {
		t.Fatal("want validation error for missing name")
	}
}

func TestProductLowStockFlag(t *testing.T) {
	p := model.Product{Stock: 2, StockCritique: 2}
	if !p.IsLowStock() {
		t.Error("stock at threshold must flag low")
	}
	p.Stock = 3
	if p.IsLowStock() {
		t.Error("stock above threshold must not flag low")
	}
}
