package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gestion-stock/internal/middleware"
	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/internal/service"
	"go-gestion-stock/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires a Fiber app over an in-memory store, mirroring cmd/api.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
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

	hub := ws.NewHub()
	go hub.Run()

	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo, db, hub)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService)

	// Seed commercial and vendeur accounts
	for _, u := range []struct{ username, role string }{
		{"admin", model.RoleCommercial},
		{"vendeur1", model.RoleVendeur},
	} {
		user := &model.User{Username: u.username, Role: u.role}
		if err := user.SetPassword("admin123"); err != nil {
			t.Fatalf("hash: %v", err)
		}
		if err := userRepo.Create(user); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "API de Gestion de Stock"})
	})

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", middleware.RequireAuth(), middleware.RequireRole(model.RoleCommercial), authHandler.Register)
	auth.Get("/users", middleware.RequireAuth(), middleware.RequireRole(model.RoleCommercial), authHandler.GetUsers)

	protected := api.Group("", middleware.RequireAuth())
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)

	return app
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": "admin123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("login status: %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("login body: %v", err)
	}
	return out.Token
}

func TestHealthUnauthenticated(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := setupApp(t)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if resp.StatusCode != 401 {
		t.Errorf("missing token: want 401, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, _ = app.Test(req)
	if resp.StatusCode != 403 {
		t.Errorf("invalid token: want 403, got %d", resp.StatusCode)
	}
}

func TestLoginAndCreateProduct(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "admin")

	body := []byte(`{"name":"Sucre 1kg","priceGros":20,"priceDetail":25,"stock":10,"stockCritique":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if resp.StatusCode != 201 {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("want 201, got %d: %s", resp.StatusCode, raw)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req)
	if resp.StatusCode != 200 {
		t.Fatalf("list products: %d", resp.StatusCode)
	}
	var out struct {
		Products []model.Product `json:"products"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(out.Products) != 1 || out.Products[0].Name != "Sucre 1kg" {
		t.Errorf("unexpected products: %+v", out.Products)
	}
}

func TestRegisterGatedToCommercial(t *testing.T) {
	app := setupApp(t)

	payload := []byte(`{"username":"nouveau","password":"pw123456","role":"vendeur"}`)

	// vendeur may not create accounts
	vendeurToken := login(t, app, "vendeur1")
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+vendeurToken)
	resp, _ := app.Test(req)
	if resp.StatusCode != 403 {
		t.Errorf("vendeur register: want 403, got %d", resp.StatusCode)
	}

	// commercial may
	adminToken := login(t, app, "admin")
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, _ = app.Test(req)
	if resp.StatusCode != 201 {
		raw, _ := io.ReadAll(resp.Body)
		t.Errorf("commercial register: want 201, got %d: %s", resp.StatusCode, raw)
	}

	// user listing is commercial-only as well
	req = httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	req.Header.Set("Authorization", "Bearer "+vendeurToken)
	resp, _ = app.Test(req)
	if resp.StatusCode != 403 {
		t.Errorf("vendeur list users: want 403, got %d", resp.StatusCode)
	}
}
