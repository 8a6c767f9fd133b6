package handler

import (
	"errors"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type VenteHandler struct {
	service service.VenteService
}

func NewVenteHandler(s service.VenteService) *VenteHandler {
	return &VenteHandler{service: s}
}

func (h *VenteHandler) GetVentes(c *fiber.Ctx) error {
	ventes, err := h.service.GetAllVentes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	responses := make([]model.VenteResponse, len(ventes))
	for i := range ventes {
		responses[i] = ventes[i].ToResponse()
	}
	return c.JSON(fiber.Map{"ventes": responses})
}

func (h *VenteHandler) GetVente(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vente ID"})
	}

	vente, err := h.service.GetVenteByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Vente not found"})
	}
	return c.JSON(fiber.Map{"vente": vente.ToResponse()})
}

func (h *VenteHandler) CreateVente(c *fiber.Ctx) error {
	var req service.CreateVenteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	vente, err := h.service.CreateVente(&req, getUserUUID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, repository.ErrInsufficientStock):
			return c.Status(400).JSON(fiber.Map{"error": "Insufficient stock"})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"vente": vente.ToResponse()})
}

// MarkPrinted flags a vente as printed. Calling it twice is harmless.
// PATCH /api/ventes/:id/print
func (h *VenteHandler) MarkPrinted(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vente ID"})
	}

	if err := h.service.MarkPrinted(id); err != nil {
		if errors.Is(err, service.ErrVenteNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Vente not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Vente marked as printed"})
}

// Invoice renders the printable HTML invoice for a vente.
// GET /api/ventes/:id/invoice
func (h *VenteHandler) Invoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vente ID"})
	}

	vente, err := h.service.GetVenteByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Vente not found"})
	}

	return c.Render("invoice", fiber.Map{
		"Vente":      vente.ToResponse(),
		"ClientName": vente.ClientName(),
		"Date":       vente.Date.Format("02/01/2006 15:04"),
	})
}
