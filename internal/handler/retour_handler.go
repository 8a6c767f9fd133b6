package handler

import (
	"errors"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RetourHandler struct {
	service service.RetourService
}

func NewRetourHandler(s service.RetourService) *RetourHandler {
	return &RetourHandler{service: s}
}

func (h *RetourHandler) GetRetours(c *fiber.Ctx) error {
	retours, err := h.service.GetAllRetours()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	responses := make([]model.RetourResponse, len(retours))
	for i := range retours {
		responses[i] = retours[i].ToResponse()
	}
	return c.JSON(fiber.Map{"retours": responses})
}

func (h *RetourHandler) GetRetour(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid retour ID"})
	}

	retour, err := h.service.GetRetourByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Retour not found"})
	}
	return c.JSON(fiber.Map{"retour": retour.ToResponse()})
}

func (h *RetourHandler) CreateRetour(c *fiber.Ctx) error {
	var req service.CreateRetourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	retour, err := h.service.CreateRetour(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
		case errors.Is(err, service.ErrVenteNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Vente not found"})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"retour": retour.ToResponse()})
}

func (h *RetourHandler) DeleteRetour(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid retour ID"})
	}

	if err := h.service.DeleteRetour(id); err != nil {
		if errors.Is(err, service.ErrRetourNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Retour not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Retour deleted"})
}
