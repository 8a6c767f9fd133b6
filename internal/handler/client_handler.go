package handler

import (
	"errors"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetAllClients()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"clients": clients})
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	client, err := h.service.GetClientByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
	}
	return c.JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateClient(&client, getUserUUID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateClient(id, &client)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"client": updated})
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := h.service.DeleteClient(id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Client deleted"})
}
