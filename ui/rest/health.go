package rest

import (
	domainHealth "github.com/AzielCF/az-medqa/domains/health"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service domainHealth.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service domainHealth.IHealthUsecase) Health {
	handler := Health{Service: service}

	app.Get("/health", handler.GetStatus)

	return handler
}

func (h *Health) GetStatus(c *fiber.Ctx) error {
	status, err := h.Service.GetStatus(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}
