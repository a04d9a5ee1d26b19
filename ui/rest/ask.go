package rest

import (
	"errors"

	"github.com/AzielCF/az-medqa/core/config"
	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	pkgError "github.com/AzielCF/az-medqa/pkg/error"
	"github.com/gofiber/fiber/v2"
)

type Ask struct {
	Service domainAsk.IAskUsecase
}

func InitRestAsk(app fiber.Router, service domainAsk.IAskUsecase) Ask {
	handler := Ask{Service: service}

	app.Post("/ai", handler.Ask)
	app.Delete("/cache", handler.ClearCache)

	return handler
}

func (handler *Ask) Ask(c *fiber.Ctx) error {
	var request domainAsk.AskRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	response, err := handler.Service.Ask(c.UserContext(), request.Question)
	if err != nil {
		return writeAskError(c, err)
	}

	return c.JSON(response)
}

func (handler *Ask) ClearCache(c *fiber.Ctx) error {
	dropped := handler.Service.ClearCache(c.UserContext())
	return c.JSON(fiber.Map{"cleared": dropped})
}

// writeAskError maps the orchestrator's terminal outcomes onto the wire
// format. Raw provider errors never reach the caller; the failure-class
// details come through only when debug mode is on.
func writeAskError(c *fiber.Ctx, err error) error {
	var generic pkgError.GenericError
	if !errors.As(err, &generic) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	body := fiber.Map{"error": generic.Error()}
	if generic.ErrCode() == "QUOTA_EXCEEDED" {
		body["quota_exceeded"] = true
	}

	var detailed pkgError.DetailedError
	if errors.As(err, &detailed) && detailed.Details != "" {
		if config.Global != nil && config.Global.App.Debug {
			body["details"] = detailed.Details
		}
	}

	return c.Status(generic.StatusCode()).JSON(body)
}
