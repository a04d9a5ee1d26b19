package middleware

import (
	"fmt"

	pkgError "github.com/AzielCF/az-medqa/pkg/error"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			err := recover()
			if err != nil {
				status := fiber.StatusInternalServerError
				message := fmt.Sprintf("%v", err)

				// Log the panic using logrus
				logrus.Errorf("Panic recovered in middleware: %v", err)

				if typed, ok := err.(pkgError.GenericError); ok {
					status = typed.StatusCode()
					message = typed.Error()
				}

				_ = ctx.Status(status).JSON(fiber.Map{"error": message})
			}
		}()

		return ctx.Next()
	}
}
