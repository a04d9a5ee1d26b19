package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AzielCF/az-medqa/core/config"
	"github.com/AzielCF/az-medqa/ui/rest"
	"github.com/AzielCF/az-medqa/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the Q&A gateway over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	app := fiber.New(fiber.Config{
		Network:               "tcp",
		AppName:               "Az-MedQA Gateway",
		DisableStartupMessage: false,
		ServerHeader:          "Hidden",
	})

	// RequestID for audit trails
	app.Use(requestid.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(config.Global.App.CorsAllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.Recovery())

	// Hardened headers
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if config.Global.App.Debug {
		app.Use(logger.New())
	}

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	rest.InitRestAsk(app, askUsecase)
	rest.InitRestHealth(app, healthUsecase)

	app.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})

	if err := app.Listen(":" + config.Global.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
