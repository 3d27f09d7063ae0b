// Package app assembles the API server application.
package app

import (
	"github.com/gofiber/fiber/v2"

	"github.com/strataops/awsr/internal/api/middleware"
	"github.com/strataops/awsr/internal/api/v1/handlers"
	v1 "github.com/strataops/awsr/internal/api/v1/routes"
)

// New builds the fiber application with all routes and middleware registered
func New(s3Handler *handlers.S3Handler, ec2Handler *handlers.EC2Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Register versioned routes
	v1.Register(app, s3Handler, ec2Handler)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
