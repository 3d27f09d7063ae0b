// Package v1 registers the versioned API routes.
package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/strataops/awsr/internal/api/v1/handlers"
)

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, s3Handler *handlers.S3Handler, ec2Handler *handlers.EC2Handler) {
	// One endpoint per implemented resource kind
	router.Post("/s3", s3Handler.CreateBucket)
	router.Post("/ec2", ec2Handler.CreateInstances)
}

// Register registers the v1 routes
func Register(app *fiber.App, s3Handler *handlers.S3Handler, ec2Handler *handlers.EC2Handler) {
	v1Group := app.Group("/api/v1")
	SetupRoutes(v1Group, s3Handler, ec2Handler)
}
