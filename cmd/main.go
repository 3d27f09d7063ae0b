// Command awsr-server runs the HTTP API for AWS resource creation.
package main

import (
	"github.com/joho/godotenv"

	"github.com/strataops/awsr/config"
	"github.com/strataops/awsr/internal/api/v1/handlers"
	"github.com/strataops/awsr/internal/app"
	"github.com/strataops/awsr/internal/logger"
	"github.com/strataops/awsr/internal/services"
)

func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()
	logger.Initialize()

	region := config.GetEnv("AWS_DEFAULT_REGION", "")

	server := app.New(
		handlers.NewS3Handler(services.NewS3Service(region)),
		handlers.NewEC2Handler(services.NewEC2Service(region)),
	)

	port := config.GetEnv("AWSR_SERVER_PORT", "8080")
	logger.Infof("Starting API server on port %s", port)
	logger.Fatal(server.Listen(":" + port))
}
