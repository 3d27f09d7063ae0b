// Command awsr is the command-line interface for AWS resource creation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/strataops/awsr/cmd/cli/commands"
	"github.com/strataops/awsr/internal/logger"
)

func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()
	logger.Initialize()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
