// Package handlers provides HTTP request handlers for the API
package handlers

import (
	"context"
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/strataops/awsr/internal/provider"
	"github.com/strataops/awsr/internal/types"
)

// BucketCreator is the service capability the S3 handler depends on
type BucketCreator interface {
	CreateBucket(ctx context.Context, bucketName, region string) (*types.CreationResult, error)
}

// InstanceCreator is the service capability the EC2 handler depends on
type InstanceCreator interface {
	CreateInstances(ctx context.Context, imageID, instanceType, keyName string, count int, region string) (*types.CreationResult, error)
}

// renderServiceError maps errors propagated out of the service layer
// (validation and credential failures) onto HTTP responses. Provider-side
// creation failures never reach here; they arrive as CreationResult data and
// are rendered with status 200, the success field being the actual signal.
func renderServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, provider.ErrNoCredentials) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.Failure("CredentialsError", err.Error()))
	}
	return c.Status(fiber.StatusBadRequest).
		JSON(types.Failure("ValidationError", err.Error()))
}
