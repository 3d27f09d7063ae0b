package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/strataops/awsr/internal/types"
)

// S3Handler handles HTTP requests for bucket operations
type S3Handler struct {
	service BucketCreator
}

// NewS3Handler creates a new S3 handler instance
func NewS3Handler(service BucketCreator) *S3Handler {
	return &S3Handler{service: service}
}

// CreateBucket handles the request to create an S3 bucket
func (h *S3Handler) CreateBucket(c *fiber.Ctx) error {
	var req types.CreateBucketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.Failure("InvalidRequest", err.Error()))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.Failure("ValidationError", err.Error()))
	}

	result, err := h.service.CreateBucket(c.Context(), req.BucketName, req.Region)
	if err != nil {
		return renderServiceError(c, err)
	}

	return c.JSON(result)
}
