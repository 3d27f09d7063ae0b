package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/strataops/awsr/internal/types"
)

// EC2Handler handles HTTP requests for instance operations
type EC2Handler struct {
	service InstanceCreator
}

// NewEC2Handler creates a new EC2 handler instance
func NewEC2Handler(service InstanceCreator) *EC2Handler {
	return &EC2Handler{service: service}
}

// CreateInstances handles the request to launch EC2 instances
func (h *EC2Handler) CreateInstances(c *fiber.Ctx) error {
	var req types.CreateInstancesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.Failure("InvalidRequest", err.Error()))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.Failure("ValidationError", err.Error()))
	}

	// Count is optional on the wire and defaults to a single instance
	if req.Count == 0 {
		req.Count = 1
	}

	result, err := h.service.CreateInstances(c.Context(),
		req.ImageID, req.InstanceType, req.KeyName, req.Count, req.Region)
	if err != nil {
		return renderServiceError(c, err)
	}

	return c.JSON(result)
}
