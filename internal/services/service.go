// Package services provides the business logic for resource creation. Each
// service validates its parameters, issues one synchronous call against the
// provider API, and returns a normalized CreationResult. Provider-side
// failures are classified and returned as data; only validation and
// credential failures propagate as errors.
package services

import (
	"context"
	"errors"

	"github.com/strataops/awsr/internal/types"
)

// ErrInvalidCount is returned when an instance launch is requested with a
// count below one. Checked locally, before any provider call.
var ErrInvalidCount = errors.New("Count must be at least 1")

// ResourceCreator is implemented by every resource service, including the
// not-yet-implemented stubs, so the surfaces can treat all resource kinds
// uniformly.
type ResourceCreator interface {
	CreateResource(ctx context.Context, params map[string]any) (*types.CreationResult, error)
}
