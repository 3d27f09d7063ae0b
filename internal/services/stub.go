package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/strataops/awsr/internal/types"
)

// Stub services for resource kinds that are planned but not yet implemented.
// They are kept reachable from the command surface so its help listing stays
// complete; invoking one returns a fixed failure without any provider call.

// StubKinds lists the resource kinds that currently only have a stub service
var StubKinds = []string{"dynamodb", "rds", "lambda", "sns"}

// Stub is a placeholder service for a not-yet-implemented resource kind
type Stub struct {
	kind string
}

// NewStubService creates a stub service for the given resource kind
func NewStubService(kind string) *Stub {
	return &Stub{kind: kind}
}

// CreateResource always returns a NotImplemented failure
func (s *Stub) CreateResource(_ context.Context, _ map[string]any) (*types.CreationResult, error) {
	return types.Failure("NotImplemented",
		fmt.Sprintf("%s service is not yet implemented. Currently supported services: s3, ec2", strings.ToUpper(s.kind))), nil
}
