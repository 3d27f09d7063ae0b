package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"

	"github.com/strataops/awsr/internal/logger"
	"github.com/strataops/awsr/internal/provider"
	"github.com/strataops/awsr/internal/types"
	"github.com/strataops/awsr/internal/validation"
)

// EC2 provides compute instance operations
type EC2 struct {
	region string
	client provider.InstanceAPI
}

// NewEC2Service creates a new EC2 service with the given default region
func NewEC2Service(region string) *EC2 {
	return &EC2{region: region}
}

// NewEC2ServiceWithClient creates an EC2 service backed by a custom client
func NewEC2ServiceWithClient(client provider.InstanceAPI, region string) *EC2 {
	return &EC2{region: region, client: client}
}

// CreateInstances launches count instances in a single all-or-nothing request
// (MinCount == MaxCount == count): the provider either launches exactly count
// instances or fails the whole call. The region argument overrides the
// service's configured region; when neither is set the SDK's own region
// resolution applies.
func (s *EC2) CreateInstances(ctx context.Context, imageID, instanceType, keyName string, count int, region string) (*types.CreationResult, error) {
	targetRegion := region
	if targetRegion == "" {
		targetRegion = s.region
	}

	if err := validation.CheckRequired(
		map[string]any{
			"image_id":      imageID,
			"instance_type": instanceType,
			"key_name":      keyName,
		},
		[]string{"image_id", "instance_type", "key_name"},
	); err != nil {
		return nil, err
	}

	// Local invariant, checked after the required-parameter validation
	if count < 1 {
		return nil, ErrInvalidCount
	}

	client, err := s.instanceClient(ctx, targetRegion)
	if err != nil {
		return nil, err
	}

	out, err := client.RunInstances(ctx, &ec2.RunInstancesInput{
		ImageId:      aws.String(imageID),
		InstanceType: ec2types.InstanceType(instanceType),
		KeyName:      aws.String(keyName),
		MinCount:     aws.Int32(int32(count)),
		MaxCount:     aws.Int32(int32(count)),
	})
	if err != nil {
		result := classifyInstanceError(imageID, instanceType, keyName, targetRegion, err)
		logger.ErrorWithFields("instance launch failed", map[string]interface{}{
			"image_id": imageID,
			"region":   targetRegion,
			"error":    result.Error,
		})
		return result, nil
	}

	instanceIDs := make([]string, 0, len(out.Instances))
	for _, instance := range out.Instances {
		instanceIDs = append(instanceIDs, aws.ToString(instance.InstanceId))
	}

	logger.InfoWithFields("instances launched", map[string]interface{}{
		"count":  len(instanceIDs),
		"region": targetRegion,
	})

	return &types.CreationResult{
		Success:      true,
		InstanceIDs:  instanceIDs,
		Count:        len(instanceIDs),
		ImageID:      imageID,
		InstanceType: instanceType,
		KeyName:      keyName,
		Region:       targetRegion,
		Message:      fmt.Sprintf("Successfully launched %d EC2 instance(s) in region '%s'", len(instanceIDs), targetRegion),
	}, nil
}

// CreateResource adapts CreateInstances to the ResourceCreator interface
func (s *EC2) CreateResource(ctx context.Context, params map[string]any) (*types.CreationResult, error) {
	imageID, _ := params["image_id"].(string)
	instanceType, _ := params["instance_type"].(string)
	keyName, _ := params["key_name"].(string)
	region, _ := params["region"].(string)
	count, ok := params["count"].(int)
	if !ok {
		count = 1
	}
	return s.CreateInstances(ctx, imageID, instanceType, keyName, count, region)
}

func (s *EC2) instanceClient(ctx context.Context, region string) (provider.InstanceAPI, error) {
	if s.client != nil {
		return s.client, nil
	}
	return provider.NewInstanceClient(ctx, region)
}

// classifyInstanceError maps a provider error onto the fixed vocabulary of
// instance launch failure tags.
func classifyInstanceError(imageID, instanceType, keyName, region string, err error) *types.CreationResult {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return types.Failure("UnexpectedError",
			fmt.Sprintf("Unexpected error launching instances: %v", err))
	}

	switch code := apiErr.ErrorCode(); code {
	case "InvalidAMIID.NotFound":
		return types.Failure("InvalidAMIID",
			fmt.Sprintf("AMI '%s' not found in region '%s'", imageID, region))
	case "InvalidKeyPair.NotFound":
		return types.Failure("InvalidKeyPair",
			fmt.Sprintf("Key pair '%s' not found in region '%s'", keyName, region))
	case "InvalidInstanceType":
		return types.Failure(code,
			fmt.Sprintf("Instance type '%s' is not valid or not available in region '%s'", instanceType, region))
	case "InsufficientInstanceCapacity":
		return types.Failure("InsufficientCapacity",
			fmt.Sprintf("Insufficient capacity for instance type '%s' in region '%s'", instanceType, region))
	case "UnauthorizedOperation":
		return types.Failure(code,
			"You are not authorized to perform this operation. Check your AWS permissions.")
	default:
		return types.Failure(code,
			fmt.Sprintf("Failed to launch instances: %s", apiErr.ErrorMessage()))
	}
}
