package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/strataops/awsr/internal/logger"
	"github.com/strataops/awsr/internal/provider"
	"github.com/strataops/awsr/internal/types"
	"github.com/strataops/awsr/internal/validation"
)

// S3 provides object-storage bucket operations
type S3 struct {
	region string
	client provider.BucketAPI
}

// NewS3Service creates a new S3 service with the given default region
func NewS3Service(region string) *S3 {
	return &S3{region: region}
}

// NewS3ServiceWithClient creates an S3 service backed by a custom client
func NewS3ServiceWithClient(client provider.BucketAPI, region string) *S3 {
	return &S3{region: region, client: client}
}

// CreateBucket creates an S3 bucket. The region argument overrides the
// service's configured region; when neither is set the bucket lands in the
// provider default region. Buckets outside us-east-1 need an explicit
// location constraint, buckets in us-east-1 must not carry one.
func (s *S3) CreateBucket(ctx context.Context, bucketName, region string) (*types.CreationResult, error) {
	targetRegion := region
	if targetRegion == "" {
		targetRegion = s.region
	}

	if err := validation.CheckRequired(
		map[string]any{"bucket_name": bucketName},
		[]string{"bucket_name"},
	); err != nil {
		return nil, err
	}

	client, err := s.bucketClient(ctx, targetRegion)
	if err != nil {
		return nil, err
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	}
	if targetRegion != "" && targetRegion != provider.DefaultRegion {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(targetRegion),
		}
	}

	out, err := client.CreateBucket(ctx, input)
	if err != nil {
		result := classifyBucketError(bucketName, err)
		logger.ErrorWithFields("bucket creation failed", map[string]interface{}{
			"bucket": bucketName,
			"region": targetRegion,
			"error":  result.Error,
		})
		return result, nil
	}

	resolvedRegion := targetRegion
	if resolvedRegion == "" {
		resolvedRegion = provider.DefaultRegion
	}

	logger.InfoWithFields("bucket created", map[string]interface{}{
		"bucket": bucketName,
		"region": resolvedRegion,
	})

	return &types.CreationResult{
		Success:    true,
		BucketName: bucketName,
		Region:     resolvedRegion,
		Location:   aws.ToString(out.Location),
		Message:    fmt.Sprintf("Successfully created S3 bucket '%s' in region '%s'", bucketName, resolvedRegion),
	}, nil
}

// CreateResource adapts CreateBucket to the ResourceCreator interface
func (s *S3) CreateResource(ctx context.Context, params map[string]any) (*types.CreationResult, error) {
	bucketName, _ := params["bucket_name"].(string)
	region, _ := params["region"].(string)
	return s.CreateBucket(ctx, bucketName, region)
}

func (s *S3) bucketClient(ctx context.Context, region string) (provider.BucketAPI, error) {
	if s.client != nil {
		return s.client, nil
	}
	return provider.NewBucketClient(ctx, region)
}

// classifyBucketError maps a provider error onto the fixed vocabulary of
// bucket creation failure tags. Unrecognized API codes pass through with the
// provider's own message; anything that is not an API error at all becomes
// UnexpectedError.
func classifyBucketError(bucketName string, err error) *types.CreationResult {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return types.Failure("UnexpectedError",
			fmt.Sprintf("Unexpected error creating bucket: %v", err))
	}

	switch code := apiErr.ErrorCode(); code {
	case "BucketAlreadyExists":
		return types.Failure(code,
			fmt.Sprintf("Bucket '%s' already exists and is owned by another account", bucketName))
	case "BucketAlreadyOwnedByYou":
		return types.Failure(code,
			fmt.Sprintf("Bucket '%s' already exists and is owned by you", bucketName))
	default:
		return types.Failure(code,
			fmt.Sprintf("Failed to create bucket: %s", apiErr.ErrorMessage()))
	}
}
