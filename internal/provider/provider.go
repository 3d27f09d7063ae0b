// Package provider holds the AWS SDK plumbing shared by the resource services:
// configuration loading, credential checks, and the narrow client interfaces
// the services depend on.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion is the provider's default region. Buckets created here must
// not carry a location constraint or the API rejects the call.
const DefaultRegion = "us-east-1"

// ErrNoCredentials is returned when the SDK credential chain (environment,
// shared config, instance role) resolves nothing usable.
var ErrNoCredentials = errors.New("no AWS credentials found; configure them via environment variables, shared config, or an instance role")

// BucketAPI is the subset of the S3 API used for bucket creation.
type BucketAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// InstanceAPI is the subset of the EC2 API used for instance launches.
type InstanceAPI interface {
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
}

// LoadConfig resolves the SDK configuration for the given region. Credentials
// are retrieved once so their absence surfaces as ErrNoCredentials instead of
// failing inside the first API call. An empty region defers to the SDK's own
// region resolution.
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awscfg.LoadOptions) error
	if region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}

	return cfg, nil
}

// NewBucketClient builds an S3 client scoped to one creation call.
func NewBucketClient(ctx context.Context, region string) (BucketAPI, error) {
	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// NewInstanceClient builds an EC2 client scoped to one creation call.
func NewInstanceClient(ctx context.Context, region string) (InstanceAPI, error) {
	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}
