package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataops/awsr/internal/services"
)

// flag names for the s3 commands
const (
	flagBucketName = "bucket-name"
	flagRegion     = "region"
)

// GetS3Cmd returns the s3 command group
func GetS3Cmd() *cobra.Command {
	s3Cmd := &cobra.Command{
		Use:   "s3",
		Short: "Manage S3 buckets",
	}
	s3Cmd.AddCommand(getCreateBucketCmd())
	return s3Cmd
}

func getCreateBucketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-bucket",
		Short: "Create a new S3 bucket",
		Long:  "Create a new S3 bucket in the specified region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bucketName, _ := cmd.Flags().GetString(flagBucketName)
			region, _ := cmd.Flags().GetString(flagRegion)

			service := services.NewS3Service(region)
			result, err := service.CreateBucket(cmd.Context(), bucketName, region)
			if err != nil {
				return err
			}

			if !result.Success {
				printFailure("Failed to create S3 bucket", result)
			}

			fmt.Printf("✅ S3 bucket created successfully\n")
			fmt.Printf("   Bucket: %s\n", result.BucketName)
			fmt.Printf("   Region: %s\n", result.Region)
			if result.Location != "" {
				fmt.Printf("   Location: %s\n", result.Location)
			}
			return nil
		},
	}

	cmd.Flags().String(flagBucketName, "", "Name of the S3 bucket to create (must be globally unique)")
	cmd.Flags().String(flagRegion, "", "AWS region where the bucket will be created (e.g., us-east-1, us-west-2)")
	_ = cmd.MarkFlagRequired(flagBucketName)
	_ = cmd.MarkFlagRequired(flagRegion)

	return cmd
}
