package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataops/awsr/internal/services"
)

// flag names for the ec2 commands
const (
	flagImageID      = "image-id"
	flagInstanceType = "instance-type"
	flagKeyName      = "key-name"
	flagCount        = "count"
)

// GetEC2Cmd returns the ec2 command group
func GetEC2Cmd() *cobra.Command {
	ec2Cmd := &cobra.Command{
		Use:   "ec2",
		Short: "Manage EC2 instances",
	}
	ec2Cmd.AddCommand(getCreateInstancesCmd())
	return ec2Cmd
}

func getCreateInstancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-instances",
		Short: "Launch new EC2 instances",
		Long:  "Launch new EC2 instances with the specified configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			imageID, _ := cmd.Flags().GetString(flagImageID)
			instanceType, _ := cmd.Flags().GetString(flagInstanceType)
			keyName, _ := cmd.Flags().GetString(flagKeyName)
			count, _ := cmd.Flags().GetInt(flagCount)
			region, _ := cmd.Flags().GetString(flagRegion)

			service := services.NewEC2Service(region)
			result, err := service.CreateInstances(cmd.Context(),
				imageID, instanceType, keyName, count, region)
			if err != nil {
				return err
			}

			if !result.Success {
				printFailure("Failed to create EC2 instances", result)
			}

			fmt.Printf("✅ EC2 instances created successfully\n")
			fmt.Printf("   Image ID: %s\n", result.ImageID)
			fmt.Printf("   Instance type: %s\n", result.InstanceType)
			fmt.Printf("   Key pair: %s\n", result.KeyName)
			fmt.Printf("   Region: %s\n", result.Region)
			for _, instanceID := range result.InstanceIDs {
				fmt.Printf("   Instance: %s\n", instanceID)
			}
			return nil
		},
	}

	cmd.Flags().String(flagImageID, "", "AMI ID to launch the instance from (e.g., ami-12345678)")
	cmd.Flags().String(flagInstanceType, "", "EC2 instance type (e.g., t2.micro, t3.small, m5.large)")
	cmd.Flags().String(flagKeyName, "", "Name of the EC2 Key Pair for SSH access")
	cmd.Flags().Int(flagCount, 1, "Number of instances to launch")
	cmd.Flags().String(flagRegion, "", "AWS region where instances will be launched (e.g., us-east-1, us-west-2)")
	_ = cmd.MarkFlagRequired(flagImageID)
	_ = cmd.MarkFlagRequired(flagInstanceType)
	_ = cmd.MarkFlagRequired(flagKeyName)
	_ = cmd.MarkFlagRequired(flagRegion)

	return cmd
}
