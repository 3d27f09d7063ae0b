// Package commands implements the awsr CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strataops/awsr/internal/types"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "awsr",
	Short: "AWS Resources CLI - A command line interface for creating AWS resources",
	Long: `AWS Resources CLI is a command line tool for creating AWS resources
such as S3 buckets and EC2 instances.

Examples:
  # Create an S3 bucket
  awsr s3 create-bucket --bucket-name my-bucket --region us-west-2

  # Create EC2 instances
  awsr ec2 create-instances --image-id ami-12345678 --instance-type t2.micro \
       --key-name my-key --count 2 --region us-east-1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(GetS3Cmd())
	rootCmd.AddCommand(GetEC2Cmd())

	// Placeholder services, listed in help but not yet implemented
	for _, cmd := range GetStubCmds() {
		rootCmd.AddCommand(cmd)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// printFailure renders a failed creation result and exits with status 1
func printFailure(title string, result *types.CreationResult) {
	fmt.Printf("❌ %s\n", title)
	fmt.Printf("   Error: %s\n", result.Error)
	fmt.Printf("   %s\n", result.Message)
	os.Exit(1)
}
