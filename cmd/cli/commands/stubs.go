package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strataops/awsr/internal/services"
)

var stubShortDescriptions = map[string]string{
	"dynamodb": "Manage DynamoDB tables (coming soon)",
	"rds":      "Manage RDS databases (coming soon)",
	"lambda":   "Manage Lambda functions (coming soon)",
	"sns":      "Manage SNS topics (coming soon)",
}

// GetStubCmds returns one command per not-yet-implemented resource kind so
// the help listing shows the full planned surface
func GetStubCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(services.StubKinds))
	for _, kind := range services.StubKinds {
		cmds = append(cmds, getStubCmd(kind))
	}
	return cmds
}

func getStubCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: stubShortDescriptions[kind],
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := services.NewStubService(kind)
			result, err := service.CreateResource(cmd.Context(), nil)
			if err != nil {
				return err
			}
			fmt.Printf("❌ %s\n", result.Message)
			os.Exit(1)
			return nil
		},
	}
}
