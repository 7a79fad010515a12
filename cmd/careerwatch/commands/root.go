package commands

import (
	"context"
	"fmt"
	"os"

	"careerwatch-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerwatch",
	Short: "careerwatch scrapes the career center course listing and reports changes.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := setupService()
		defer cleanup()

		err := service.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("run failed", err)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
