package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

var interval *time.Duration

func init() {
	interval = daemonCmd.Flags().Duration("interval", time.Hour, "Time between scrape cycles.")
	rootCmd.AddCommand(daemonCmd)
}

var daemonCmd = &cobra.Command{
	Use:   "daemon [--interval <duration>]",
	Short: "Re-runs the scrape cycle on a fixed interval until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := setupService()
		defer cleanup()

		ctx := cmd.Context()
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()

		// runs are strictly sequential, a slow run delays the next
		// tick instead of overlapping with it
		for {
			err := service.Run(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "run failed", "err", err)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	},
}
