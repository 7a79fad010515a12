package main

import (
	"context"
	"log/slog"
	"os"

	"careerwatch-backend/cmd/careerwatch/commands"
	"careerwatch-backend/lib/serviceutil"
	"careerwatch-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	t, err := telemetry.SetupFromEnv(ctx, "careerwatch")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
