package careercenter

import (
	"context"
	"database/sql"
	"log/slog"

	"careerwatch-backend/services/careercenter/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/careercenter")

// Service runs the scrape-diff-notify cycle against one database and
// one notification transport. It is synchronous and batch oriented,
// every write commits immediately.
type Service struct {
	db       *sql.DB
	qry      *db.Queries
	source   *SourceClient
	notifier Notifier
}

func NewService(database *sql.DB, source *SourceClient, notifier Notifier) Service {
	return Service{
		db:       database,
		qry:      db.New(database),
		source:   source,
		notifier: notifier,
	}
}

// Run executes one full cycle: fetch the page, then process every table
// and every record sequentially. A fetch failure aborts the run before
// anything is written.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	tables, err := s.source.FetchTables(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch source tables")
		return err
	}

	processed := 0
	for idx, t := range tables {
		records := NormalizeTable(t, int64(idx))
		for _, record := range records {
			err := s.processRecord(ctx, record)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to process record")
				return err
			}
		}
		processed += len(records)
	}

	slog.InfoContext(ctx, "run complete", "tables", len(tables), "records", processed)
	return nil
}
