package careercenter

import (
	"context"
	"database/sql"
	"log/slog"

	"careerwatch-backend/services/careercenter/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// processRecord is the per-record state machine: unseen records are
// inserted and announced, stored records are diffed field by field and
// only announced (and rewritten) when at least one field changed.
func (s Service) processRecord(ctx context.Context, record CourseRecord) error {
	ctx, span := tracer.Start(ctx, "processRecord")
	defer span.End()
	span.SetAttributes(
		attribute.String("topic", record.Topic),
		attribute.Int64("table_index", record.TableIndex),
	)

	if !record.Valid() {
		span.AddEvent("skipped record without topic")
		return nil
	}

	stored, err := s.qry.GetCourse(ctx, db.GetCourseParams{
		Topic:      record.Topic,
		Tableindex: record.TableIndex,
	})
	if err == sql.ErrNoRows {
		return s.insertRecord(ctx, record)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to look up record")
		return err
	}

	return s.compareRecord(ctx, fromRow(stored), record)
}

func (s Service) insertRecord(ctx context.Context, record CourseRecord) error {
	ctx, span := tracer.Start(ctx, "insertRecord")
	defer span.End()

	err := s.qry.CreateCourse(ctx, db.CreateCourseParams{
		Topic:        record.Topic,
		Duration:     record.Duration,
		Recognition:  record.Recognition,
		Dates:        record.Dates,
		Time:         record.Time,
		Room:         record.Room,
		Registration: record.Registration,
		Tableindex:   record.TableIndex,
	})
	if err != nil {
		// the lookup-before-insert discipline makes a duplicate key
		// here a logic invariant violation, not a recoverable state
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert record")
		return err
	}

	s.notify(ctx, Message{Kind: MessageNewEntry, Record: record})
	return nil
}

func (s Service) compareRecord(ctx context.Context, stored, incoming CourseRecord) error {
	ctx, span := tracer.Start(ctx, "compareRecord")
	defer span.End()

	// the result starts as the stored record, fields with a nonzero
	// change signal are replaced by their rendered diff
	result := stored
	storedFields := stored.displayFields()
	incomingFields := incoming.displayFields()
	resultFields := result.displayFields()

	changed := false
	for i := range displayLabels {
		spans := DiffStrings(*storedFields[i], *incomingFields[i])
		if ChangeSignal(spans) == 0 {
			continue
		}
		changed = true
		*resultFields[i] = RenderDiff(spans)
		span.AddEvent("field changed", trace.WithAttributes(
			attribute.String("label", displayLabels[i]),
		))
	}
	if !changed {
		return nil
	}

	// persist the raw incoming values, the rendered diffs only go out
	// through the notifier
	err := s.qry.UpdateCourseFields(ctx, db.UpdateCourseFieldsParams{
		Duration:     incoming.Duration,
		Recognition:  incoming.Recognition,
		Dates:        incoming.Dates,
		Time:         incoming.Time,
		Room:         incoming.Room,
		Registration: incoming.Registration,
		Topic:        stored.Topic,
		Tableindex:   stored.TableIndex,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update record")
		return err
	}

	s.notify(ctx, Message{Kind: MessageChangedEntry, Record: result})
	return nil
}

// notify delivers best effort: the record is already durably stored, a
// delivery failure is logged and swallowed.
func (s Service) notify(ctx context.Context, msg Message) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, msg)
	if err != nil {
		slog.WarnContext(ctx, "notification delivery failed",
			"kind", string(msg.Kind),
			"topic", msg.Record.Topic,
			"err", err,
		)
	}
}
