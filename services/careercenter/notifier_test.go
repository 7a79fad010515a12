package careercenter

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	record := CourseRecord{
		Topic:        "Rhetorik",
		Duration:     "10",
		Recognition:  "BV",
		Dates:        "Mo. 12.04.",
		Time:         "14:00",
		Room:         "123",
		Registration: "per Mail",
		TableIndex:   4,
	}
	expected := "Thema: Rhetorik\n" +
		"UE: 10\n" +
		"Fakultät: BV\n" +
		"Termin(e): Mo. 12.04.\n" +
		"Uhrzeit: 14:00\n" +
		"Raum: 123\n" +
		"Anmeldung: per Mail\n"
	require.Equal(t, expected, FormatMessage(record))
}

func TestFormatMessageEmptyFields(t *testing.T) {
	msg := FormatMessage(CourseRecord{Topic: "X"})
	require.Contains(t, msg, "Thema: X\n")
	require.Contains(t, msg, "UE: \n")
}

func TestConsoleNotifier(t *testing.T) {
	var out bytes.Buffer
	notifier := ConsoleNotifier{Out: &out}

	err := notifier.Notify(context.Background(), Message{
		Kind:   MessageNewEntry,
		Record: CourseRecord{Topic: "Rhetorik", Duration: "10"},
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "new entry")
	require.Contains(t, out.String(), "Rhetorik")
}

type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, msg Message) error {
	return fmt.Errorf("transport down")
}

func TestMultiNotifier(t *testing.T) {
	capture := &captureNotifier{}
	multi := MultiNotifier{failingNotifier{}, capture}

	err := multi.Notify(context.Background(), Message{Kind: MessageNewEntry})
	require.Error(t, err)
	// a failing transport never blocks the others
	require.Len(t, capture.messages, 1)
}
