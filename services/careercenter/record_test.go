package careercenter

import (
	"testing"

	"careerwatch-backend/lib/htmlutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRowDefaults(t *testing.T) {
	row := RawRow{
		{Header: "Unrelated", Value: "a"},
		{Header: "Columns", Value: "b"},
	}
	record := NormalizeRow(row, 3)
	require.Equal(t, CourseRecord{TableIndex: 3}, record)
	require.False(t, record.Valid())
}

func TestNormalizeRow(t *testing.T) {
	row := RawRow{
		{Header: "Thema", Value: "Data Science Basics"},
		{Header: "Zeitlicher Umfang (UE)", Value: "20"},
		{Header: "Anerkennung", Value: "Fakultät I"},
		{Header: "Termine", Value: "Mo. 12.04."},
		{Header: "Uhrzeit", Value: "14:00"},
		{Header: "Raum", Value: "123"},
		{Header: "Anmeldung", Value: "per Mail"},
	}
	record := NormalizeRow(row, 0)
	expected := CourseRecord{
		Topic:        "Data Science Basics",
		Duration:     "20",
		Recognition:  "Fakultät I",
		Dates:        "Mo. 12.04.",
		Time:         "14:00",
		Room:         "123",
		Registration: "per Mail",
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}
	require.True(t, record.Valid())
}

func TestNormalizeRowDuplicateHeaders(t *testing.T) {
	// when a header accidentally appears twice the first column wins
	row := RawRow{
		{Header: "Termine", Value: "first"},
		{Header: "Termine", Value: "second"},
	}
	record := NormalizeRow(row, 0)
	require.Equal(t, "first", record.Dates)
}

func TestNormalizeRowSharedColumn(t *testing.T) {
	// a combined header like "Thema (UE)" feeds both Topic and Duration
	row := RawRow{
		{Header: "Thema (UE)", Value: "Rhetorik"},
	}
	record := NormalizeRow(row, 0)
	require.Equal(t, "Rhetorik", record.Topic)
	require.Equal(t, "Rhetorik", record.Duration)
}

func TestMergeRecords(t *testing.T) {
	records := []CourseRecord{
		{Topic: "A", Duration: "10", Dates: "Mo."},
		{Topic: "B", Duration: "5"},
		{Topic: "A", Duration: "12", Dates: "Di."},
	}
	merged := MergeRecords(records)
	expected := []CourseRecord{
		{Topic: "A", Duration: "10, 12", Recognition: ", ", Dates: "Mo., Di.", Time: ", ", Room: ", ", Registration: ", "},
		{Topic: "B", Duration: "5"},
	}
	if diff := cmp.Diff(expected, merged); diff != "" {
		t.Fatal(diff)
	}
}

func TestNormalizeTable(t *testing.T) {
	table := htmlutil.Table{
		Headers: []string{"Thema", "Zeitlicher Umfang (UE)", "Anerkennung", "Termine", "Uhrzeit", "Raum", "Anmeldung"},
		Rows: [][]string{
			{"Rhetorik", "10", "BV", "Mo. 12.04.", "14:00", "123", "per Mail"},
			{"", "", "", "", "", "", ""},
			{"Rhetorik", "10", "BV", "Di. 13.04.", "14:00", "123", "per Mail"},
			{"", "8", "", "Fr. 16.04.", "", "", ""},
		},
	}
	records := NormalizeTable(table, 1)

	// the empty row is skipped, the two Rhetorik rows merge into one
	// and the row without a topic is dropped after normalization
	expected := []CourseRecord{
		{
			Topic:        "Rhetorik",
			Duration:     "10, 10",
			Recognition:  "BV, BV",
			Dates:        "Mo. 12.04., Di. 13.04.",
			Time:         "14:00, 14:00",
			Room:         "123, 123",
			Registration: "per Mail, per Mail",
			TableIndex:   1,
		},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatal(diff)
	}
}
