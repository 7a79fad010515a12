package careercenter

import (
	"strings"

	"careerwatch-backend/lib/htmlutil"
	"careerwatch-backend/services/careercenter/db"
)

// CourseRecord is one course offering as it appears on the career center
// page, keyed by (Topic, TableIndex). TableIndex is the ordinal position
// of the source table on the page, it disambiguates topics repeated
// across sections. Empty string is a valid field value.
type CourseRecord struct {
	Topic        string
	Duration     string
	Recognition  string
	Dates        string
	Time         string
	Room         string
	Registration string
	TableIndex   int64
}

// labels used on the source page, kept in display order
var displayLabels = [7]string{"Thema", "UE", "Fakultät", "Termin(e)", "Uhrzeit", "Raum", "Anmeldung"}

// displayFields returns the seven displayed fields in the same order as
// displayLabels. Topic comes first but is immutable once stored.
func (r *CourseRecord) displayFields() [7]*string {
	return [7]*string{
		&r.Topic,
		&r.Duration,
		&r.Recognition,
		&r.Dates,
		&r.Time,
		&r.Room,
		&r.Registration,
	}
}

// Valid reports whether the record survived normalization with a usable
// primary key. Blank and separator rows normalize to an empty topic.
func (r CourseRecord) Valid() bool {
	return strings.TrimSpace(r.Topic) != ""
}

func fromRow(row db.Careercenter) CourseRecord {
	return CourseRecord{
		Topic:        row.Topic,
		Duration:     row.Duration,
		Recognition:  row.Recognition,
		Dates:        row.Dates,
		Time:         row.Time,
		Room:         row.Room,
		Registration: row.Registration,
		TableIndex:   row.Tableindex,
	}
}

// Cell is a single (column header, value) pair of a raw source row.
// Rows keep their cells ordered so accidental duplicate headers stay
// addressable and matching stays deterministic.
type Cell struct {
	Header string
	Value  string
}

type RawRow []Cell

func (row RawRow) Empty() bool {
	for _, cell := range row {
		if cell.Value != "" {
			return false
		}
	}
	return true
}

// the source page renames its column headers from time to time
// ("Thema" vs "Thema (UE)" etc.), so each canonical field is matched by
// an ordered token list instead of exact header names. The first token
// that matches any cell header wins.
var fieldTokens = []struct {
	tokens []string
	index  int // into displayFields
}{
	{[]string{"Thema", "Topic"}, 0},
	{[]string{"(UE)", "Umfang", "Duration"}, 1},
	{[]string{"Anerkennung", "Recognition"}, 2},
	{[]string{"Termin", "Dates"}, 3},
	{[]string{"Uhrzeit", "Time"}, 4},
	{[]string{"Raum", "Room"}, 5},
	{[]string{"Anmeldung", "Registration"}, 6},
}

func matchCell(row RawRow, tokens []string) string {
	for _, token := range tokens {
		for _, cell := range row {
			if strings.Contains(cell.Header, token) {
				return cell.Value
			}
		}
	}
	return ""
}

// NormalizeRow maps a loosely-keyed source row onto the canonical field
// schema. Fields with no matching column default to empty string.
func NormalizeRow(row RawRow, tableIndex int64) CourseRecord {
	record := CourseRecord{TableIndex: tableIndex}
	fields := record.displayFields()
	for _, m := range fieldTokens {
		*fields[m.index] = matchCell(row, m.tokens)
	}
	return record
}

// MergeRecords merges records sharing a Topic into one record per topic,
// concatenating the non-key fields with ", ". Input order is preserved
// by first sighting of each topic.
func MergeRecords(records []CourseRecord) []CourseRecord {
	var order []string
	groups := map[string][]CourseRecord{}
	for _, r := range records {
		if _, ok := groups[r.Topic]; !ok {
			order = append(order, r.Topic)
		}
		groups[r.Topic] = append(groups[r.Topic], r)
	}

	var merged []CourseRecord
	for _, topic := range order {
		group := groups[topic]
		out := group[0]
		fields := out.displayFields()
		for _, other := range group[1:] {
			otherFields := other.displayFields()
			// index 0 is the topic itself
			for i := 1; i < len(fields); i++ {
				*fields[i] += ", " + *otherFields[i]
			}
		}
		merged = append(merged, out)
	}
	return merged
}

// NormalizeTable turns one extracted source table into storable records:
// all-empty rows are dropped, the rest are normalized, grouped by topic
// and stripped of records without a usable key.
func NormalizeTable(table htmlutil.Table, tableIndex int64) []CourseRecord {
	var records []CourseRecord
	for _, cells := range table.Rows {
		row := make(RawRow, 0, len(cells))
		for i, value := range cells {
			header := ""
			if i < len(table.Headers) {
				header = table.Headers[i]
			}
			row = append(row, Cell{Header: header, Value: value})
		}
		if row.Empty() {
			continue
		}
		records = append(records, NormalizeRow(row, tableIndex))
	}

	var valid []CourseRecord
	for _, r := range MergeRecords(records) {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}
