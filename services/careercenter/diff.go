package careercenter

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func newDiffer() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	// the default deadline makes the span sequence depend on machine
	// load, which breaks "same inputs, same spans"
	dmp.DiffTimeout = 0
	return dmp
}

var dmp = newDiffer()

// DiffStrings computes the span sequence transforming old into new,
// with the semantic cleanup pass applied so small noisy edits collapse
// into larger human-readable chunks.
func DiffStrings(old, new string) []diffmatchpatch.Diff {
	return dmp.DiffCleanupSemantic(dmp.DiffMain(old, new, false))
}

// ChangeSignal counts the non-equal spans. Zero means the two inputs
// are textually identical.
func ChangeSignal(spans []diffmatchpatch.Diff) int {
	n := 0
	for _, s := range spans {
		if s.Type != diffmatchpatch.DiffEqual {
			n++
		}
	}
	return n
}

// U+0336, combining long stroke overlay
const strikethrough = "̶"

// RenderDiff flattens a span sequence into an annotated string: equal
// text passes through, deletions get a combining strikethrough per
// character and insertions are wrapped in markdown bold.
func RenderDiff(spans []diffmatchpatch.Diff) string {
	var out strings.Builder
	for _, s := range spans {
		switch s.Type {
		case diffmatchpatch.DiffEqual:
			out.WriteString(s.Text)
		case diffmatchpatch.DiffDelete:
			chars := strings.Split(s.Text, "")
			out.WriteString(strings.Join(chars, " "+strikethrough))
			out.WriteString(strikethrough)
		case diffmatchpatch.DiffInsert:
			out.WriteString("**")
			out.WriteString(s.Text)
			out.WriteString("**")
		}
	}
	return out.String()
}
