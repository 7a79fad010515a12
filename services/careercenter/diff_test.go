package careercenter

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

func TestDiffIdempotence(t *testing.T) {
	inputs := []string{
		"",
		"10",
		"Data Science Basics",
		"Mo. 12.04., Di. 13.04.",
		"Raum 123 ",
	}
	for _, s := range inputs {
		spans := DiffStrings(s, s)
		require.Equal(t, 0, ChangeSignal(spans), "input: %q", s)
		require.Equal(t, s, RenderDiff(spans), "input: %q", s)
	}
}

func TestChangeSignal(t *testing.T) {
	testCases := []struct {
		old     string
		new     string
		changed bool
	}{
		{"", "", false},
		{"abc", "abc", false},
		{"", "abc", true},
		{"abc", "", true},
		{"10", "12", true},
		{"Raum 123", "Raum 125", true},
	}
	for _, tc := range testCases {
		signal := ChangeSignal(DiffStrings(tc.old, tc.new))
		require.Equal(t, tc.changed, signal > 0, "%q -> %q", tc.old, tc.new)
	}
}

func TestDiffRoundTrip(t *testing.T) {
	testCases := []struct {
		old string
		new string
	}{
		{"", "new course"},
		{"old course", ""},
		{"10", "12"},
		{"Mo. 12.04.", "Mo. 12.04., Di. 13.04."},
		{"completely different", "something else entirely"},
	}
	for _, tc := range testCases {
		spans := DiffStrings(tc.old, tc.new)

		var oldSide, newSide strings.Builder
		for _, s := range spans {
			if s.Type != diffmatchpatch.DiffInsert {
				oldSide.WriteString(s.Text)
			}
			if s.Type != diffmatchpatch.DiffDelete {
				newSide.WriteString(s.Text)
			}
		}
		require.Equal(t, tc.old, oldSide.String())
		require.Equal(t, tc.new, newSide.String())
	}
}

func TestRenderDiff(t *testing.T) {
	testCases := []struct {
		old      string
		new      string
		expected string
	}{
		{"10", "12", "10̶**2**"},
		{"abc", "", "a ̶b ̶c̶"},
		{"", "abc", "**abc**"},
		{"same", "same", "same"},
	}
	for _, tc := range testCases {
		rendered := RenderDiff(DiffStrings(tc.old, tc.new))
		require.Equal(t, tc.expected, rendered, "%q -> %q", tc.old, tc.new)
	}
}

func TestDiffDeterminism(t *testing.T) {
	old := "Do. 22.04.2021, Fr. 23.04.2021"
	new := "Do. 29.04.2021, Fr. 30.04.2021"

	first := DiffStrings(old, new)
	for i := 0; i < 16; i++ {
		require.Equal(t, first, DiffStrings(old, new))
	}
}
