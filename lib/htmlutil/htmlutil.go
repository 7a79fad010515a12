package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText collapses a cell's text into a single trimmed line.
// Whitespace runs collapse before the non-printable pass so newlines
// inside a cell become separators instead of vanishing.
func CleanText(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = removeNonPrintable(s)
	return strings.Trim(s, " ")
}

// Table is one <table> element flattened into header and body cells.
// The first row of a table (thead or not) is treated as its header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

func ExtractTables(doc *goquery.Document) []Table {
	var tables []Table
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var t Table
		table.Find("tr").Each(func(i int, tr *goquery.Selection) {
			var cells []string
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				var text strings.Builder
				for _, node := range cell.Nodes {
					text.WriteString(GetText(node))
				}
				cells = append(cells, CleanText(text.String()))
			})
			if i == 0 {
				t.Headers = cells
				return
			}
			t.Rows = append(t.Rows, cells)
		})
		tables = append(tables, t)
	})
	return tables
}
