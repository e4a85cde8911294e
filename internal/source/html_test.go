package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTMLNoTable(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<p>nothing here</p>"))
	assert.EqualError(t, err, "no <table> element")
}

func TestParseHTMLNoRows(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<table></table>"))
	assert.EqualError(t, err, "table has no rows")
}

func TestParseHTMLNeedsHeaderRow(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<table><tr><td>a</td></tr></table>"))
	assert.EqualError(t, err, "first table row must consist of <th> cells")
}

func TestParseHTMLRowLength(t *testing.T) {
	_, err := ParseHTML(strings.NewReader(
		"<table><tr><th>a</th><th>b</th></tr><tr><td>1</td></tr></table>",
	))
	assert.EqualError(t, err, "row 1: has 1 cells, want 2")
}

func TestParseHTMLSkipsNestedTables(t *testing.T) {
	tbl, err := ParseHTML(strings.NewReader(
		"<table><tr><th>Key</th></tr>" +
			"<tr><td>outer<table><tr><td>inner</td></tr></table></td></tr>" +
			"</table>",
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"Key"}, tbl.Headers())
	assert.Equal(t, [][]string{{"outer inner"}}, tbl.Records())
}
