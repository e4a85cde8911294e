package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/replit/iotable/internal/table"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML builds a table from the first <table> element of an HTML
// document. The first row must consist of <th> cells and supplies the
// headers; every later row becomes a row of text cells. Whitespace in
// cells is collapsed to single spaces, since cells are one line.
func ParseHTML(r io.Reader) (table.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return table.Table{}, err
	}

	tbl := findElement(doc, atom.Table)
	if tbl == nil {
		return table.Table{}, errors.New("no <table> element")
	}

	trs := collectRows(tbl, nil)
	if len(trs) == 0 {
		return table.Table{}, errors.New("table has no rows")
	}

	headers, allHeaders := rowCells(trs[0])
	if len(headers) == 0 || !allHeaders {
		return table.Table{}, errors.New("first table row must consist of <th> cells")
	}

	t := table.New(headers...)
	for i, tr := range trs[1:] {
		cells, _ := rowCells(tr)
		if len(cells) != len(headers) {
			return table.Table{}, fmt.Errorf(
				"row %d: has %d cells, want %d", i+1, len(cells), len(headers),
			)
		}
		row := make([]table.Cell, len(cells))
		for j, text := range cells {
			row[j] = table.Text(text)
		}
		t.AddRow(row...)
	}
	return t, nil
}

// findElement returns the first element with the given tag in
// document order, or nil.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// collectRows appends the <tr> elements of a table, looking through
// <thead>, <tbody> and <tfoot> but not into nested tables.
func collectRows(n *html.Node, rows []*html.Node) []*html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Table:
		default:
			rows = collectRows(c, rows)
		}
	}
	return rows
}

// rowCells returns the text of the <th> and <td> children of a row,
// and whether all of them were <th>.
func rowCells(tr *html.Node) ([]string, bool) {
	var cells []string
	allHeaders := true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Th:
		case atom.Td:
			allHeaders = false
		default:
			continue
		}
		var b strings.Builder
		collectText(c, &b)
		cells = append(cells, strings.Join(strings.Fields(b.String()), " "))
	}
	return cells, allHeaders
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
