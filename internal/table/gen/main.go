// This command generates the typed table wrappers Table1 through
// TableN. Each wrapper fixes the number of columns and the Go type of
// every column, so that AddRow only compiles with exactly one value
// of the right type per column.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"
)

var paramNames = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

func joinList(words []string) string {
	switch len(words) {
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}

func writeTyped(w io.Writer, n int) {
	params := paramNames[:n]
	args := make([]string, n)
	cells := make([]string, n)
	for i, p := range params {
		arg := strings.ToLower(p)
		args[i] = arg + " " + p
		cells[i] = "CellOf(" + arg + ")"
	}
	name := fmt.Sprintf("Table%d", n)
	inst := fmt.Sprintf("%s[%s]", name, strings.Join(params, ", "))
	decl := fmt.Sprintf("%s Value", strings.Join(params, ", "))

	columns, types := "columns", "types"
	if n == 1 {
		columns, types = "column", "type"
	}
	fmt.Fprintf(w, "// %s is a table with %d %s of %s %s. Rows can only be\n", name, n, columns, types, joinList(params))
	fmt.Fprintf(w, "// added with exactly one value of each column type.\n")
	fmt.Fprintf(w, "type %s[%s] struct {\n\tt Table\n}\n\n", name, decl)

	fmt.Fprintf(w, "// New%s creates an empty %s with the given headers.\n", name, name)
	fmt.Fprintf(w, "func New%s[%s](headers [%d]string) %s {\n", name, decl, n, inst)
	fmt.Fprintf(w, "\treturn %s{t: New(headers[:]...)}\n}\n\n", inst)

	fmt.Fprintf(w, "// AddRow adds a row at the end of the table. A zero %s gets\n", name)
	fmt.Fprintf(w, "// empty headers first.\n")
	fmt.Fprintf(w, "func (t *%s) AddRow(%s) {\n", inst, strings.Join(args, ", "))
	fmt.Fprintf(w, "\tif t.t.headers == nil {\n\t\tt.t = New(make([]string, %d)...)\n\t}\n", n)
	fmt.Fprintf(w, "\tt.t.AddRow(%s)\n}\n\n", strings.Join(cells, ", "))

	fmt.Fprintf(w, "// Clone returns an independent copy of the table.\n")
	fmt.Fprintf(w, "func (t *%s) Clone() %s {\n", inst, inst)
	fmt.Fprintf(w, "\treturn %s{t: t.t.Clone()}\n}\n\n", inst)

	fmt.Fprintf(w, "// Move returns a table holding t's contents and leaves t with\n")
	fmt.Fprintf(w, "// empty headers and no rows.\n")
	fmt.Fprintf(w, "func (t *%s) Move() %s {\n", inst, inst)
	fmt.Fprintf(w, "\tmoved := %s{t: t.t.Move()}\n", inst)
	fmt.Fprintf(w, "\tt.t = New(make([]string, %d)...)\n", n)
	fmt.Fprintf(w, "\treturn moved\n}\n\n")

	fmt.Fprintf(w, "// Dynamic returns an independent Table with the same contents.\n")
	fmt.Fprintf(w, "func (t *%s) Dynamic() Table {\n", inst)
	fmt.Fprintf(w, "\treturn t.t.Clone()\n}\n\n")

	fmt.Fprintf(w, "// String returns the rendered table.\n")
	fmt.Fprintf(w, "func (t *%s) String() string {\n", inst)
	fmt.Fprintf(w, "\treturn t.t.String()\n}\n\n")

	fmt.Fprintf(w, "// WriteTo writes the rendered table to w.\n")
	fmt.Fprintf(w, "func (t *%s) WriteTo(w io.Writer) (int64, error) {\n", inst)
	fmt.Fprintf(w, "\treturn t.t.WriteTo(w)\n}\n\n")
}

func main() {
	maxCols := flag.Int("max", 6, "the largest number of columns to generate a type for")
	pkg := flag.String("pkg", "table", "the pkg name for the output source")
	out := flag.String("out", "", "the destination file for the generated code")
	flag.Parse()

	if *maxCols < 1 || *maxCols > len(paramNames) {
		fmt.Fprintf(os.Stderr, "-max must be between 1 and %d\n", len(paramNames))
		os.Exit(1)
	}
	if *out == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(1)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gen -max %d; DO NOT EDIT.\n\n", *maxCols)
	fmt.Fprintf(&buf, "package %s\n\nimport \"io\"\n\n", *pkg)
	for n := 1; n <= *maxCols; n++ {
		writeTyped(&buf, n)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "formatting generated code: %s\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", *out, err)
		os.Exit(1)
	}
}
