// Package source builds tables from files: table documents written in
// TOML, YAML or JSON, the first table of an HTML page, and the result
// of a query against a SQLite database.
package source

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/hashicorp/go-version"
	"github.com/replit/iotable/internal/table"
)

// supportedVersions constrains the version field of table documents.
var supportedVersions = mustConstraints(">= 1.0, < 2.0")

func mustConstraints(s string) version.Constraints {
	c, err := version.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Column declares one column of a table document.
type Column struct {
	Header string `toml:"header" yaml:"header" json:"header"`

	// One of the names accepted by table.ParseKind.
	Type string `toml:"type" yaml:"type" json:"type"`
}

// Document is the decoded form of a table document. The same shape is
// used for every file format.
type Document struct {
	// Format version, "1.0" if empty.
	Version string `toml:"version" yaml:"version" json:"version"`

	Columns []Column        `toml:"columns" yaml:"columns" json:"columns"`
	Rows    [][]interface{} `toml:"rows" yaml:"rows" json:"rows"`
}

// Build checks a decoded document against its column declarations and
// returns the table it describes.
func Build(doc Document) (table.Table, error) {
	if doc.Version != "" {
		v, err := version.NewVersion(doc.Version)
		if err != nil {
			return table.Table{}, fmt.Errorf("version %q: %w", doc.Version, err)
		}
		if !supportedVersions.Check(v) {
			return table.Table{}, fmt.Errorf("unsupported document version %s (want %s)", v, supportedVersions)
		}
	}

	if len(doc.Columns) == 0 {
		return table.Table{}, fmt.Errorf("no columns declared")
	}

	headers := make([]string, len(doc.Columns))
	kinds := make([]table.Kind, len(doc.Columns))
	for j, col := range doc.Columns {
		kind, err := table.ParseKind(col.Type)
		if err != nil {
			return table.Table{}, fmt.Errorf("column %q: %w", col.Header, err)
		}
		headers[j] = col.Header
		kinds[j] = kind
	}

	t := table.New(headers...)
	for i, values := range doc.Rows {
		if len(values) != len(kinds) {
			return table.Table{}, fmt.Errorf(
				"row %d: has %d values, want %d", i+1, len(values), len(kinds),
			)
		}
		row := make([]table.Cell, len(values))
		for j, value := range values {
			cell, err := convert(kinds[j], value)
			if err != nil {
				return table.Table{}, fmt.Errorf("row %d, column %q: %w", i+1, headers[j], err)
			}
			row[j] = cell
		}
		t.AddRow(row...)
	}
	return t, nil
}

// convert turns a decoded document value into a cell of the given
// kind. Decoders disagree on numeric types (TOML yields int64, YAML
// int, JSON json.Number), so each kind accepts all of them.
func convert(kind table.Kind, value interface{}) (table.Cell, error) {
	switch kind {
	case table.KindBool:
		if b, ok := value.(bool); ok {
			return table.Bool(b), nil
		}

	case table.KindInteger:
		switch n := value.(type) {
		case int:
			return table.Int(n), nil
		case int64:
			return table.Int(n), nil
		case uint64:
			return table.Uint(n), nil
		case float64:
			if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
				return table.Int(int64(n)), nil
			}
		case json.Number:
			if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
				return table.Int(i), nil
			}
			if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
				return table.Uint(u), nil
			}
		}

	case table.KindFloat:
		switch n := value.(type) {
		case float64:
			return table.Float(n), nil
		case int:
			return table.Float(n), nil
		case int64:
			return table.Float(n), nil
		case uint64:
			return table.Float(n), nil
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return table.Float(f), nil
			}
		}

	case table.KindChar:
		if s, ok := value.(string); ok {
			if len(s) != 1 {
				return nil, fmt.Errorf("char value %q is %d bytes long, want 1", s, len(s))
			}
			return table.Char(s[0]), nil
		}

	case table.KindText:
		if s, ok := value.(string); ok {
			return table.Text(s), nil
		}
	}
	return nil, fmt.Errorf("cannot use %s as %s", describe(value), kind)
}

// describe names a decoded value for error messages.
func describe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case json.Number:
		return "number " + v.String()
	}
	return fmt.Sprintf("%T %v", value, value)
}
