package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/replit/iotable/internal/table"
)

// readOnlyDSN builds a file: URI opening path read-only. The path is
// made absolute and escaped so that '?', '#' and '%' in file names are
// not read as URI syntax.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

// Query runs a query against the SQLite database file at path and
// builds a table from the result. The database is opened read-only.
//
// Column kinds follow the declared column types. SQLite does not
// enforce those, so a column holding a value that does not fit its
// declared kind, or a NULL, is shown as text instead.
func Query(ctx context.Context, path string, query string, args ...interface{}) (table.Table, error) {
	// Open db in read-only mode so that a mistyped query cannot
	// modify it.
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return table.Table{}, err
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return table.Table{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return table.Table{}, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return table.Table{}, err
	}

	var values [][]interface{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for j := range row {
			ptrs[j] = &row[j]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return table.Table{}, err
		}
		for j, v := range row {
			if b, ok := v.([]byte); ok {
				row[j] = string(b)
			}
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", path, err)
	}

	kinds := make([]table.Kind, len(columns))
	for j, ct := range types {
		kinds[j] = declaredKind(ct.DatabaseTypeName())
		for _, row := range values {
			if _, ok := sqlCell(kinds[j], row[j]); !ok {
				kinds[j] = table.KindText
				break
			}
		}
	}

	t := table.New(columns...)
	for _, row := range values {
		cells := make([]table.Cell, len(row))
		for j, v := range row {
			cells[j], _ = sqlCell(kinds[j], v)
		}
		t.AddRow(cells...)
	}
	return t, nil
}

// declaredKind maps a declared SQLite column type to a Kind using
// SQLite's own affinity rules where they apply.
func declaredKind(declType string) table.Kind {
	declType = strings.ToUpper(declType)
	switch {
	case strings.HasPrefix(declType, "BOOL"):
		return table.KindBool
	case strings.Contains(declType, "INT"):
		return table.KindInteger
	case strings.Contains(declType, "REAL"),
		strings.Contains(declType, "FLOA"),
		strings.Contains(declType, "DOUB"):
		return table.KindFloat
	}
	return table.KindText
}

// sqlCell converts a scanned value to a cell of the given kind, and
// reports whether that was possible. Every value can be text.
func sqlCell(kind table.Kind, v interface{}) (table.Cell, bool) {
	switch kind {
	case table.KindBool:
		switch v := v.(type) {
		case bool:
			return table.Bool(v), true
		case int64:
			if v == 0 || v == 1 {
				return table.Bool(v == 1), true
			}
		}
	case table.KindInteger:
		if v, ok := v.(int64); ok {
			return table.Int(v), true
		}
	case table.KindFloat:
		switch v := v.(type) {
		case float64:
			return table.Float(v), true
		case int64:
			return table.Float(v), true
		}
	case table.KindText:
		return table.Text(sqlText(v)), true
	}
	return nil, false
}

// sqlText is the text shown for a value in a text column.
func sqlText(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case int64:
		return table.Int(v).String()
	case float64:
		return table.Float(v).String()
	case bool:
		return table.Bool(v).String()
	case time.Time:
		return v.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
