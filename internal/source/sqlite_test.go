package source

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/replit/iotable/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDB(t *testing.T, stmts ...string) string {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestQuery(t *testing.T) {
	path := createDB(t,
		`create table people (name text, age integer, score real, active boolean)`,
		`insert into people values ('Bob', 30, 2.5, 1)`,
		`insert into people values ('Alexandra', 5, 10, 0)`,
	)

	tbl, err := Query(context.Background(), path, "select name, age, score, active from people order by rowid")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age", "score", "active"}, tbl.Headers())
	assert.Equal(t, []table.Kind{
		table.KindText, table.KindInteger, table.KindFloat, table.KindBool,
	}, tbl.Kinds())
	assert.Equal(t, [][]string{
		{"Bob", "30", "2.50", "true"},
		{"Alexandra", "5", "10.0", "false"},
	}, tbl.Records())
}

func TestQueryArgs(t *testing.T) {
	path := createDB(t,
		`create table people (name text, age integer)`,
		`insert into people values ('Bob', 30), ('Alexandra', 5)`,
	)

	tbl, err := Query(context.Background(), path, "select name from people where age > ?", 10)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Bob"}}, tbl.Records())
}

func TestQueryNullFallsBackToText(t *testing.T) {
	path := createDB(t,
		`create table t (n integer)`,
		`insert into t values (1), (null)`,
	)

	tbl, err := Query(context.Background(), path, "select n from t order by rowid")
	require.NoError(t, err)

	assert.Equal(t, []table.Kind{table.KindText}, tbl.Kinds())
	assert.Equal(t, [][]string{{"1"}, {"NULL"}}, tbl.Records())
}

func TestQueryNoRows(t *testing.T) {
	path := createDB(t, `create table t (a text, b integer)`)

	tbl, err := Query(context.Background(), path, "select a, b from t")
	require.NoError(t, err)
	assert.Equal(t, "| a | b |\n|---|---|\n\n", tbl.String())
}

func TestQueryIsReadOnly(t *testing.T) {
	path := createDB(t, `create table t (a text)`)

	_, err := Query(context.Background(), path, "insert into t values ('x')")
	assert.Error(t, err)
}

func TestQueryBadSQL(t *testing.T) {
	path := createDB(t, `create table t (a text)`)

	_, err := Query(context.Background(), path, "select nope from t")
	assert.Error(t, err)
}

func TestDeclaredKind(t *testing.T) {
	assert.Equal(t, table.KindInteger, declaredKind("BIGINT"))
	assert.Equal(t, table.KindFloat, declaredKind("double precision"))
	assert.Equal(t, table.KindFloat, declaredKind("REAL"))
	assert.Equal(t, table.KindBool, declaredKind("BOOLEAN"))
	assert.Equal(t, table.KindText, declaredKind("VARCHAR(20)"))
	assert.Equal(t, table.KindText, declaredKind(""))
}

func TestQueryPathWithURISyntax(t *testing.T) {
	path := createDB(t,
		`create table people (name text)`,
		`insert into people values ('Bob')`,
	)
	weird := filepath.Join(filepath.Dir(path), "we?ird#100%.db")
	require.NoError(t, os.Rename(path, weird))

	tbl, err := Query(context.Background(), weird, "select name from people")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Bob"}}, tbl.Records())
}

func TestReadOnlyDSN(t *testing.T) {
	dsn, err := readOnlyDSN("/data/we?ird#1.db")
	require.NoError(t, err)
	assert.Equal(t, "file:///data/we%3Fird%231.db?mode=ro", dsn)
}
