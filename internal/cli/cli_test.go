package cli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/replit/iotable/internal/config"
	"github.com/replit/iotable/internal/table"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleTable() table.Table {
	t := table.New("Name", "Age")
	t.AddRow(table.Text("Bob"), table.Int(30))
	t.AddRow(table.Text("Alexandra"), table.Int(5))
	return t
}

func TestParseOutputFormat(t *testing.T) {
	format, err := parseOutputFormat("table")
	require.NoError(t, err)
	assert.Equal(t, outputFormatTable, format)

	format, err = parseOutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, outputFormatJSON, format)

	_, err = parseOutputFormat("csv")
	assert.EqualError(t, err, `invalid format "csv" (must be "table" or "json")`)
}

func TestWriteTableText(t *testing.T) {
	tbl := peopleTable()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &tbl, outputFormatTable))
	assert.Equal(t, tbl.String(), buf.String())
}

func TestWriteTableJSON(t *testing.T) {
	tbl := peopleTable()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &tbl, outputFormatJSON))
	assert.JSONEq(t, `{"headers": ["Name", "Age"], "rows": [["Bob", "30"], ["Alexandra", "5"]]}`, buf.String())
}

func TestWriteTableJSONEmpty(t *testing.T) {
	tbl := table.New("A")

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &tbl, outputFormatJSON))
	assert.Equal(t, `{"headers":["A"],"rows":[]}`+"\n", buf.String())
}

func TestKindsTable(t *testing.T) {
	tbl := kindsTable()
	assert.Equal(t, "|  Type   | Aliases |\n"+
		"|---------|---------|\n"+
		"|  bool   | boolean |\n"+
		"| integer |   int   |\n"+
		"|  float  | double  |\n"+
		"|  char   |         |\n"+
		"|  text   | string  |\n"+
		"\n", tbl.String())
}

func TestEmitToFile(t *testing.T) {
	config.Quiet = true
	defer func() { config.Quiet = false }()

	first := peopleTable()
	second := table.New("A", "B")
	out := filepath.Join(t.TempDir(), "out.txt")

	err := emit(context.Background(), []table.Table{first, second}, outputOptions{
		format: outputFormatTable,
		output: out,
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, first.String()+second.String(), string(contents))
}

func testCommand(flags *flagState) *cobra.Command {
	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().StringVar(&flags.color, "color", "auto", "")
	addOutputFlags(cmd, flags)
	return cmd
}

func TestResolveOptionsDefaults(t *testing.T) {
	t.Setenv("IOTABLE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	var flags flagState
	cmd := testCommand(&flags)
	require.NoError(t, cmd.ParseFlags(nil))

	opts, err := resolveOptions(cmd, &flags)
	require.NoError(t, err)
	assert.Equal(t, outputOptions{format: outputFormatTable, pager: true}, opts)
}

func TestResolveOptionsSettingsAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\ncolor = \"never\"\n"), 0644))

	var flags flagState
	flags.configPath = path
	cmd := testCommand(&flags)
	require.NoError(t, cmd.ParseFlags([]string{"--no-pager", "-o", "out.json"}))

	opts, err := resolveOptions(cmd, &flags)
	require.NoError(t, err)
	assert.Equal(t, outputOptions{format: outputFormatJSON, output: "out.json", pager: false}, opts)

	require.NoError(t, cmd.ParseFlags([]string{"--format", "table"}))
	opts, err = resolveOptions(cmd, &flags)
	require.NoError(t, err)
	assert.Equal(t, outputFormatTable, opts.format)
}

func TestResolveOptionsBadColor(t *testing.T) {
	t.Setenv("IOTABLE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	var flags flagState
	cmd := testCommand(&flags)
	require.NoError(t, cmd.ParseFlags([]string{"--color", "sometimes"}))

	_, err := resolveOptions(cmd, &flags)
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IOTABLE_CONFIG", filepath.Join(dir, "missing.toml"))
	doc := filepath.Join(dir, "people.toml")
	require.NoError(t, os.WriteFile(doc, []byte(
		"columns = [{header = \"Name\", type = \"text\"}, {header = \"Age\", type = \"int\"}]\n"+
			"rows = [[\"Bob\", 30], [\"Alexandra\", 5]]\n",
	), 0644))
	out := filepath.Join(dir, "people.txt")

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"render", "--quiet", "--output", out, doc})
	require.NoError(t, rootCmd.Execute())
	config.Quiet = false

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	expected := peopleTable()
	assert.Equal(t, expected.String(), string(contents))
}

func TestCheckDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.db")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.NoError(t, checkDatabase(path))

	missing := filepath.Join(dir, "missing.db")
	assert.EqualError(t, checkDatabase(missing), missing+": no such database")
}

func TestLoadFiles(t *testing.T) {
	config.Quiet = true
	defer func() { config.Quiet = false }()

	dir := t.TempDir()
	doc := filepath.Join(dir, "people.json")
	require.NoError(t, os.WriteFile(doc, []byte(
		`{"columns": [{"header": "Name", "type": "text"}], "rows": [["Bob"], ["Alexandra"]]}`,
	), 0644))

	tables, err := loadFiles(context.Background(), []string{doc, doc})
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, 2, tables[1].NumRows())

	_, err = loadFiles(context.Background(), []string{doc, filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}

func TestDieStopsTracing(t *testing.T) {
	if os.Getenv("IOTABLE_TEST_DIE") == "1" {
		stopTracing = func() { os.Stderr.WriteString("tracing stopped\n") }
		die("%s", "no such table")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDieStopsTracing$")
	cmd.Env = append(os.Environ(), "IOTABLE_TEST_DIE=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, "tracing stopped\nerror: no such table\n", stderr.String())
}
