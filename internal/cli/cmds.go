package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/replit/iotable/internal/source"
	"github.com/replit/iotable/internal/table"
	"github.com/replit/iotable/internal/trace"
	"github.com/replit/iotable/internal/util"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// stopTracing flushes spans before the process exits.
var stopTracing = trace.Stop

// die flushes recorded spans and then calls util.Die. os.Exit skips
// the deferred trace.Stop in DoCLI.
func die(format string, a ...interface{}) {
	stopTracing()
	util.Die(format, a...)
}

// writeTable writes one table to w in the given format.
func writeTable(w io.Writer, t *table.Table, format outputFormat) error {
	switch format {
	case outputFormatTable:
		_, err := t.WriteTo(w)
		return err

	case outputFormatJSON:
		outputB, err := json.Marshal(jsonTable{
			Headers: t.Headers(),
			Rows:    t.Records(),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(outputB))
		return err
	}
	util.Panicf("unknown output format %d", format)
	return nil
}

// emit renders tables and sends them where opts says: a file, the
// pager, or stdout.
func emit(ctx context.Context, tables []table.Table, opts outputOptions) error {
	span, _ := trace.StartSpan(ctx, "iotable.render")
	defer span.Finish()
	span.SetTag("tables", len(tables))

	var buf bytes.Buffer
	width := 0
	for i := range tables {
		if err := writeTable(&buf, &tables[i], opts.format); err != nil {
			return err
		}
		if w := tables[i].LineWidth(); w > width {
			width = w
		}
	}

	switch {
	case opts.output != "":
		util.ProgressMsg("write " + opts.output)
		return util.WriteAtomic(opts.output, buf.Bytes())
	case opts.format == outputFormatTable && opts.pager:
		return util.PrintOrPage(buf.String(), width)
	default:
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
}

// loadFiles builds one table per file, in order.
func loadFiles(ctx context.Context, files []string) ([]table.Table, error) {
	tables := make([]table.Table, 0, len(files))
	for _, file := range files {
		span, _ := trace.StartSpan(ctx, "iotable.load")
		span.SetTag("file", file)
		t, err := source.LoadFile(file)
		span.Finish(tracer.WithError(err))
		if err != nil {
			return nil, err
		}
		util.Log("%s: %d rows", file, t.NumRows())
		tables = append(tables, t)
	}
	return tables, nil
}

// runRender implements 'iotable render'.
func runRender(ctx context.Context, files []string, opts outputOptions) {
	tables, err := loadFiles(ctx, files)
	if err != nil {
		die("%s", err)
	}
	if err := emit(ctx, tables, opts); err != nil {
		die("%s", err)
	}
}

// checkDatabase returns an error naming database if the file does
// not exist.
func checkDatabase(database string) error {
	exists, err := util.FileExists(database)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: no such database", database)
	}
	return nil
}

// runQuery implements 'iotable query'.
func runQuery(ctx context.Context, database string, query string, args []string, opts outputOptions) {
	if err := checkDatabase(database); err != nil {
		die("%s", err)
	}

	span, spanCtx := trace.StartSpan(ctx, "iotable.query")
	queryArgs := make([]interface{}, len(args))
	for i, arg := range args {
		queryArgs[i] = arg
	}
	t, err := source.Query(spanCtx, database, query, queryArgs...)
	span.Finish(tracer.WithError(err))
	if err != nil {
		die("%s", err)
	}

	if err := emit(ctx, []table.Table{t}, opts); err != nil {
		die("%s", err)
	}
}

// kindsTable lists the column type names accepted in table
// documents.
func kindsTable() table.Table2[string, string] {
	t := table.NewTable2[string, string]([2]string{"Type", "Aliases"})
	for _, names := range table.KindNames() {
		t.AddRow(names[0], strings.Join(names[1:], ", "))
	}
	return t
}

// runKinds implements 'iotable kinds'.
func runKinds() {
	t := kindsTable()
	if _, err := t.WriteTo(os.Stdout); err != nil {
		die("%s", err)
	}
}
