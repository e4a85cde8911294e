package cli

import "fmt"

// outputFormat is an enum representing the argument of the --format
// option.
type outputFormat int

// Values for outputFormat.
const (
	// --format=table
	outputFormatTable outputFormat = iota

	// --format=json
	outputFormatJSON
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) (outputFormat, error) {
	switch formatStr {
	case "table":
		return outputFormatTable, nil
	case "json":
		return outputFormatJSON, nil
	default:
		return 0, fmt.Errorf(`invalid format %#v (must be "table" or "json")`, formatStr)
	}
}

// outputOptions collects the flags that decide where and how tables
// are written.
type outputOptions struct {
	format outputFormat

	// File to write instead of stdout, or "".
	output string

	// Whether wide tables may go through the pager.
	pager bool
}

// jsonTable is the shape of one table in --format=json output.
type jsonTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
