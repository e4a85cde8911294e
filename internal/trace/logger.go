package trace

import (
	"os"
	"path/filepath"
)

// DatadogLogger receives the tracer's own log output, which would
// otherwise be mixed into the rendered tables on stdout and stderr.
type DatadogLogger struct {
	file *os.File
}

// logPath returns IOTABLE_DD_LOG, or iotable.dd.log in the temporary
// directory.
func logPath() string {
	if loc, ok := os.LookupEnv("IOTABLE_DD_LOG"); ok {
		return loc
	}
	return filepath.Join(os.TempDir(), "iotable.dd.log")
}

// NewDatadogLogger creates or truncates the file at path and returns
// a logger writing to it.
func NewDatadogLogger(path string) (*DatadogLogger, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &DatadogLogger{
		file: file,
	}, nil
}

// Log implements ddtrace.Logger.
func (l *DatadogLogger) Log(msg string) {
	l.file.WriteString(msg)
	l.file.WriteString("\n")
}

// Close closes the log file.
func (l *DatadogLogger) Close() {
	l.file.Close()
}
