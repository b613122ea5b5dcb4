package timeseries

import (
	"encoding/csv"
	"fmt"

	"github.com/pkg/errors"
)

// Load operations reported in a LoadError.
const (
	OpOpen   = "open"   // the file could not be opened
	OpHeader = "header" // the header row is missing or unreadable
	OpParse  = "parse"  // the table is malformed (ragged rows, bad quoting)
	OpScan   = "scan"   // a field is not a number
)

// LoadError describes why a table could not be loaded.
// It is the only error kind produced by ReadFile, ReadFrom and Loader.
type LoadError struct {
	Path string // empty when reading from an io.Reader
	Op   string
	Line int // 1-based line in the input, 0 if unknown
	Err  error
}

func (e *LoadError) Error() string {
	msg := "timeseries: could not " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// parseFailure turns an error returned by the csv reader into a LoadError,
// keeping the line number csv reports.
func parseFailure(op string, err error) *LoadError {
	le := &LoadError{Op: op, Err: errors.Wrap(err, "malformed table")}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		le.Line = pe.Line
	}
	return le
}
