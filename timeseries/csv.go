package timeseries

import (
	"bufio"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
)

// Options holds options for table loading.
type Options struct {
	Delimiter        rune         // Field delimiter (default: ',')
	Comment          rune         // Lines starting with this rune are skipped (default: none)
	TrimLeadingSpace bool         // Ignore leading white space in fields (default: true)
	Logger           *slog.Logger // Receives load diagnostics (default: slog.Default())
}

// DefaultOptions returns default options for table loading.
func DefaultOptions() *Options {
	return &Options{
		Delimiter:        ',',
		TrimLeadingSpace: true,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ReadFile loads a table from a delimited text file.
// Any failure is returned as a *LoadError.
func ReadFile(filename string, opts *Options) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Op: OpOpen, Err: errors.WithStack(err)}
	}
	defer file.Close()

	tbl, err := ReadFrom(file, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = filename
		}
		return nil, err
	}
	return tbl, nil
}

// ReadFrom loads a table from an io.Reader.
//
// The first record is the header: its first label names the time axis and
// is discarded, the rest name the channels. Every following record must have
// the same width as the header and hold only numbers.
func ReadFrom(r io.Reader, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	tbl := &csvutil.Table{
		Reader: csv.NewReader(bufio.NewReader(r)),
	}
	defer tbl.Close()

	tbl.Reader.Comma = opts.Delimiter
	tbl.Reader.Comment = opts.Comment
	tbl.Reader.TrimLeadingSpace = opts.TrimLeadingSpace

	header, err := tbl.Reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Op: OpHeader, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, parseFailure(OpHeader, err)
	}
	// Ragged body rows become csv.ErrFieldCount.
	tbl.Reader.FieldsPerRecord = len(header)

	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return nil, parseFailure(OpParse, err)
	}
	defer rows.Close()

	out := &Table{
		ChannelNames: append([]string{}, header[1:]...),
		Time:         []float64{},
		Values:       [][]float64{},
	}

	record := make([]float64, len(header))
	dest := make([]interface{}, len(record))
	for i := range record {
		dest[i] = &record[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			line, _ := tbl.Reader.FieldPos(0)
			return nil, &LoadError{
				Op:   OpScan,
				Line: line,
				Err:  errors.Wrapf(err, "could not scan row %d", len(out.Time)),
			}
		}
		row := make([]float64, len(record)-1)
		copy(row, record[1:])
		out.Time = append(out.Time, record[0])
		out.Values = append(out.Values, row)
	}

	if err := rows.Err(); err != nil && err != io.EOF {
		return nil, parseFailure(OpParse, err)
	}

	return out, nil
}

// WriteCSV writes a table back as delimited text, with timeLabel heading
// the time column.
func WriteCSV(w io.Writer, t *Table, timeLabel string, delimiter rune) error {
	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}

	header := append([]string{timeLabel}, t.ChannelNames...)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "timeseries: could not write header")
	}

	record := make([]string, len(header))
	for i, tm := range t.Time {
		record[0] = strconv.FormatFloat(tm, 'g', -1, 64)
		for j, v := range t.Values[i] {
			record[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "timeseries: could not write row %d", i)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "timeseries: could not flush table")
}

// SaveCSV saves a table to a file.
func SaveCSV(t *Table, filename, timeLabel string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	if err := WriteCSV(file, t, timeLabel, ','); err != nil {
		return err
	}
	return errors.WithStack(file.Close())
}
