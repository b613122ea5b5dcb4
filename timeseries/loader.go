package timeseries

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Loader holds the contents of a single time-series file.
//
// A Loader is either loaded, with channel names, time vector and values all
// set and consistent, or failed, with all three nil. Load never reports
// failure to the caller directly: it logs a diagnostic and returns a failed
// Loader. Check Loaded (or Err) before using the data.
type Loader struct {
	path  string
	table *Table
	err   error
}

// Load reads the file at path using DefaultOptions.
func Load(path string) *Loader {
	return LoadWithOptions(path, nil)
}

// LoadWithOptions reads the file at path. A nil opts means DefaultOptions.
func LoadWithOptions(path string, opts *Options) *Loader {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.logger()

	l := &Loader{path: path}
	tbl, err := readFileSafe(path, opts)
	if err != nil {
		l.err = err
		log.Error("could not load time series", "path", path, "op", opErr(err), "err", err)
		return l
	}

	l.table = tbl
	log.Debug("loaded time series", "path", path, "channels", tbl.Cols(), "rows", tbl.Rows())
	return l
}

// readFileSafe is ReadFile with panics from the parsing stack turned into a
// LoadError, so that Load cannot crash its caller.
func readFileSafe(path string, opts *Options) (tbl *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tbl = nil
			err = &LoadError{Path: path, Op: OpParse, Err: errors.New(fmt.Sprint("panic: ", r))}
		}
	}()
	return ReadFile(path, opts)
}

func opErr(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Op
	}
	return ""
}

// Path returns the path the loader was constructed with.
func (l *Loader) Path() string {
	return l.path
}

// Loaded reports whether the file was read successfully.
func (l *Loader) Loaded() bool {
	return l.table != nil
}

// Err returns the load failure, or nil if the file was loaded.
func (l *Loader) Err() error {
	return l.err
}

// ChannelNames returns the header labels after the time column, or nil if
// loading failed.
func (l *Loader) ChannelNames() []string {
	if l.table == nil {
		return nil
	}
	return l.table.ChannelNames
}

// TimeVector returns the first column of every body row, or nil if loading
// failed.
func (l *Loader) TimeVector() []float64 {
	if l.table == nil {
		return nil
	}
	return l.table.Time
}

// Values returns the channel values, one row per time step and one column
// per channel, or nil if loading failed.
func (l *Loader) Values() [][]float64 {
	if l.table == nil {
		return nil
	}
	return l.table.Values
}

// Table returns the loaded table, or nil if loading failed.
// The returned table is shared with the loader and must not be modified.
func (l *Loader) Table() *Table {
	return l.table
}

// Matrix returns the values as a dense matrix. It is nil if loading failed
// or there are no rows or no channels.
func (l *Loader) Matrix() *mat.Dense {
	if l.table == nil {
		return nil
	}
	return l.table.Matrix()
}

// TimeVec returns the time vector as a gonum vector. It is nil if loading
// failed or there are no rows.
func (l *Loader) TimeVec() *mat.VecDense {
	if l.table == nil {
		return nil
	}
	return l.table.TimeVec()
}

// Channel returns the named channel as a Series.
func (l *Loader) Channel(name string) (*Series, bool) {
	if l.table == nil {
		return nil, false
	}
	return l.table.Channel(name)
}
