// Package timeseries loads tabular time-series files.
//
// A time-series file is delimited text whose first row is a header. The first
// column holds the time axis; every other column is a named channel:
//
//	t,a,b
//	0,1,2
//	1,3,4
//	2,5,6
//
// # Loading
//
// Load reads a file and never returns an error. On failure it logs a
// diagnostic and returns a Loader with no data, so callers check Loaded:
//
//	l := timeseries.Load("data.csv")
//	if !l.Loaded() {
//	    return l.Err()
//	}
//	names := l.ChannelNames() // ["a", "b"]
//	times := l.TimeVector()   // [0, 1, 2]
//	values := l.Values()      // [[1, 2], [3, 4], [5, 6]]
//
// ReadFile and ReadFrom return the same data as a Table together with a
// *LoadError, for callers that prefer explicit errors:
//
//	tbl, err := timeseries.ReadFile("data.csv", nil)
//
// All numbers are float64. A field that does not parse as a number, a row
// whose width differs from the header, or a missing header is a load failure.
//
// # Working with the data
//
// Matrix and TimeVec expose the data as gonum containers, and Channel
// extracts a single column as a Series:
//
//	m := l.Matrix()          // *mat.Dense, rows = time steps
//	s, ok := l.Channel("a")  // s.Time, s.Values
//
// # Options
//
// Customize loading:
//
//	opts := timeseries.DefaultOptions()
//	opts.Delimiter = ';'
//	opts.Comment = '#'
//	opts.Logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	l := timeseries.LoadWithOptions("data.csv", opts)
package timeseries
