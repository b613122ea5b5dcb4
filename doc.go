// Package tsload loads tabular time-series files into memory.
//
// A time-series file is delimited text with a header row. The first column
// is the time axis and every other column is a named channel. Loading a file
// yields three things: the channel names, the time vector, and a matrix of
// channel values with one row per time step.
//
// # Quick Start
//
// Load a file and read its contents:
//
//	l := timeseries.Load("data.csv")
//	if !l.Loaded() {
//	    log.Fatal(l.Err())
//	}
//	names := l.ChannelNames()
//	times := l.TimeVector()
//	values := l.Values()
//
// Or get an explicit error:
//
//	tbl, err := timeseries.ReadFile("data.csv", nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Loader, Table and Series types, CSV reading and writing
//   - preview: Line plots of a loaded table
//
// The demo directory holds the tsload command line tool.
package tsload
