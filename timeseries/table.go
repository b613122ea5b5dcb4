package timeseries

import (
	"gonum.org/v1/gonum/mat"
)

// Table is the numeric content of a time-series file: the channel names
// from the header, the time column, and the remaining columns as a matrix.
//
// Values has one row per entry in Time and one column per entry in
// ChannelNames.
type Table struct {
	ChannelNames []string
	Time         []float64
	Values       [][]float64
}

// Rows returns the number of time steps.
func (t *Table) Rows() int {
	return len(t.Time)
}

// Cols returns the number of channels.
func (t *Table) Cols() int {
	return len(t.ChannelNames)
}

// Matrix returns the values as a dense matrix, or nil when the table has
// no rows or no channels.
func (t *Table) Matrix() *mat.Dense {
	r, c := t.Rows(), t.Cols()
	if r == 0 || c == 0 {
		return nil
	}
	m := mat.NewDense(r, c, nil)
	for i, row := range t.Values {
		m.SetRow(i, row)
	}
	return m
}

// TimeVec returns the time column as a vector, or nil when the table is empty.
func (t *Table) TimeVec() *mat.VecDense {
	if t.Rows() == 0 {
		return nil
	}
	data := make([]float64, len(t.Time))
	copy(data, t.Time)
	return mat.NewVecDense(len(data), data)
}

// Channel returns the named channel as a Series. When several channels share
// a name, the first one wins.
func (t *Table) Channel(name string) (*Series, bool) {
	for j, n := range t.ChannelNames {
		if n == name {
			return t.column(j), true
		}
	}
	return nil, false
}

// Channels returns every channel as a Series, in header order.
func (t *Table) Channels() []*Series {
	out := make([]*Series, len(t.ChannelNames))
	for j := range t.ChannelNames {
		out[j] = t.column(j)
	}
	return out
}

func (t *Table) column(j int) *Series {
	s := &Series{
		Name:   t.ChannelNames[j],
		Time:   make([]float64, len(t.Time)),
		Values: make([]float64, len(t.Values)),
	}
	copy(s.Time, t.Time)
	for i, row := range t.Values {
		s.Values[i] = row[j]
	}
	return s
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	names := make([]string, len(t.ChannelNames))
	copy(names, t.ChannelNames)

	times := make([]float64, len(t.Time))
	copy(times, t.Time)

	values := make([][]float64, len(t.Values))
	for i, row := range t.Values {
		values[i] = make([]float64, len(row))
		copy(values[i], row)
	}

	return &Table{
		ChannelNames: names,
		Time:         times,
		Values:       values,
	}
}

// Equal reports whether both tables hold the same names and numbers.
// NaN compares equal to NaN.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.ChannelNames) != len(o.ChannelNames) || len(t.Time) != len(o.Time) || len(t.Values) != len(o.Values) {
		return false
	}
	for j := range t.ChannelNames {
		if t.ChannelNames[j] != o.ChannelNames[j] {
			return false
		}
	}
	if !floatsEqual(t.Time, o.Time) {
		return false
	}
	for i := range t.Values {
		if !floatsEqual(t.Values[i], o.Values[i]) {
			return false
		}
	}
	return true
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(a[i] != a[i] && b[i] != b[i]) {
			return false
		}
	}
	return true
}
