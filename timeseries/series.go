// Package timeseries provides core time series data structures and loading.
package timeseries

// Series is a single named channel paired with the time vector it was
// sampled on.
type Series struct {
	Name   string
	Time   []float64
	Values []float64
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name, Time: []float64{}, Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	times := make([]float64, len(values))
	if len(s.Time) >= end {
		copy(times, s.Time[start:end])
	}

	return &Series{
		Name:   s.Name,
		Time:   times,
		Values: values,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	times := make([]float64, len(s.Time))
	copy(times, s.Time)

	return &Series{
		Name:   s.Name,
		Time:   times,
		Values: values,
	}
}
