package timeseries

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := writeFile(t, "t,a,b\n0,1,2\n1,3,4\n2,5,6\n")

	l := Load(path)
	require.True(t, l.Loaded(), "load failed: %v", l.Err())
	assert.NoError(t, l.Err())
	assert.Equal(t, path, l.Path())

	assert.Equal(t, []string{"a", "b"}, l.ChannelNames())
	assert.Equal(t, []float64{0, 1, 2}, l.TimeVector())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, l.Values())
}

func TestLoadElements(t *testing.T) {
	path := writeFile(t, "time,x,y,z\n0.0,1.25,-3,7e-3\n0.5,2.5,-6,8e-3\n")

	l := Load(path)
	require.True(t, l.Loaded())

	expected := [][]float64{{1.25, -3, 7e-3}, {2.5, -6, 8e-3}}
	values := l.Values()
	require.Len(t, values, len(l.TimeVector()))
	for i := range expected {
		require.Len(t, values[i], len(l.ChannelNames()))
		for j := range expected[i] {
			assert.Equal(t, expected[i][j], values[i][j], "value at row %d, column %d", i, j)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	path := filepath.Join(t.TempDir(), "nope.csv")
	l := LoadWithOptions(path, opts)

	assert.False(t, l.Loaded())
	assert.Nil(t, l.ChannelNames())
	assert.Nil(t, l.TimeVector())
	assert.Nil(t, l.Values())
	assert.Nil(t, l.Table())
	assert.Nil(t, l.Matrix())
	assert.Nil(t, l.TimeVec())

	_, ok := l.Channel("a")
	assert.False(t, ok)

	require.Error(t, l.Err())
	assert.True(t, IsLoadError(l.Err()))

	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "could not load time series")
	assert.Contains(t, logs.String(), "op=open")
}

func TestLoadMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"short row", "t,a,b\n0,1,2\n1,3\n2,5,6\n"},
		{"long row", "t,a,b\n0,1,2\n1,3,4,5\n"},
		{"non-numeric", "t,a,b\n0,1,2\n1,three,4\n"},
		{"empty file", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

			l := LoadWithOptions(writeFile(t, tc.content), opts)

			assert.False(t, l.Loaded())
			assert.Nil(t, l.ChannelNames())
			assert.Nil(t, l.TimeVector())
			assert.Nil(t, l.Values())
			assert.Error(t, l.Err())
		})
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	l := Load(writeFile(t, "t,a,b\n"))
	require.True(t, l.Loaded())

	assert.Equal(t, []string{"a", "b"}, l.ChannelNames())
	assert.Empty(t, l.TimeVector())
	assert.Empty(t, l.Values())
	assert.Nil(t, l.Matrix())
}

func TestLoadIdempotent(t *testing.T) {
	path := writeFile(t, "t,a,b\n0,1,2\n1,3,4\n2,5,6\n")

	first := Load(path)
	second := Load(path)
	require.True(t, first.Loaded())
	require.True(t, second.Loaded())

	assert.Equal(t, first.ChannelNames(), second.ChannelNames())
	assert.Equal(t, first.TimeVector(), second.TimeVector())
	assert.Equal(t, first.Values(), second.Values())
	assert.True(t, first.Table().Equal(second.Table()))
}

func TestLoadDebugLog(t *testing.T) {
	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := LoadWithOptions(writeFile(t, "t,a\n0,1\n"), opts)
	require.True(t, l.Loaded())

	assert.Contains(t, logs.String(), "loaded time series")
	assert.Contains(t, logs.String(), "channels=1")
	assert.Contains(t, logs.String(), "rows=1")
}

func TestLoaderMatrix(t *testing.T) {
	l := Load(writeFile(t, "t,a,b\n0,1,2\n1,3,4\n2,5,6\n"))
	require.True(t, l.Loaded())

	m := l.Matrix()
	require.NotNil(t, m)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, 5.0, m.At(2, 0))

	v := l.TimeVec()
	require.NotNil(t, v)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2.0, v.AtVec(2))

	s, ok := l.Channel("b")
	require.True(t, ok)
	assert.Equal(t, []float64{2, 4, 6}, s.Values)
	assert.Equal(t, []float64{0, 1, 2}, s.Time)
}
