package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/tsload/timeseries"
)

// ErrNoData is returned when a table has no rows or no channels to draw.
var ErrNoData = errors.New("preview: no data to plot")

// Options holds options for rendering.
type Options struct {
	Title  string    // Plot title (default: none)
	XLabel string    // Time axis label (default: "Time")
	YLabel string    // Value axis label (default: "Value")
	Width  vg.Length // Image width (default: 800pt)
	Height vg.Length // Image height (default: 400pt)
	Format string    // Image format understood by gonum/plot (default: "png")
}

// DefaultOptions returns default options for rendering.
func DefaultOptions() *Options {
	return &Options{
		XLabel: "Time",
		YLabel: "Value",
		Width:  vg.Points(800),
		Height: vg.Points(400),
		Format: "png",
	}
}

// Render draws every channel of tbl and returns the encoded image.
func Render(tbl *timeseries.Table, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	p, err := newPlot(tbl, opts)
	if err != nil {
		return nil, err
	}

	writer, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return nil, errors.Wrap(err, "preview: could not create plot writer")
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "preview: could not write plot")
	}
	return buf.Bytes(), nil
}

// Save renders tbl to filename. The image format is taken from the file
// extension, falling back to opts.Format when there is none.
func Save(tbl *timeseries.Table, filename string, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		*o = *opts
	}
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		o.Format = strings.ToLower(ext)
	}

	img, err := Render(tbl, o)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(filename, img, 0o644))
}

func newPlot(tbl *timeseries.Table, opts *Options) (*plot.Plot, error) {
	if tbl == nil || tbl.Rows() == 0 || tbl.Cols() == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for j, name := range tbl.ChannelNames {
		pts := make(plotter.XYs, tbl.Rows())
		for i := range pts {
			pts[i].X = tbl.Time[i]
			pts[i].Y = tbl.Values[i][j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "preview: could not create line for channel %q", name)
		}
		line.Color = plotutil.Color(j)
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(name, line)
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(10)
	return p, nil
}
