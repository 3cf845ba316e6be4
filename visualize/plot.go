package visualize

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Default plot size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// IntervalPlot overlays one histogram per class of values and draws a
// dashed vertical line at every cut of cat. classNames labels the legend
// by class code; nil uses the codes.
func IntervalPlot(title string, values []float64, classes []int, classNames []string, cat *discretize.Categorizer, bins int) (*plot.Plot, error) {
	const op = "IntervalPlot"
	if len(values) != len(classes) {
		return nil, errors.NewShapeMismatchError(op, len(values), len(classes))
	}
	if len(values) == 0 {
		return nil, errors.NewInsufficientDataError(op, 1, 0)
	}
	if bins <= 0 {
		bins = 20
	}

	byClass := map[int]plotter.Values{}
	maxClass := 0
	for i, c := range classes {
		byClass[c] = append(byClass[c], values[i])
		maxClass = max(maxClass, c)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "count"

	lo, hi := floats.Min(values), floats.Max(values)
	for c := 0; c <= maxClass; c++ {
		vals, ok := byClass[c]
		if !ok {
			continue
		}
		h, err := plotter.NewHist(vals, bins)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: histogram of class %d", op, c)
		}
		fill := plotutil.Color(c)
		h.FillColor = withAlpha(fill, 0x80)
		h.LineStyle.Color = fill
		p.Add(h)
		p.Legend.Add(className(c, classNames), h)
	}

	for _, cut := range cat.Cuts() {
		// cuts outside the sample range would stretch the axis
		if cut < lo || cut > hi {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{{X: cut, Y: 0}, {X: cut, Y: math.Max(p.Y.Max, 1)}})
		if err != nil {
			return nil, errors.Wrapf(err, "%s: cut line at %v", op, cut)
		}
		line.LineStyle.Color = color.Black
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}
	return p, nil
}

// SavePlot writes p to path; the extension picks the image format.
func SavePlot(p *plot.Plot, path string) error {
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return errors.Wrapf(err, "error saving plot to %s", path)
	}
	return nil
}

// WritePlot writes p to w as format ("png", "svg", "pdf", ...).
func WritePlot(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return errors.Wrapf(err, "error encoding plot as %s", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "error writing plot")
	}
	return nil
}

func className(c int, names []string) string {
	if c < len(names) {
		return names[c]
	}
	return strconv.Itoa(c)
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
