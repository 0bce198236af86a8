package render

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultPlotSize is the edge of the square figure
const DefaultPlotSize = 8 * vg.Inch

// PlotRenderer draws both orbits, the Sun and a legend on an equal-aspect figure.
// It writes to Writer in Format when Writer is set, otherwise saves to Path with
// the format taken from the file extension (png, svg, pdf, ...).
type PlotRenderer struct {
	Path   string
	Writer io.Writer
	Format string
	Size   vg.Length
}

// NewPlotRenderer saves figures to path with the given edge in inches
func NewPlotRenderer(path string, sizeInches float64) *PlotRenderer {
	return &PlotRenderer{Path: path, Size: vg.Length(sizeInches) * vg.Inch}
}

// Render builds the figure and writes it out
func (r *PlotRenderer) Render(s Scene) error {
	p, err := Figure(s)
	if err != nil {
		return err
	}
	size := r.Size
	if size <= 0 {
		size = DefaultPlotSize
	}

	if r.Writer != nil {
		format := r.Format
		if format == "" {
			format = "png"
		}
		wt, err := p.WriterTo(size, size, format)
		if err != nil {
			return fmt.Errorf("failed to create %s canvas: %w", format, err)
		}
		if _, err := wt.WriteTo(r.Writer); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		return nil
	}

	if r.Path == "" {
		return fmt.Errorf("plot renderer needs an output path or writer")
	}
	if err := p.Save(size, size, r.Path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", r.Path, err)
	}
	log.Printf("Plot saved to %s (%s)", r.Path, strings.TrimPrefix(filepath.Ext(r.Path), "."))
	return nil
}

// Figure builds the comparison plot for a scene
func Figure(s Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title()
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "X (UA)"
	p.Y.Label.Text = "Y (UA)"
	p.Add(plotter.NewGrid())

	exact, err := plotter.NewLine(xys(s.Exact.X, s.Exact.Y))
	if err != nil {
		return nil, fmt.Errorf("failed to plot exact orbit: %w", err)
	}
	exact.LineStyle.Width = vg.Points(2)
	exact.LineStyle.Color = planetColor(s.Planet.Color)

	approx, err := plotter.NewLine(xys(s.Approx.X, s.Approx.Y))
	if err != nil {
		return nil, fmt.Errorf("failed to plot Fourier orbit: %w", err)
	}
	approx.LineStyle.Width = vg.Points(2)
	approx.LineStyle.Color = colornames.Black
	approx.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	sun, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to plot Sun: %w", err)
	}
	sun.GlyphStyle.Shape = draw.CircleGlyph{}
	sun.GlyphStyle.Color = colornames.Gold
	sun.GlyphStyle.Radius = vg.Points(6)

	p.Add(exact, approx, sun)
	p.Legend.Add("Órbita Real", exact)
	p.Legend.Add(s.ApproxLabel(), approx)
	p.Legend.Add("Sol", sun)
	p.Legend.Top = true

	equalAspect(p, s)
	return p, nil
}

// equalAspect gives both axes the same span so the square canvas keeps the
// ellipse undistorted
func equalAspect(p *plot.Plot, s Scene) {
	xs := append(append([]float64{0}, s.Exact.X...), s.Approx.X...)
	ys := append(append([]float64{0}, s.Exact.Y...), s.Approx.Y...)
	xmin, xmax := floats.Min(xs), floats.Max(xs)
	ymin, ymax := floats.Min(ys), floats.Max(ys)

	half := 0.55 * math.Max(xmax-xmin, ymax-ymin)
	if half == 0 || math.IsNaN(half) || math.IsInf(half, 0) {
		half = 1
	}
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

func xys(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// planetColor resolves an SVG colour name, black when unknown
func planetColor(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	if name != "" {
		log.Printf("Warning: unknown color %q, using black", name)
	}
	return colornames.Black
}
