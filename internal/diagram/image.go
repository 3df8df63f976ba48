package diagram

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/structcalc/gobeam/internal/engine"
)

// ExportActionDiagram writes the bending moment and shear force diagrams
// for one combination to an image file (format from the extension: png,
// svg, pdf).
func ExportActionDiagram(cv engine.Curves, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "M (kN·m) / V (kN)"
	p.Add(plotter.NewGrid())

	momentLine, err := plotter.NewLine(curveXYs(cv.X, cv.Moment))
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(2)
	momentLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}

	shearLine, err := plotter.NewLine(curveXYs(cv.X, cv.Shear))
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(1.5)
	shearLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	shearLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(momentLine, shearLine)
	p.Legend.Add("Moment", momentLine)
	p.Legend.Add("Shear", shearLine)
	p.Legend.Top = true

	return p.Save(7*vg.Inch, 4*vg.Inch, filename)
}

// ExportDeflectionDiagram writes the dead-load deflected shape.
func ExportDeflectionDiagram(cv engine.Curves, filename string) error {
	p := plot.New()
	p.Title.Text = "Deflected Shape (dead load)"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Deflection (mm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curveXYs(cv.X, cv.Deflection))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	return p.Save(7*vg.Inch, 3*vg.Inch, filename)
}

func curveXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}
