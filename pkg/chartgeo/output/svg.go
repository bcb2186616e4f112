package output

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/path"
)

// AreaOpacity is the fill opacity of area and band paths.
const AreaOpacity = 0.3

// WriteSVG writes a standalone SVG preview of chart to w. The document
// uses the chart viewport as its user space.
func WriteSVG(w io.Writer, chart *models.Chart) error {
	width := int(math.Ceil(chart.Viewport.Width))
	height := int(math.Ceil(chart.Viewport.Height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("chart %q has an empty viewport", chart.ID)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(width, height, 0, 0, width, height)
	if chart.Title != "" {
		canvas.Title(chart.Title)
	}

	canvas.Gid(chart.ID)
	for _, p := range chart.Paths {
		canvas.Path(string(p.D), Style(p))
	}
	canvas.Gend()

	if chart.Label != "" && (chart.Family == "donut" || chart.Family == "progress" || chart.Family == "gauge") {
		y := height / 2
		if chart.Gauge != nil && chart.Family == "gauge" {
			y = int(math.Round(chart.Viewport.Width / 2))
		}
		canvas.Text(width/2, y, chart.Label, "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:"+path.Num(float64(width)/6)+"px")
	}
	canvas.End()
	return ew.err
}

// Style returns the inline SVG style of p.
func Style(p models.Path) string {
	color := p.Color
	if color == "" {
		color = "currentColor"
	}
	if p.Fill {
		s := "stroke:none;fill:" + color
		if p.Kind == models.PathArea || p.Kind == models.PathBand {
			s += ";fill-opacity:" + path.Num(AreaOpacity)
		}
		return s
	}
	width := p.StrokeWidth
	if width <= 0 {
		width = 1
	}
	return "fill:none;stroke-linecap:round;stroke:" + color + ";stroke-width:" + path.Num(width)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
