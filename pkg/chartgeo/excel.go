package chartgeo

import (
	"fmt"
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/dataset"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// chartFamilies maps Excel chart type names to families.
var chartFamilies = map[string]Family{
	"Pie":       FamilyDonut,
	"3DPie":     FamilyDonut,
	"Doughnut":  FamilyDonut,
	"Line":      FamilyLine,
	"3DLine":    FamilyLine,
	"XYScatter": FamilyLine,
	"Radar":     FamilyLine,
	"Area":      FamilyArea,
	"3DArea":    FamilyArea,
	"Bar":       FamilyBar,
	"3DBar":     FamilyBar,
	"Stock":     FamilyRange,
}

// FamilyForChartType returns the family that re-renders an Excel chart type.
func FamilyForChartType(chartType string) (Family, bool) {
	f, ok := chartFamilies[chartType]
	return f, ok
}

// ConfigFromChart derives a chart configuration from an Excel chart: the
// family from its type, the domain from a fixed value axis and the size of
// radial charts from its anchor.
func ConfigFromChart(src dataset.ChartSource) (Config, error) {
	family, ok := FamilyForChartType(src.ChartType)
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedChart, src.ChartType)
	}

	cfg := DefaultConfig(family)
	cfg.ID = src.Sheet + "/" + src.Name
	cfg.Title = src.Title
	if src.AxisMin != nil {
		cfg.MinValue = src.AxisMin
	}
	if src.AxisMax != nil {
		cfg.MaxValue = src.AxisMax
	}
	if family.Radial() && src.Width > 0 && src.Height > 0 {
		cfg.Size = math.Min(float64(src.Width), float64(src.Height))
		cfg.StrokeWidth = math.Max(cfg.Size*cfg.StrokeWidth/100, 1)
	}
	return cfg, nil
}

// WorkbookChart is one re-rendered Excel chart.
type WorkbookChart struct {
	// Source is the chart definition read from the workbook.
	Source dataset.ChartSource `json:"source"`
	// Config is the configuration derived from Source.
	Config Config `json:"config"`
	// Chart is the computed chart, nil when Err is set.
	Chart *models.Chart `json:"chart,omitempty"`
	// Err is the failure reading the chart's cells.
	Err error `json:"-"`
}

// RenderWorkbook re-renders every supported chart of an xlsx file from the
// cells its series reference. Unsupported chart types are skipped; charts
// whose cells cannot be read carry a *ChartError.
func RenderWorkbook(path string, opts ...Option) ([]WorkbookChart, error) {
	sources, err := dataset.ReadChartSources(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger := newSettings(opts).logger

	var charts []WorkbookChart
	for _, src := range sources {
		cfg, err := ConfigFromChart(src)
		if err != nil {
			logger.Warn("skipping chart",
				zap.String("sheet", src.Sheet),
				zap.String("chart", src.Name),
				zap.Error(err),
			)
			continue
		}

		wc := WorkbookChart{Source: src, Config: cfg}
		series, err := chartSeries(f, src, cfg.Family)
		if err != nil {
			wc.Err = NewChartError(src.Sheet, src.Name, err)
			charts = append(charts, wc)
			continue
		}

		e, err := New(cfg, opts...)
		if err != nil {
			wc.Err = NewChartError(src.Sheet, src.Name, err)
			charts = append(charts, wc)
			continue
		}
		wc.Chart = e.RenderSeries(series)
		charts = append(charts, wc)
	}
	return charts, nil
}

// chartSeries reads the series a family draws. Range charts read the last
// three series of a stock chart as high, low and close.
func chartSeries(f *excelize.File, src dataset.ChartSource, family Family) (models.Series, error) {
	n := len(src.Series)
	if family != FamilyRange || n < 3 {
		return dataset.LoadChartSeries(f, src, 0)
	}

	highs, err := dataset.LoadChartSeries(f, src, n-3)
	if err != nil {
		return nil, err
	}
	lows, err := dataset.LoadChartSeries(f, src, n-2)
	if err != nil {
		return nil, err
	}
	closes, err := dataset.LoadChartSeries(f, src, n-1)
	if err != nil {
		return nil, err
	}

	series := make(models.Series, len(closes))
	for i, p := range closes {
		if i < len(highs) {
			p.Max = models.Float(highs[i].Value)
		}
		if i < len(lows) {
			p.Min = models.Float(lows[i].Value)
		}
		series[i] = p
	}
	return series, nil
}
