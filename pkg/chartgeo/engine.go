package chartgeo

import (
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/dataset"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/stats"
	"go.uber.org/zap"
)

// Engine computes charts of one configuration. An Engine is immutable after
// New and safe for concurrent use.
type Engine struct {
	cfg    resolved
	logger *zap.Logger
}

// New resolves cfg into an Engine. Invalid fields are logged as warnings and
// replaced with the family defaults; only an unknown family is an error.
func New(cfg Config, opts ...Option) (*Engine, error) {
	s := newSettings(opts)
	r, err := resolve(cfg, func(field string, err error) {
		s.logger.Warn("invalid chart configuration, using default",
			zap.String("family", string(cfg.Family)),
			zap.String("id", cfg.ID),
			zap.String("field", field),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: r, logger: s.logger}, nil
}

// Family returns the engine's chart family.
func (e *Engine) Family() Family {
	return e.cfg.family
}

// Render normalizes records and computes the chart.
func (e *Engine) Render(records []map[string]interface{}) *models.Chart {
	return e.RenderSeries(dataset.Normalize(records, e.cfg.accessors))
}

// RenderSeries computes the chart of an already normalized series.
// Non-finite values are read as 0.
func (e *Engine) RenderSeries(series models.Series) *models.Chart {
	series = dataset.Sanitize(series)
	chart := &models.Chart{
		Family:  string(e.cfg.family),
		ID:      e.cfg.id,
		Title:   e.cfg.title,
		Empty:   series.IsEmpty(),
		Summary: stats.Summarize(series),
		Paths:   []models.Path{},
	}

	switch e.cfg.family {
	case FamilyDonut:
		e.donut(chart, series)
	case FamilyProgress:
		e.progress(chart, series)
	case FamilyGauge:
		e.gauge(chart, series)
	case FamilyLine, FamilyArea, FamilyRange:
		e.curve(chart, series)
	case FamilyBar:
		e.bars(chart, series)
	}

	e.logger.Debug("rendered chart",
		zap.String("family", chart.Family),
		zap.String("id", chart.ID),
		zap.Int("points", len(series)),
		zap.Int("paths", len(chart.Paths)),
	)
	return chart
}

// Render computes one chart from raw records.
func Render(records []map[string]interface{}, cfg Config, opts ...Option) (*models.Chart, error) {
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return e.Render(records), nil
}

// RenderSeries computes one chart from a normalized series.
func RenderSeries(series models.Series, cfg Config, opts ...Option) (*models.Chart, error) {
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return e.RenderSeries(series), nil
}

// headline returns the value a single-value chart displays: the last point.
func headline(series models.Series) float64 {
	return series[len(series)-1].Value
}

func (e *Engine) classification(value float64) *models.Classification {
	if e.cfg.thresholds == nil {
		return nil
	}
	c := classify.Resolve(value, *e.cfg.thresholds, e.cfg.thresholdColors)
	return &c
}
