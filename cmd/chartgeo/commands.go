package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/dataset"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/output"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/stats"
	"go.uber.org/zap"
)

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		family     string
		sheet      string
		cellRange  string
		svgPath    string
		palette    string
	)

	cmd := &cobra.Command{
		Use:   "render [input.json|input.xlsx]",
		Short: "Compute one chart from a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			cfg := chartgeo.DefaultConfig(chartgeo.Family(family))
			if configPath != "" {
				var err error
				if cfg, err = chartgeo.LoadConfig(configPath); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				if cmd.Flags().Changed("family") {
					cfg.Family = chartgeo.Family(family)
				}
			}
			if cmd.Flags().Changed("palette") {
				cfg.Colors = classify.Named(palette)
			}

			records, err := dataset.Load(inputPath, dataset.SheetOptions{Sheet: sheet, Range: cellRange})
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			logger.Debug("loaded dataset", zap.String("path", inputPath), zap.Int("records", len(records)))

			chart, err := chartgeo.Render(records, cfg, chartgeo.WithLogger(logger))
			if err != nil {
				return err
			}

			if svgPath != "" {
				if err := writeSVGFile(svgPath, chart); err != nil {
					return err
				}
			}

			data, err := output.ToJSON(chart, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Chart configuration file (YAML or JSON)")
	cmd.Flags().StringVarP(&family, "family", "f", string(chartgeo.FamilyDonut), "Chart family: "+familyList())
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from an Excel input (default: first sheet)")
	cmd.Flags().StringVar(&cellRange, "range", "", "Cell range to read, such as B2:D20 (default: used range)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "Also write an SVG preview to this path")
	cmd.Flags().StringVar(&palette, "palette", classify.DefaultPaletteName,
		"Named palette: "+strings.Join(classify.PaletteNames(), ", "))
	return cmd
}

func newChartsCmd() *cobra.Command {
	var svgDir string

	cmd := &cobra.Command{
		Use:   "charts [book.xlsx]",
		Short: "Re-render the charts of an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			charts, err := chartgeo.RenderWorkbook(inputPath, chartgeo.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("failed to read workbook charts: %w", err)
			}

			for _, wc := range charts {
				if wc.Err != nil {
					logger.Warn("chart not rendered", zap.Error(wc.Err))
					continue
				}
				if svgDir == "" {
					continue
				}
				if err := os.MkdirAll(svgDir, 0755); err != nil {
					return err
				}
				name := sanitizeFilename(wc.Source.Sheet + "_" + wc.Source.Name)
				if err := writeSVGFile(filepath.Join(svgDir, name+".svg"), wc.Chart); err != nil {
					return err
				}
			}

			data, err := output.ToJSON(charts, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}

	cmd.Flags().StringVar(&svgDir, "svg-dir", "", "Directory for per-chart SVG previews")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var (
		success, warning, danger float64
	)

	cmd := &cobra.Command{
		Use:   "classify [value]",
		Short: "Classify a value against warning/danger or success/warning cutoffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := dataset.ToNumber(args[0])

			th := chartgeo.Thresholds{}
			if cmd.Flags().Changed("success") {
				th.Success = models.Float(success)
			}
			if cmd.Flags().Changed("warning") {
				th.Warning = models.Float(warning)
			}
			if cmd.Flags().Changed("danger") {
				th.Danger = models.Float(danger)
			}
			set, err := th.Set()
			if err != nil {
				return fmt.Errorf("invalid thresholds: %w", err)
			}

			result := classify.Resolve(value, set, nil)
			logger.Debug("classified value",
				zap.Float64("value", value),
				zap.String("category", string(result.Category)),
			)

			data, err := output.ToJSON(result, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}

	cmd.Flags().Float64Var(&success, "success", 0, "Success cutoff (higher is better)")
	cmd.Flags().Float64Var(&warning, "warning", 0, "Warning cutoff")
	cmd.Flags().Float64Var(&danger, "danger", 0, "Danger cutoff (higher is worse)")
	return cmd
}

// statsReport is the output of the stats command.
type statsReport struct {
	Summary      models.Summary      `json:"summary"`
	Distribution models.Distribution `json:"distribution"`
	Trend        models.Trend        `json:"trend"`
	PassRate     *int                `json:"pass_rate,omitempty"`
}

func newStatsCmd() *cobra.Command {
	var (
		sheet     string
		cellRange string
		valueKey  string
		labelKey  string
		preset    string
		failing   []string
	)

	cmd := &cobra.Command{
		Use:   "stats [input.json|input.xlsx]",
		Short: "Aggregate a dataset: summary, label distribution and trend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			var trend stats.TrendOptions
			switch preset {
			case "grade":
				trend = stats.GradeTrend
			case "attendance":
				trend = stats.AttendanceTrend
			case "sensor":
				trend = stats.SensorTrend
			default:
				return fmt.Errorf("invalid trend preset: %s (must be grade, attendance, or sensor)", preset)
			}

			records, err := dataset.Load(inputPath, dataset.SheetOptions{Sheet: sheet, Range: cellRange})
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			series := dataset.Normalize(records, dataset.Accessors{ValueKey: valueKey, LabelKey: labelKey})

			report := statsReport{
				Summary:      stats.Summarize(series),
				Distribution: stats.Distribution(series.Labels()),
				Trend:        stats.Trend(series.Values(), trend),
			}
			if len(failing) > 0 {
				rate := stats.PassRate(series.Labels(), failing...)
				report.PassRate = &rate
			}

			data, err := output.ToJSON(report, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from an Excel input (default: first sheet)")
	cmd.Flags().StringVar(&cellRange, "range", "", "Cell range to read, such as B2:D20 (default: used range)")
	cmd.Flags().StringVar(&valueKey, "value-key", "value", "Record field holding the value")
	cmd.Flags().StringVar(&labelKey, "label-key", "label", "Record field holding the label")
	cmd.Flags().StringVar(&preset, "trend", "grade", "Trend preset: grade, attendance, sensor")
	cmd.Flags().StringSliceVar(&failing, "failing", nil, "Labels counted as failing for the pass rate")
	return cmd
}

func writeSVGFile(path string, chart *models.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	if err := output.WriteSVG(f, chart); err != nil {
		f.Close()
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close SVG file: %w", err)
	}
	return nil
}

func familyList() string {
	names := make([]string, 0, len(chartgeo.Families()))
	for _, f := range chartgeo.Families() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
